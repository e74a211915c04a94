package bootstrap

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/hodlscope-backend/internal/clock"
	"github.com/goodnatureofminers/hodlscope-backend/internal/lookup"
	"github.com/goodnatureofminers/hodlscope-backend/internal/metrics"
	observed "github.com/goodnatureofminers/hodlscope-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/hodlscope-backend/internal/provider"
	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// NewLookupService builds every configured provider and the lookup engine
// on top of them. The returned func releases the btcd connection, if any.
func NewLookupService(cfg Config, logger *zap.Logger) (*lookup.Service, func(), error) {
	fallbackPrice, err := decimal.NewFromString(cfg.FallbackPrice)
	if err != nil {
		return nil, nil, fmt.Errorf("parse fallback price: %w", err)
	}
	if !fallbackPrice.IsPositive() {
		return nil, nil, errors.New("fallback price must be positive")
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	options := func(name string) provider.Options {
		return provider.Options{
			HTTPClient: httpClient,
			Limiter:    newLimiter(cfg.ProviderRPS),
			Metrics:    metrics.NewProviderClient(name),
		}
	}

	clients := []provider.Client{
		provider.NewEsplora("blockstream", cfg.BlockstreamURL, false, options("blockstream")),
		provider.NewEsplora("mempool", cfg.MempoolURL, true, options("mempool")),
		provider.NewBlockchair("blockchair", cfg.BlockchairURL, options("blockchair")),
		provider.NewBlockchainInfo("blockchaininfo", cfg.BlockchainInfoURL, options("blockchaininfo")),
	}

	release := func() {}
	if cfg.BtcdRPCURL != "" {
		rpc, err := newRPCClient(cfg.BtcdRPCURL, cfg.BtcdRPCUser, cfg.BtcdRPCPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("init btcd rpc client: %w", err)
		}
		release = func() {
			rpc.Shutdown()
			rpc.WaitForShutdown()
		}
		searcher := observed.NewObservedClient(rpc, metrics.NewRPCClient("btcd"))
		logNodeTip(searcher, logger.Named("btcd"))
		clients = append(clients, provider.NewBtcd("btcd", searcher, newLimiter(cfg.ProviderRPS)))
	}

	providers, err := lookup.BuildProviders(clients, orderFrom(cfg), logger.Named("registry"))
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("build providers: %w", err)
	}

	svc := lookup.NewService(
		providers,
		lookup.DefaultOverrides(),
		lookup.Config{
			SummaryTimeout:   cfg.SummaryTimeout,
			FirstSeenTimeout: cfg.FirstSeenTimeout,
			FirstPageTimeout: cfg.FirstPageTimeout,
			NextPageTimeout:  cfg.NextPageTimeout,
			PriceTimeout:     cfg.PriceTimeout,
			PageBudget:       cfg.PageBudget,
			FallbackPrice:    fallbackPrice,
		},
		metrics.NewLookup(),
		clock.System{},
		logger.Named("lookup"),
	)
	return svc, release, nil
}

func orderFrom(cfg Config) lookup.Order {
	order := lookup.DefaultOrder()
	if len(cfg.SummaryOrder) > 0 {
		order.Summary = cfg.SummaryOrder
	}
	if len(cfg.FirstSeenOrder) > 0 {
		order.FirstSeen = cfg.FirstSeenOrder
	}
	if len(cfg.PageOrder) > 0 {
		order.Pages = cfg.PageOrder
	}
	if len(cfg.PriceOrder) > 0 {
		order.Price = cfg.PriceOrder
	}
	return order
}

type nodeTip interface {
	GetBlockCount() (int64, error)
}

// logNodeTip reports whether the btcd node answers. An unreachable node stays
// configured and its lookups fail over to the other page providers.
func logNodeTip(node nodeTip, logger *zap.Logger) {
	height, err := node.GetBlockCount()
	if err != nil {
		logger.Warn("btcd node unreachable", zap.Error(err))
		return
	}
	logger.Info("btcd node connected", zap.Int64("height", height))
}

func newLimiter(rps int) ratelimit.Limiter {
	if rps <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(rps)
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
