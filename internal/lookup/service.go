package lookup

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"github.com/goodnatureofminers/hodlscope-backend/internal/provider"
	"github.com/goodnatureofminers/hodlscope-backend/internal/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	capabilitySummary   = "summary"
	capabilityFirstSeen = "first_seen"
	capabilityFirstPage = "first_page"
	capabilityHistory   = "history_walk"
	capabilityPrice     = "price"
)

// Config bounds the time spent on each upstream call.
type Config struct {
	SummaryTimeout   time.Duration
	FirstSeenTimeout time.Duration
	FirstPageTimeout time.Duration
	NextPageTimeout  time.Duration
	PriceTimeout     time.Duration
	// PageBudget caps the number of older pages fetched per history walk.
	PageBudget    int
	FallbackPrice decimal.Decimal
}

// DefaultConfig returns the production timeouts.
func DefaultConfig() Config {
	return Config{
		SummaryTimeout:   12 * time.Second,
		FirstSeenTimeout: 10 * time.Second,
		FirstPageTimeout: 10 * time.Second,
		NextPageTimeout:  8 * time.Second,
		PriceTimeout:     5 * time.Second,
		PageBudget:       10,
		FallbackPrice:    decimal.NewFromInt(84712),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SummaryTimeout <= 0 {
		c.SummaryTimeout = def.SummaryTimeout
	}
	if c.FirstSeenTimeout <= 0 {
		c.FirstSeenTimeout = def.FirstSeenTimeout
	}
	if c.FirstPageTimeout <= 0 {
		c.FirstPageTimeout = def.FirstPageTimeout
	}
	if c.NextPageTimeout <= 0 {
		c.NextPageTimeout = def.NextPageTimeout
	}
	if c.PriceTimeout <= 0 {
		c.PriceTimeout = def.PriceTimeout
	}
	if c.PageBudget <= 0 {
		c.PageBudget = def.PageBudget
	}
	if !c.FallbackPrice.IsPositive() {
		c.FallbackPrice = def.FallbackPrice
	}
	return c
}

// Providers lists the upstreams for each capability in priority order.
type Providers struct {
	Summary   []SummaryProvider
	FirstSeen []FirstSeenProvider
	Pages     []PageProvider
	Price     []PriceProvider
}

// Service answers wallet lookups. It keeps no state between requests.
type Service struct {
	providers Providers
	overrides Overrides
	cfg       Config
	metrics   Metrics
	clock     Clock
	logger    *zap.Logger
}

// NewService builds the lookup engine.
func NewService(
	providers Providers,
	overrides Overrides,
	cfg Config,
	metrics Metrics,
	clock Clock,
	logger *zap.Logger,
) *Service {
	return &Service{
		providers: providers,
		overrides: overrides,
		cfg:       cfg.withDefaults(),
		metrics:   metrics,
		clock:     clock,
		logger:    logger,
	}
}

// Lookup validates raw and resolves the holding history of the address.
// Every failure is an *Error.
func (s *Service) Lookup(ctx context.Context, raw string) (result *model.LookupResult, err error) {
	started := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = string(KindOf(err))
		}
		s.metrics.ObserveLookup(outcome, started)
	}()

	address, err := validator.Parse(raw)
	if err != nil {
		return nil, newError(KindInvalidFormat, "validate address", err)
	}
	logger := s.logger.With(
		zap.String("address", address.String()),
		zap.String("shape", string(address.Shape())))

	ev := evidence{address: address}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, p, err := firstSuccess(gctx, s, capabilitySummary, s.cfg.SummaryTimeout, s.providers.Summary,
			func(ctx context.Context, p SummaryProvider) (model.WalletSummary, error) {
				return p.FetchSummary(ctx, address)
			})
		if err != nil {
			return classifyUpstream("fetch summary", err, KindUpstreamUnavailable)
		}
		ev.summary, ev.summarySource = summary, p.Name()
		return nil
	})
	g.Go(func() error {
		price, p, err := firstSuccess(gctx, s, capabilityPrice, s.cfg.PriceTimeout, s.providers.Price,
			func(ctx context.Context, p PriceProvider) (decimal.Decimal, error) {
				return p.FetchPrice(ctx)
			})
		if err != nil {
			logger.Debug("price unavailable, using fallback", zap.Error(err))
			return nil
		}
		ev.price, ev.priceSource = price, p.Name()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if ev.summary.TxCount == 0 {
		return nil, newError(KindNotFound, "fetch summary", errors.New("address has no transactions"))
	}

	failedPagers := make(map[string]bool)
	recent, pager, err := firstSuccess(ctx, s, capabilityFirstPage, s.cfg.FirstPageTimeout, s.providers.Pages,
		func(ctx context.Context, p PageProvider) (model.TransactionPage, error) {
			page, err := p.FetchFirstPage(ctx, address)
			if err != nil && !errors.Is(err, provider.ErrUnsupported) {
				failedPagers[p.Name()] = true
			}
			return page, err
		})
	hasRecent := err == nil
	if hasRecent {
		ev.lastActivity, _ = recent.Newest()
	} else {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, classifyUpstream("fetch recent page", ctxErr, KindInternal)
		}
		logger.Debug("recent activity unavailable", zap.Error(err))
	}

	if hasRecent && ev.summary.EverSent() {
		if t, ok := s.lastOutgoing(ctx, pager, address, recent); ok {
			ev.lastOutgoing = &t
		}
	}

	var recentPage *sourcedPage
	if hasRecent {
		recentPage = &sourcedPage{provider: pager.Name(), page: recent}
	}
	ev.first, err = s.resolveFirstReceive(ctx, address, ev.summary.TxCount, recentPage, failedPagers)
	if err != nil {
		return nil, err
	}

	result, err = reconcile(s.clock.Now(), s.cfg.FallbackPrice, ev)
	if err != nil {
		return nil, err
	}
	logger.Debug("lookup resolved",
		zap.String("history_source", result.Sources.History),
		zap.Bool("approximate", result.FirstReceiveApproximate),
		zap.Int64("hold_days", result.HoldDays))
	return result, nil
}

type sourcedPage struct {
	provider string
	page     model.TransactionPage
}

// resolveFirstReceive tries the override table, then providers that index
// first receive times directly, then a bounded walk per page provider.
// Page providers in skip already failed this request and are not walked.
func (s *Service) resolveFirstReceive(
	ctx context.Context,
	address model.Address,
	txCount uint64,
	recent *sourcedPage,
	skip map[string]bool,
) (firstReceive, error) {
	if t, ok := s.overrides.FirstReceive(address); ok {
		return firstReceive{at: t, source: sourceOverride}, nil
	}

	t, p, err := firstSuccess(ctx, s, capabilityFirstSeen, s.cfg.FirstSeenTimeout, s.providers.FirstSeen,
		func(ctx context.Context, p FirstSeenProvider) (time.Time, error) {
			t, err := p.FetchFirstSeen(ctx, address, txCount)
			if err == nil && t.IsZero() {
				return t, errNoConfirmedHistory
			}
			return t, err
		})
	if err == nil {
		return firstReceive{at: t, source: p.Name()}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return firstReceive{}, classifyUpstream("resolve first receive", ctxErr, KindHistoryUnresolved)
	}
	s.logger.Debug("direct first receive unavailable, walking history", zap.Error(err))

	pagers := make([]PageProvider, 0, len(s.providers.Pages))
	for _, p := range s.providers.Pages {
		if !skip[p.Name()] {
			pagers = append(pagers, p)
		}
	}
	walked, p2, err := firstSuccess(ctx, s, capabilityHistory, 0, pagers,
		func(ctx context.Context, p PageProvider) (walkResult, error) {
			first, err := s.firstPageFor(ctx, p, address, recent)
			if err != nil {
				return walkResult{}, err
			}
			return s.walk(ctx, p, address, txCount, first)
		})
	if err != nil {
		return firstReceive{}, classifyUpstream("resolve first receive", err, KindHistoryUnresolved)
	}
	return firstReceive{at: walked.earliest, approximate: walked.approximate, source: p2.Name()}, nil
}

// firstPageFor reuses the recent page when p already served it.
func (s *Service) firstPageFor(ctx context.Context, p PageProvider, address model.Address, recent *sourcedPage) (model.TransactionPage, error) {
	if recent != nil && recent.provider == p.Name() {
		return recent.page, nil
	}
	return attempt(ctx, s.cfg.FirstPageTimeout, p, func(ctx context.Context, p PageProvider) (model.TransactionPage, error) {
		return p.FetchFirstPage(ctx, address)
	})
}
