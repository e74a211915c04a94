// Package provider implements clients for public ledger-indexing services.
package provider

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
)

var (
	// ErrUnsupported is returned for a capability the provider does not offer.
	ErrUnsupported = errors.New("capability not supported by provider")
	// ErrPageNotFound is returned when a cursor transaction no longer resolves.
	ErrPageNotFound = errors.New("page not found")
	// ErrTimeout is returned when an upstream call exceeds its deadline.
	ErrTimeout = errors.New("provider request timed out")
	// ErrInvalidAddress is returned when the upstream rejects the address.
	ErrInvalidAddress = errors.New("address rejected by provider")
	// ErrForeignCursor is returned for a cursor issued by another provider.
	ErrForeignCursor = errors.New("cursor issued by another provider")
	// ErrNoHistory is returned when the upstream knows nothing about the address.
	ErrNoHistory = errors.New("no history for address")
)

type (
	// Metrics records metrics for upstream calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Client is the uniform capability surface every provider exposes.
	// Capabilities a provider cannot serve return ErrUnsupported.
	Client interface {
		Name() string
		PageSize() int
		FetchSummary(ctx context.Context, address model.Address) (model.WalletSummary, error)
		FetchFirstPage(ctx context.Context, address model.Address) (model.TransactionPage, error)
		FetchNextPage(ctx context.Context, address model.Address, cursor model.TraversalCursor) (model.TransactionPage, error)
		FetchFirstSeen(ctx context.Context, address model.Address, txCount uint64) (time.Time, error)
		FetchPrice(ctx context.Context) (decimal.Decimal, error)
	}
)

// Options carries the shared plumbing of an HTTP provider client.
type Options struct {
	HTTPClient *http.Client
	Limiter    ratelimit.Limiter
	Metrics    Metrics
}

func (o Options) withDefaults() Options {
	if o.HTTPClient == nil {
		o.HTTPClient = defaultHTTPClient
	}
	if o.Limiter == nil {
		o.Limiter = ratelimit.NewUnlimited()
	}
	if o.Metrics == nil {
		o.Metrics = nopMetrics{}
	}
	return o
}

type nopMetrics struct{}

func (nopMetrics) Observe(string, error, time.Time) {}

// unsupported provides ErrUnsupported defaults for clients to override.
type unsupported struct{}

func (unsupported) PageSize() int { return 0 }

func (unsupported) FetchSummary(context.Context, model.Address) (model.WalletSummary, error) {
	return model.WalletSummary{}, ErrUnsupported
}

func (unsupported) FetchFirstPage(context.Context, model.Address) (model.TransactionPage, error) {
	return model.TransactionPage{}, ErrUnsupported
}

func (unsupported) FetchNextPage(context.Context, model.Address, model.TraversalCursor) (model.TransactionPage, error) {
	return model.TransactionPage{}, ErrUnsupported
}

func (unsupported) FetchFirstSeen(context.Context, model.Address, uint64) (time.Time, error) {
	return time.Time{}, ErrUnsupported
}

func (unsupported) FetchPrice(context.Context) (decimal.Decimal, error) {
	return decimal.Decimal{}, ErrUnsupported
}

func checkCursor(name string, cursor model.TraversalCursor) error {
	if cursor.Provider() != name {
		return ErrForeignCursor
	}
	if cursor.Token() == "" {
		return errors.New("empty cursor token")
	}
	return nil
}
