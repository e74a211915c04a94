// Package lookup resolves the holding history of a single address by
// combining several unreliable upstream providers into one result.
package lookup

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SummaryProvider interface {
		Name() string
		FetchSummary(ctx context.Context, address model.Address) (model.WalletSummary, error)
	}
	FirstSeenProvider interface {
		Name() string
		FetchFirstSeen(ctx context.Context, address model.Address, txCount uint64) (time.Time, error)
	}
	PageProvider interface {
		Name() string
		PageSize() int
		FetchFirstPage(ctx context.Context, address model.Address) (model.TransactionPage, error)
		FetchNextPage(ctx context.Context, address model.Address, cursor model.TraversalCursor) (model.TransactionPage, error)
	}
	PriceProvider interface {
		Name() string
		FetchPrice(ctx context.Context) (decimal.Decimal, error)
	}
	Metrics interface {
		ObserveLookup(outcome string, started time.Time)
		ObserveAttempt(capability, provider string, err error)
		ObserveWalk(provider string, pages int, approximate bool)
	}
	Clock interface {
		Now() time.Time
	}
)
