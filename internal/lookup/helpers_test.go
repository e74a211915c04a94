package lookup

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"github.com/goodnatureofminers/hodlscope-backend/internal/provider"
	"github.com/goodnatureofminers/hodlscope-backend/internal/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	testAddr    = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	genesisAddr = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func mustAddress(t *testing.T, raw string) model.Address {
	t.Helper()
	addr, err := validator.Parse(raw)
	if err != nil {
		t.Fatalf("parse %s: %v", raw, err)
	}
	return addr
}

// newTestService wires a service with permissive metrics and a fixed clock.
func newTestService(t *testing.T, providers Providers, cfg Config) *Service {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	metrics := NewMockMetrics(ctrl)
	metrics.EXPECT().ObserveLookup(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().ObserveAttempt(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().ObserveWalk(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	clock := NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	return NewService(providers, DefaultOverrides(), cfg, metrics, clock, zap.NewNop())
}

// txAt builds a confirmed transaction. spender, when set, is the address of
// the spent output.
func txAt(id string, at time.Time, spender string) model.Transaction {
	tx := model.Transaction{
		TxID:      id,
		BlockTime: at,
		Inputs:    []model.TransactionInput{{PrevTxID: "prev-" + id, Address: spender}},
		Outputs:   []model.TransactionOutput{{Address: "dest", Value: 1000}},
	}
	return tx
}

// fullPage returns size confirmed transactions one hour apart, newest first,
// ending at oldest.
func fullPage(provider, prefix string, size int, oldest time.Time) model.TransactionPage {
	page := model.TransactionPage{}
	for i := 0; i < size; i++ {
		at := oldest.Add(time.Duration(size-1-i) * time.Hour)
		page.Transactions = append(page.Transactions, txAt(fmt.Sprintf("%s-%d", prefix, i), at, ""))
	}
	if size > 0 {
		page.Next = model.NewTraversalCursor(provider, page.Transactions[size-1].TxID)
	}
	return page
}

// fakeProvider is a scriptable provider serving every capability.
type fakeProvider struct {
	name     string
	pageSize int

	summary   func(ctx context.Context) (model.WalletSummary, error)
	firstSeen func(ctx context.Context) (time.Time, error)
	firstPage func(ctx context.Context) (model.TransactionPage, error)
	nextPage  func(ctx context.Context, cursor model.TraversalCursor) (model.TransactionPage, error)
	price     func(ctx context.Context) (decimal.Decimal, error)

	mu    sync.Mutex
	calls map[string]int
}

func (f *fakeProvider) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[method]++
}

func (f *fakeProvider) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeProvider) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) PageSize() int { return f.pageSize }

func (f *fakeProvider) FetchSummary(ctx context.Context, _ model.Address) (model.WalletSummary, error) {
	f.record("summary")
	if f.summary == nil {
		return model.WalletSummary{}, provider.ErrUnsupported
	}
	return f.summary(ctx)
}

func (f *fakeProvider) FetchFirstSeen(ctx context.Context, _ model.Address, _ uint64) (time.Time, error) {
	f.record("first_seen")
	if f.firstSeen == nil {
		return time.Time{}, provider.ErrUnsupported
	}
	return f.firstSeen(ctx)
}

func (f *fakeProvider) FetchFirstPage(ctx context.Context, _ model.Address) (model.TransactionPage, error) {
	f.record("first_page")
	if f.firstPage == nil {
		return model.TransactionPage{}, provider.ErrUnsupported
	}
	return f.firstPage(ctx)
}

func (f *fakeProvider) FetchNextPage(ctx context.Context, _ model.Address, cursor model.TraversalCursor) (model.TransactionPage, error) {
	f.record("next_page")
	if f.nextPage == nil {
		return model.TransactionPage{}, provider.ErrUnsupported
	}
	return f.nextPage(ctx, cursor)
}

func (f *fakeProvider) FetchPrice(ctx context.Context) (decimal.Decimal, error) {
	f.record("price")
	if f.price == nil {
		return decimal.Decimal{}, provider.ErrUnsupported
	}
	return f.price(ctx)
}

func summaryOf(received, sent btcutil.Amount, txCount uint64) func(context.Context) (model.WalletSummary, error) {
	return func(context.Context) (model.WalletSummary, error) {
		return model.NewWalletSummary(received, sent, txCount), nil
	}
}

func failWith(err error) func(context.Context) (model.WalletSummary, error) {
	return func(context.Context) (model.WalletSummary, error) {
		return model.WalletSummary{}, err
	}
}

// blockUntilDone waits for the attempt deadline like a hung upstream.
func blockUntilDone(ctx context.Context) (model.WalletSummary, error) {
	<-ctx.Done()
	return model.WalletSummary{}, fmt.Errorf("%w: %w", provider.ErrTimeout, ctx.Err())
}
