package lookup

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"go.uber.org/zap"
)

// lastOutgoing finds the newest confirmed transaction spending from address.
// It looks at the recent page and at most one older page.
func (s *Service) lastOutgoing(ctx context.Context, p PageProvider, address model.Address, recent model.TransactionPage) (time.Time, bool) {
	if t, ok := newestSpend(recent, address); ok {
		return t, true
	}
	if recent.Len() < p.PageSize() || recent.Next.IsZero() {
		return time.Time{}, false
	}

	older, err := attempt(ctx, s.cfg.NextPageTimeout, p, func(ctx context.Context, p PageProvider) (model.TransactionPage, error) {
		return p.FetchNextPage(ctx, address, recent.Next)
	})
	if err != nil {
		s.logger.Debug("outgoing scan page failed", zap.String("provider", p.Name()), zap.Error(err))
		return time.Time{}, false
	}
	return newestSpend(older, address)
}

func newestSpend(page model.TransactionPage, address model.Address) (time.Time, bool) {
	for _, tx := range page.Transactions {
		if tx.Confirmed() && tx.SpendsFrom(address) {
			return tx.BlockTime, true
		}
	}
	return time.Time{}, false
}
