package lookup

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"go.uber.org/zap"
)

var errNoConfirmedHistory = errors.New("no confirmed transactions in history")

type walkResult struct {
	earliest    time.Time
	approximate bool
	pages       int
}

// walk follows older pages from first until a short page proves the oldest
// transaction was reached, or the page budget runs out. In the latter case,
// and when a page fails mid-walk, the oldest timestamp seen so far is
// returned as a lower bound flagged approximate. Once txCount transactions
// have been seen no further page is requested; zero means the count is unknown.
func (s *Service) walk(ctx context.Context, p PageProvider, address model.Address, txCount uint64, first model.TransactionPage) (walkResult, error) {
	pageSize := p.PageSize()
	earliest, found := first.Oldest()
	res := walkResult{}
	seen := uint64(first.Len())

	page := first
	for page.Len() >= pageSize && pageSize > 0 {
		if page.Next.IsZero() || (txCount > 0 && seen >= txCount) {
			break
		}
		if res.pages >= s.cfg.PageBudget {
			res.approximate = true
			break
		}

		next, err := attempt(ctx, s.cfg.NextPageTimeout, p, func(ctx context.Context, p PageProvider) (model.TransactionPage, error) {
			return p.FetchNextPage(ctx, address, page.Next)
		})
		res.pages++
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return walkResult{}, ctxErr
			}
			s.logger.Debug("history walk stopped early",
				zap.String("provider", p.Name()),
				zap.Int("pages", res.pages),
				zap.Error(err))
			res.approximate = true
			break
		}
		if t, ok := next.Oldest(); ok {
			earliest, found = t, true
		}
		seen += uint64(next.Len())
		page = next
	}

	if !found {
		return walkResult{}, errNoConfirmedHistory
	}
	res.earliest = earliest
	s.metrics.ObserveWalk(p.Name(), res.pages, res.approximate)
	return res, nil
}
