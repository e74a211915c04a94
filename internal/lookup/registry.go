package lookup

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/hodlscope-backend/internal/provider"
	"go.uber.org/zap"
)

// Order names the providers used for each capability, highest priority first.
type Order struct {
	Summary   []string
	FirstSeen []string
	Pages     []string
	Price     []string
}

// DefaultOrder is the production priority list.
func DefaultOrder() Order {
	return Order{
		Summary:   []string{"blockstream", "mempool", "blockchair", "blockchaininfo"},
		FirstSeen: []string{"blockchair", "btcd", "blockchaininfo"},
		Pages:     []string{"blockstream", "mempool", "blockchaininfo", "btcd"},
		Price:     []string{"blockchaininfo", "mempool"},
	}
}

// BuildProviders arranges registered clients by order. Names without a
// registered client are skipped so optional providers can stay in the
// default order.
func BuildProviders(clients []provider.Client, order Order, logger *zap.Logger) (Providers, error) {
	byName := make(map[string]provider.Client, len(clients))
	for _, c := range clients {
		if _, dup := byName[c.Name()]; dup {
			return Providers{}, fmt.Errorf("duplicate provider %q", c.Name())
		}
		byName[c.Name()] = c
	}

	pick := func(capability string, names []string) []provider.Client {
		seen := make(map[string]struct{}, len(names))
		out := make([]provider.Client, 0, len(names))
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			c, ok := byName[name]
			if !ok {
				logger.Debug("provider not registered, skipping",
					zap.String("capability", capability),
					zap.String("provider", name))
				continue
			}
			out = append(out, c)
		}
		return out
	}

	var p Providers
	for _, c := range pick(capabilitySummary, order.Summary) {
		p.Summary = append(p.Summary, c)
	}
	for _, c := range pick(capabilityFirstSeen, order.FirstSeen) {
		p.FirstSeen = append(p.FirstSeen, c)
	}
	for _, c := range pick(capabilityFirstPage, order.Pages) {
		p.Pages = append(p.Pages, c)
	}
	for _, c := range pick(capabilityPrice, order.Price) {
		p.Price = append(p.Price, c)
	}

	if len(p.Summary) == 0 {
		return Providers{}, errors.New("no summary provider configured")
	}
	if len(p.FirstSeen) == 0 && len(p.Pages) == 0 {
		return Providers{}, errors.New("no history provider configured")
	}
	return p, nil
}
