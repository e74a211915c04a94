package provider

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
)

const blockchairTimeLayout = "2006-01-02 15:04:05"

type (
	blockchairAddress struct {
		Received           int64   `json:"received"`
		Spent              int64   `json:"spent"`
		TransactionCount   uint64  `json:"transaction_count"`
		FirstSeenReceiving *string `json:"first_seen_receiving"`
	}

	blockchairDashboard struct {
		Data map[string]struct {
			Address blockchairAddress `json:"address"`
		} `json:"data"`
	}
)

// Blockchair reads address dashboards, which index the first receive time
// directly and make pagination unnecessary.
type Blockchair struct {
	unsupported
	name   string
	client jsonClient
}

var _ Client = (*Blockchair)(nil)

// NewBlockchair returns a Blockchair client rooted at baseURL
// (https://api.blockchair.com/bitcoin).
func NewBlockchair(name, baseURL string, opts Options) *Blockchair {
	return &Blockchair{name: name, client: newJSONClient(baseURL, opts)}
}

// Name returns the provider name.
func (b *Blockchair) Name() string { return b.name }

// FetchSummary returns received/spent totals from the dashboard.
func (b *Blockchair) FetchSummary(ctx context.Context, address model.Address) (model.WalletSummary, error) {
	info, err := b.dashboard(ctx, "fetch_summary", address)
	if err != nil {
		return model.WalletSummary{}, err
	}
	if info.Received < 0 || info.Spent < 0 {
		return model.WalletSummary{}, fmt.Errorf("negative totals for %s", address)
	}
	return model.NewWalletSummary(btcutil.Amount(info.Received), btcutil.Amount(info.Spent), info.TransactionCount), nil
}

// FetchFirstSeen returns the time the address first received funds.
func (b *Blockchair) FetchFirstSeen(ctx context.Context, address model.Address, _ uint64) (time.Time, error) {
	info, err := b.dashboard(ctx, "fetch_first_seen", address)
	if err != nil {
		return time.Time{}, err
	}
	if info.FirstSeenReceiving == nil || *info.FirstSeenReceiving == "" {
		return time.Time{}, ErrNoHistory
	}
	return parseBlockchairTime(*info.FirstSeenReceiving)
}

func (b *Blockchair) dashboard(ctx context.Context, operation string, address model.Address) (blockchairAddress, error) {
	var resp blockchairDashboard
	path := fmt.Sprintf("/dashboards/address/%s?limit=0", url.PathEscape(address.String()))
	if err := b.client.get(ctx, operation, path, &resp); err != nil {
		return blockchairAddress{}, err
	}
	entry, ok := resp.Data[address.String()]
	if !ok {
		return blockchairAddress{}, fmt.Errorf("address %s missing from dashboard", address)
	}
	return entry.Address, nil
}

func parseBlockchairTime(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(blockchairTimeLayout, value, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse first seen %q: %w", value, err)
	}
	return t.UTC(), nil
}
