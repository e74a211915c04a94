package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"github.com/shopspring/decimal"
)

const blockchainInfoPageSize = 25

type (
	blockchainInfoPrevOut struct {
		Addr  string `json:"addr"`
		Value int64  `json:"value"`
		N     uint32 `json:"n"`
	}

	blockchainInfoInput struct {
		PrevOut *blockchainInfoPrevOut `json:"prev_out"`
	}

	blockchainInfoOutput struct {
		Addr  string `json:"addr"`
		Value int64  `json:"value"`
	}

	blockchainInfoTx struct {
		Hash        string                 `json:"hash"`
		Time        int64                  `json:"time"`
		BlockHeight *int64                 `json:"block_height"`
		Inputs      []blockchainInfoInput  `json:"inputs"`
		Out         []blockchainInfoOutput `json:"out"`
	}

	blockchainInfoAddress struct {
		NTx           uint64             `json:"n_tx"`
		TotalReceived int64              `json:"total_received"`
		TotalSent     int64              `json:"total_sent"`
		Txs           []blockchainInfoTx `json:"txs"`
	}

	blockchainInfoTicker map[string]struct {
		Last float64 `json:"last"`
	}
)

// BlockchainInfo reads blockchain.info raw address data and the price ticker.
// Its history is offset based, so cursors carry the next offset.
type BlockchainInfo struct {
	unsupported
	name   string
	client jsonClient
}

var _ Client = (*BlockchainInfo)(nil)

// NewBlockchainInfo returns a blockchain.info client.
func NewBlockchainInfo(name, baseURL string, opts Options) *BlockchainInfo {
	return &BlockchainInfo{name: name, client: newJSONClient(baseURL, opts)}
}

// Name returns the provider name.
func (b *BlockchainInfo) Name() string { return b.name }

// PageSize returns the number of transactions requested per page.
func (b *BlockchainInfo) PageSize() int { return blockchainInfoPageSize }

// FetchSummary returns totals without transactions.
func (b *BlockchainInfo) FetchSummary(ctx context.Context, address model.Address) (model.WalletSummary, error) {
	resp, err := b.rawaddr(ctx, "fetch_summary", address, 0, 0)
	if err != nil {
		return model.WalletSummary{}, err
	}
	if resp.TotalReceived < 0 || resp.TotalSent < 0 {
		return model.WalletSummary{}, fmt.Errorf("negative totals for %s", address)
	}
	return model.NewWalletSummary(btcutil.Amount(resp.TotalReceived), btcutil.Amount(resp.TotalSent), resp.NTx), nil
}

// FetchFirstPage returns the newest transactions.
func (b *BlockchainInfo) FetchFirstPage(ctx context.Context, address model.Address) (model.TransactionPage, error) {
	return b.fetchPage(ctx, "fetch_first_page", address, 0)
}

// FetchNextPage returns the page starting at the cursor offset.
func (b *BlockchainInfo) FetchNextPage(ctx context.Context, address model.Address, cursor model.TraversalCursor) (model.TransactionPage, error) {
	if err := checkCursor(b.name, cursor); err != nil {
		return model.TransactionPage{}, err
	}
	offset, err := strconv.ParseUint(cursor.Token(), 10, 64)
	if err != nil {
		return model.TransactionPage{}, fmt.Errorf("parse cursor offset %q: %w", cursor.Token(), err)
	}
	return b.fetchPage(ctx, "fetch_next_page", address, offset)
}

// FetchFirstSeen jumps straight to the oldest transaction using the known
// transaction count.
func (b *BlockchainInfo) FetchFirstSeen(ctx context.Context, address model.Address, txCount uint64) (time.Time, error) {
	if txCount == 0 {
		return time.Time{}, ErrNoHistory
	}
	resp, err := b.rawaddr(ctx, "fetch_first_seen", address, 1, txCount-1)
	if err != nil {
		return time.Time{}, err
	}
	if len(resp.Txs) == 0 || resp.Txs[0].Time <= 0 {
		return time.Time{}, ErrNoHistory
	}
	return time.Unix(resp.Txs[0].Time, 0).UTC(), nil
}

// FetchPrice returns the last USD trade from the ticker.
func (b *BlockchainInfo) FetchPrice(ctx context.Context) (decimal.Decimal, error) {
	var ticker blockchainInfoTicker
	if err := b.client.get(ctx, "fetch_price", "/ticker", &ticker); err != nil {
		return decimal.Decimal{}, err
	}
	usd, ok := ticker["USD"]
	if !ok {
		return decimal.Decimal{}, errors.New("ticker has no USD entry")
	}
	if usd.Last <= 0 {
		return decimal.Decimal{}, errors.New("price must be positive")
	}
	return decimal.NewFromFloat(usd.Last), nil
}

func (b *BlockchainInfo) fetchPage(ctx context.Context, operation string, address model.Address, offset uint64) (model.TransactionPage, error) {
	resp, err := b.rawaddr(ctx, operation, address, blockchainInfoPageSize, offset)
	if err != nil {
		return model.TransactionPage{}, err
	}
	page := model.TransactionPage{Transactions: make([]model.Transaction, 0, len(resp.Txs))}
	for _, tx := range resp.Txs {
		page.Transactions = append(page.Transactions, convertBlockchainInfoTx(tx))
	}
	if len(resp.Txs) > 0 {
		next := offset + uint64(len(resp.Txs))
		page.Next = model.NewTraversalCursor(b.name, strconv.FormatUint(next, 10))
	}
	return page, nil
}

func (b *BlockchainInfo) rawaddr(ctx context.Context, operation string, address model.Address, limit, offset uint64) (blockchainInfoAddress, error) {
	var resp blockchainInfoAddress
	path := fmt.Sprintf("/rawaddr/%s?limit=%d&offset=%d", url.PathEscape(address.String()), limit, offset)
	if err := b.client.get(ctx, operation, path, &resp); err != nil {
		if StatusCode(err) == http.StatusBadRequest {
			return blockchainInfoAddress{}, fmt.Errorf("%w: %s", ErrInvalidAddress, err)
		}
		return blockchainInfoAddress{}, err
	}
	return resp, nil
}

func convertBlockchainInfoTx(tx blockchainInfoTx) model.Transaction {
	out := model.Transaction{
		TxID:    tx.Hash,
		Inputs:  make([]model.TransactionInput, 0, len(tx.Inputs)),
		Outputs: make([]model.TransactionOutput, 0, len(tx.Out)),
	}
	if tx.BlockHeight != nil && tx.Time > 0 {
		out.BlockTime = time.Unix(tx.Time, 0).UTC()
	}
	for _, in := range tx.Inputs {
		input := model.TransactionInput{}
		if in.PrevOut != nil {
			input.Address = in.PrevOut.Addr
			input.PrevVout = in.PrevOut.N
		}
		out.Inputs = append(out.Inputs, input)
	}
	for _, o := range tx.Out {
		out.Outputs = append(out.Outputs, model.TransactionOutput{Address: o.Addr, Value: btcutil.Amount(o.Value)})
	}
	return out
}
