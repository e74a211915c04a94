package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"github.com/shopspring/decimal"
)

const esploraPageSize = 25

type (
	esploraStats struct {
		FundedTxoSum int64  `json:"funded_txo_sum"`
		SpentTxoSum  int64  `json:"spent_txo_sum"`
		TxCount      uint64 `json:"tx_count"`
	}

	esploraAddress struct {
		Address    string       `json:"address"`
		ChainStats esploraStats `json:"chain_stats"`
	}

	esploraPrevout struct {
		Address string `json:"scriptpubkey_address"`
		Value   int64  `json:"value"`
	}

	esploraVin struct {
		TxID       string          `json:"txid"`
		Vout       uint32          `json:"vout"`
		IsCoinbase bool            `json:"is_coinbase"`
		Prevout    *esploraPrevout `json:"prevout"`
	}

	esploraVout struct {
		Address string `json:"scriptpubkey_address"`
		Value   int64  `json:"value"`
	}

	esploraStatus struct {
		Confirmed bool  `json:"confirmed"`
		BlockTime int64 `json:"block_time"`
	}

	esploraTx struct {
		TxID   string        `json:"txid"`
		Vin    []esploraVin  `json:"vin"`
		Vout   []esploraVout `json:"vout"`
		Status esploraStatus `json:"status"`
	}
)

// Esplora talks to an Esplora REST API (blockstream.info, mempool.space).
type Esplora struct {
	unsupported
	name      string
	client    jsonClient
	withPrice bool
}

var _ Client = (*Esplora)(nil)

// NewEsplora returns an Esplora client. withPrice enables the mempool.space
// /v1/prices endpoint, which plain Esplora deployments do not serve.
func NewEsplora(name, baseURL string, withPrice bool, opts Options) *Esplora {
	return &Esplora{
		name:      name,
		client:    newJSONClient(baseURL, opts),
		withPrice: withPrice,
	}
}

// Name returns the provider name.
func (e *Esplora) Name() string { return e.name }

// PageSize returns the number of confirmed transactions per chain page.
func (e *Esplora) PageSize() int { return esploraPageSize }

// FetchSummary returns confirmed funded/spent totals.
func (e *Esplora) FetchSummary(ctx context.Context, address model.Address) (model.WalletSummary, error) {
	var resp esploraAddress
	if err := e.client.get(ctx, "fetch_summary", "/address/"+url.PathEscape(address.String()), &resp); err != nil {
		return model.WalletSummary{}, e.mapError(err)
	}
	stats := resp.ChainStats
	if stats.FundedTxoSum < 0 || stats.SpentTxoSum < 0 {
		return model.WalletSummary{}, fmt.Errorf("negative totals for %s", address)
	}
	return model.NewWalletSummary(btcutil.Amount(stats.FundedTxoSum), btcutil.Amount(stats.SpentTxoSum), stats.TxCount), nil
}

// FetchFirstPage returns the newest confirmed transactions.
func (e *Esplora) FetchFirstPage(ctx context.Context, address model.Address) (model.TransactionPage, error) {
	path := fmt.Sprintf("/address/%s/txs/chain", url.PathEscape(address.String()))
	return e.fetchPage(ctx, "fetch_first_page", path)
}

// FetchNextPage returns the transactions older than the cursor txid.
func (e *Esplora) FetchNextPage(ctx context.Context, address model.Address, cursor model.TraversalCursor) (model.TransactionPage, error) {
	if err := checkCursor(e.name, cursor); err != nil {
		return model.TransactionPage{}, err
	}
	path := fmt.Sprintf("/address/%s/txs/chain/%s", url.PathEscape(address.String()), url.PathEscape(cursor.Token()))
	page, err := e.fetchPage(ctx, "fetch_next_page", path)
	if err != nil && StatusCode(err) == http.StatusNotFound {
		return model.TransactionPage{}, fmt.Errorf("%w: %s", ErrPageNotFound, cursor.Token())
	}
	return page, err
}

// FetchPrice returns the USD price when the deployment publishes one.
func (e *Esplora) FetchPrice(ctx context.Context) (decimal.Decimal, error) {
	if !e.withPrice {
		return decimal.Decimal{}, ErrUnsupported
	}
	var resp struct {
		USD float64 `json:"USD"`
	}
	if err := e.client.get(ctx, "fetch_price", "/v1/prices", &resp); err != nil {
		return decimal.Decimal{}, err
	}
	if resp.USD <= 0 {
		return decimal.Decimal{}, errors.New("price must be positive")
	}
	return decimal.NewFromFloat(resp.USD), nil
}

func (e *Esplora) fetchPage(ctx context.Context, operation, path string) (model.TransactionPage, error) {
	var txs []esploraTx
	if err := e.client.get(ctx, operation, path, &txs); err != nil {
		return model.TransactionPage{}, e.mapError(err)
	}

	page := model.TransactionPage{Transactions: make([]model.Transaction, 0, len(txs))}
	for _, tx := range txs {
		page.Transactions = append(page.Transactions, convertEsploraTx(tx))
	}
	if len(txs) > 0 {
		page.Next = model.NewTraversalCursor(e.name, txs[len(txs)-1].TxID)
	}
	return page, nil
}

func (e *Esplora) mapError(err error) error {
	if StatusCode(err) == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}
	return err
}

func convertEsploraTx(tx esploraTx) model.Transaction {
	out := model.Transaction{
		TxID:    tx.TxID,
		Inputs:  make([]model.TransactionInput, 0, len(tx.Vin)),
		Outputs: make([]model.TransactionOutput, 0, len(tx.Vout)),
	}
	if tx.Status.Confirmed && tx.Status.BlockTime > 0 {
		out.BlockTime = time.Unix(tx.Status.BlockTime, 0).UTC()
	}
	for _, vin := range tx.Vin {
		in := model.TransactionInput{PrevTxID: vin.TxID, PrevVout: vin.Vout}
		if vin.Prevout != nil && !vin.IsCoinbase {
			in.Address = vin.Prevout.Address
		}
		out.Inputs = append(out.Inputs, in)
	}
	for _, vout := range tx.Vout {
		out.Outputs = append(out.Outputs, model.TransactionOutput{
			Address: vout.Address,
			Value:   btcutil.Amount(vout.Value),
		})
	}
	return out
}
