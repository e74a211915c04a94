package provider

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"github.com/goodnatureofminers/hodlscope-backend/pkg/safe"
	"go.uber.org/ratelimit"
)

const btcdPageSize = 25

// Searcher is the address index surface of a btcd node started with --addrindex.
type Searcher interface {
	SearchRawTransactionsVerbose(address btcutil.Address, skip, count int, includePrevOut, reverse bool, filterAddrs []string) ([]*btcjson.SearchRawTransactionsResult, error)
}

// Btcd resolves history from a self-hosted btcd node. It cannot report
// totals or prices.
type Btcd struct {
	unsupported
	name    string
	rpc     Searcher
	limiter ratelimit.Limiter
}

var _ Client = (*Btcd)(nil)

// NewBtcd wraps an address-indexed btcd RPC client.
func NewBtcd(name string, rpc Searcher, limiter ratelimit.Limiter) *Btcd {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &Btcd{name: name, rpc: rpc, limiter: limiter}
}

// Name returns the provider name.
func (b *Btcd) Name() string { return b.name }

// PageSize returns the number of transactions requested per page.
func (b *Btcd) PageSize() int { return btcdPageSize }

// FetchFirstPage returns the newest transactions.
func (b *Btcd) FetchFirstPage(ctx context.Context, address model.Address) (model.TransactionPage, error) {
	return b.fetchPage(ctx, address, 0)
}

// FetchNextPage returns the page starting at the cursor offset.
func (b *Btcd) FetchNextPage(ctx context.Context, address model.Address, cursor model.TraversalCursor) (model.TransactionPage, error) {
	if err := checkCursor(b.name, cursor); err != nil {
		return model.TransactionPage{}, err
	}
	offset, err := strconv.ParseUint(cursor.Token(), 10, 64)
	if err != nil {
		return model.TransactionPage{}, fmt.Errorf("parse cursor offset %q: %w", cursor.Token(), err)
	}
	return b.fetchPage(ctx, address, offset)
}

// FetchFirstSeen asks the index for the single oldest transaction.
func (b *Btcd) FetchFirstSeen(ctx context.Context, address model.Address, _ uint64) (time.Time, error) {
	txs, err := b.search(ctx, address, 0, 1, false, false)
	if err != nil {
		return time.Time{}, err
	}
	if len(txs) == 0 || txs[0].Blocktime <= 0 {
		return time.Time{}, ErrNoHistory
	}
	return time.Unix(txs[0].Blocktime, 0).UTC(), nil
}

func (b *Btcd) fetchPage(ctx context.Context, address model.Address, offset uint64) (model.TransactionPage, error) {
	skip, err := safe.Int(offset)
	if err != nil {
		return model.TransactionPage{}, fmt.Errorf("convert offset: %w", err)
	}
	txs, err := b.search(ctx, address, skip, btcdPageSize, true, true)
	if err != nil {
		return model.TransactionPage{}, err
	}
	page := model.TransactionPage{Transactions: make([]model.Transaction, 0, len(txs))}
	for _, tx := range txs {
		converted, err := convertBtcdTx(tx)
		if err != nil {
			return model.TransactionPage{}, err
		}
		page.Transactions = append(page.Transactions, converted)
	}
	if len(txs) > 0 {
		next := offset + uint64(len(txs))
		page.Next = model.NewTraversalCursor(b.name, strconv.FormatUint(next, 10))
	}
	return page, nil
}

type searchResult struct {
	txs []*btcjson.SearchRawTransactionsResult
	err error
}

// search runs the blocking RPC call and gives up when ctx is done. The
// btcd client takes no context, so an abandoned call keeps running in the
// background until the node answers or the client is shut down.
func (b *Btcd) search(ctx context.Context, address model.Address, skip, count int, prevOut, reverse bool) ([]*btcjson.SearchRawTransactionsResult, error) {
	decoded := address.Decoded()
	if decoded == nil {
		return nil, ErrUnsupported
	}
	if err := ctx.Err(); err != nil {
		return nil, wrapTimeout(err)
	}
	b.limiter.Take()

	done := make(chan searchResult, 1)
	go func() {
		txs, err := b.rpc.SearchRawTransactionsVerbose(decoded, skip, count, prevOut, reverse, nil)
		done <- searchResult{txs: txs, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, wrapTimeout(ctx.Err())
	case res := <-done:
		if res.err != nil {
			var rpcErr *btcjson.RPCError
			if errors.As(res.err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCNoTxInfo {
				return nil, nil
			}
			return nil, fmt.Errorf("search raw transactions: %w", res.err)
		}
		return res.txs, nil
	}
}

func convertBtcdTx(tx *btcjson.SearchRawTransactionsResult) (model.Transaction, error) {
	out := model.Transaction{
		TxID:    tx.Txid,
		Inputs:  make([]model.TransactionInput, 0, len(tx.Vin)),
		Outputs: make([]model.TransactionOutput, 0, len(tx.Vout)),
	}
	if tx.Confirmations > 0 && tx.Blocktime > 0 {
		out.BlockTime = time.Unix(tx.Blocktime, 0).UTC()
	}
	for _, vin := range tx.Vin {
		input := model.TransactionInput{PrevTxID: vin.Txid, PrevVout: vin.Vout}
		if !vin.IsCoinBase() && vin.PrevOut != nil && len(vin.PrevOut.Addresses) > 0 {
			input.Address = vin.PrevOut.Addresses[0]
		}
		out.Inputs = append(out.Inputs, input)
	}
	for idx, vout := range tx.Vout {
		value, err := btcutil.NewAmount(vout.Value)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s output %d value: %w", tx.Txid, idx, err)
		}
		out.Outputs = append(out.Outputs, model.TransactionOutput{Address: outputAddress(vout.ScriptPubKey), Value: value})
	}
	return out, nil
}
