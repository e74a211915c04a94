// Package rpcclient wraps the btcd RPC client with per-call metrics.
package rpcclient

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/rpcclient"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Searcher is the subset of the btcd RPC client used for address history.
	Searcher interface {
		SearchRawTransactionsVerbose(address btcutil.Address, skip, count int, includePrevOut, reverse bool, filterAddrs []string) ([]*btcjson.SearchRawTransactionsResult, error)
		GetBlockCount() (int64, error)
	}
)

type ObservedClient struct {
	client     Searcher
	rpcMetrics RPCMetrics
}

var _ Searcher = (*rpcclient.Client)(nil)

func NewObservedClient(client Searcher, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

func (r *ObservedClient) SearchRawTransactionsVerbose(
	address btcutil.Address,
	skip, count int,
	includePrevOut, reverse bool,
	filterAddrs []string,
) (res []*btcjson.SearchRawTransactionsResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("search_raw_transactions", err, started)
	}()
	return r.client.SearchRawTransactionsVerbose(address, skip, count, includePrevOut, reverse, filterAddrs)
}
