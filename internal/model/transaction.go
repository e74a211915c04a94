package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// TransactionInput references the output being spent. Address is empty when
// the provider did not resolve the previous output.
type TransactionInput struct {
	PrevTxID string
	PrevVout uint32
	Address  string
}

// TransactionOutput is a payment made by a transaction.
type TransactionOutput struct {
	Address string
	Value   btcutil.Amount
}

// Transaction is one entry of a provider's address history.
type Transaction struct {
	TxID      string
	BlockTime time.Time // zero while unconfirmed
	Inputs    []TransactionInput
	Outputs   []TransactionOutput
}

// Confirmed reports whether the transaction carries a block timestamp.
func (t Transaction) Confirmed() bool {
	return !t.BlockTime.IsZero()
}

// SpendsFrom reports whether any input spends an output owned by address.
func (t Transaction) SpendsFrom(address Address) bool {
	for _, in := range t.Inputs {
		if address.Equal(in.Address) {
			return true
		}
	}
	return false
}

// TransactionPage is an ordered, newest-first slice of an address history.
type TransactionPage struct {
	Transactions []Transaction
	// Next requests the page after this one; zero when the provider knows
	// there is nothing older.
	Next TraversalCursor
}

// Len returns the number of transactions on the page.
func (p TransactionPage) Len() int {
	return len(p.Transactions)
}

// Newest returns the timestamp of the newest confirmed transaction.
func (p TransactionPage) Newest() (time.Time, bool) {
	for _, tx := range p.Transactions {
		if tx.Confirmed() {
			return tx.BlockTime, true
		}
	}
	return time.Time{}, false
}

// Oldest returns the timestamp of the oldest confirmed transaction.
func (p TransactionPage) Oldest() (time.Time, bool) {
	for i := len(p.Transactions) - 1; i >= 0; i-- {
		if p.Transactions[i].Confirmed() {
			return p.Transactions[i].BlockTime, true
		}
	}
	return time.Time{}, false
}

// TraversalCursor is an opaque, provider-bound token requesting the next
// older page. It is never valid for a provider other than the one that issued it.
type TraversalCursor struct {
	provider string
	token    string
}

// NewTraversalCursor binds token to provider.
func NewTraversalCursor(provider, token string) TraversalCursor {
	return TraversalCursor{provider: provider, token: token}
}

// Provider returns the name of the issuing provider.
func (c TraversalCursor) Provider() string {
	return c.provider
}

// Token returns the provider-specific token.
func (c TraversalCursor) Token() string {
	return c.token
}

// IsZero reports whether the cursor is unset.
func (c TraversalCursor) IsZero() bool {
	return c.provider == "" && c.token == ""
}
