package model

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// WalletSummary holds funded/spent totals reported by one provider.
type WalletSummary struct {
	TotalReceived  btcutil.Amount
	TotalSent      btcutil.Amount
	CurrentBalance btcutil.Amount
	TxCount        uint64
}

// NewWalletSummary builds a summary from funded and spent satoshi totals.
func NewWalletSummary(received, sent btcutil.Amount, txCount uint64) WalletSummary {
	return WalletSummary{
		TotalReceived:  received,
		TotalSent:      sent,
		CurrentBalance: received - sent,
		TxCount:        txCount,
	}
}

// EverSent reports whether any funds ever left the address.
func (s WalletSummary) EverSent() bool {
	return s.TotalSent > 0
}

// ToBTC converts satoshis into an exact decimal BTC value.
func ToBTC(amount btcutil.Amount) decimal.Decimal {
	return decimal.New(int64(amount), -8)
}
