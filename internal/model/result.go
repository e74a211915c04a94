package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sources names the providers that answered each part of a lookup.
type Sources struct {
	Summary string
	History string
	Price   string
}

// LookupResult is the reconciled answer for one address. It is built once
// per request and never mutated afterwards.
type LookupResult struct {
	Address                 string
	AddressType             string
	FirstReceive            time.Time
	FirstReceiveApproximate bool
	LastActivity            time.Time
	LastOutgoing            *time.Time
	TotalReceived           decimal.Decimal
	TotalSent               decimal.Decimal
	CurrentBalance          decimal.Decimal
	TxCount                 uint64
	HoldDays                int64
	EverSold                bool
	Price                   decimal.Decimal
	Rank                    Rank
	Sources                 Sources
}
