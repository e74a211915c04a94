package lookup

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	"github.com/shopspring/decimal"
)

const (
	sourceOverride = "override"
	sourceFallback = "fallback"
)

type firstReceive struct {
	at          time.Time
	approximate bool
	source      string
}

// evidence is everything gathered for one address before reconciliation.
type evidence struct {
	address       model.Address
	summary       model.WalletSummary
	summarySource string
	first         firstReceive
	lastActivity  time.Time
	lastOutgoing  *time.Time
	price         decimal.Decimal
	priceSource   string
}

// reconcile merges partial answers into the final result.
func reconcile(now time.Time, fallbackPrice decimal.Decimal, e evidence) (*model.LookupResult, error) {
	if e.first.at.IsZero() {
		return nil, newError(KindHistoryUnresolved, "reconcile", errors.New("first receive time unknown"))
	}

	lastActivity := e.lastActivity
	if lastActivity.IsZero() || lastActivity.Before(e.first.at) {
		lastActivity = e.first.at
	}

	price, priceSource := e.price, e.priceSource
	if priceSource == "" || !price.IsPositive() {
		price, priceSource = fallbackPrice, sourceFallback
	}

	everSold := e.summary.EverSent()
	var lastOutgoing *time.Time
	if everSold && e.lastOutgoing != nil {
		t := *e.lastOutgoing
		lastOutgoing = &t
	}

	holdDays := holdDays(now, e.first.at)
	return &model.LookupResult{
		Address:                 e.address.String(),
		AddressType:             e.address.ScriptClass(),
		FirstReceive:            e.first.at,
		FirstReceiveApproximate: e.first.approximate,
		LastActivity:            lastActivity,
		LastOutgoing:            lastOutgoing,
		TotalReceived:           model.ToBTC(e.summary.TotalReceived),
		TotalSent:               model.ToBTC(e.summary.TotalSent),
		CurrentBalance:          model.ToBTC(e.summary.CurrentBalance),
		TxCount:                 e.summary.TxCount,
		HoldDays:                holdDays,
		EverSold:                everSold,
		Price:                   price,
		Rank:                    model.RankFor(holdDays, everSold),
		Sources: model.Sources{
			Summary: e.summarySource,
			History: e.first.source,
			Price:   priceSource,
		},
	}, nil
}

// holdDays counts whole days elapsed since first, never negative.
func holdDays(now, first time.Time) int64 {
	elapsed := now.Sub(first)
	if elapsed <= 0 {
		return 0
	}
	return int64(elapsed / (24 * time.Hour))
}
