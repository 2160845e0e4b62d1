package dto

import (
	"time"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BundleVersion is the only export format version understood by import.
const BundleVersion = 1

// Bundle is the portable export of one user's data.
type Bundle struct {
	Version    int             `json:"version"`
	ExportedAt time.Time       `json:"exportedAt"`
	Profile    *BundleProfile  `json:"profile,omitempty"`
	Accounts   []BundleAccount `json:"accounts"`
}

// BundleProfile carries the projection preferences. On import, a present
// birthday key (even null) overwrites the stored birthday.
type BundleProfile struct {
	Username      string           `json:"username,omitempty"`
	Birthday      NullableDate     `json:"birthday"`
	InflationRate *decimal.Decimal `json:"inflationRate,omitempty"`
}

// BundleAccount is an account together with its event log.
type BundleAccount struct {
	AccountFields
	Events []BundleEvent `json:"events,omitempty" binding:"omitempty,dive"`
}

// BundleEvent is one exported account event.
type BundleEvent struct {
	Type    domain.EventType `json:"type" binding:"required,oneof=account_opened balance_update account_closed"`
	Date    *Date            `json:"date" binding:"required"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

// ImportFailure explains why one account of a bundle was skipped.
type ImportFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ImportCounts reports how many records were written.
type ImportCounts struct {
	Accounts int `json:"accounts"`
	Events   int `json:"events"`
}

// ImportResult is returned by a completed import.
type ImportResult struct {
	Imported ImportCounts    `json:"imported"`
	Failures []ImportFailure `json:"failures"`
}

// ToBundleAccount converts an account and its events for export.
func ToBundleAccount(acc *domain.Account, events []domain.AccountEvent) BundleAccount {
	balance := acc.Balance
	out := BundleAccount{
		AccountFields: AccountFields{
			Name:          acc.Name,
			Category:      acc.Category,
			AccountType:   acc.AccountType,
			Balance:       &balance,
			AccountParams: ToAccountParams(acc.Terms),
		},
		Events: make([]BundleEvent, 0, len(events)),
	}
	for _, e := range events {
		be := BundleEvent{Type: e.Type, Date: &Date{Time: e.Date}}
		if e.Balance.Valid {
			b := e.Balance.Decimal
			be.Balance = &b
		}
		out.Events = append(out.Events, be)
	}
	return out
}
