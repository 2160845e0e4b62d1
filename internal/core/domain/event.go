package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType identifies a lifecycle fact about an account's balance.
type EventType string

const (
	AccountOpened EventType = "account_opened"
	BalanceUpdate EventType = "balance_update"
	AccountClosed EventType = "account_closed"
)

// IsValid reports whether t is one of the known event types.
func (t EventType) IsValid() bool {
	switch t {
	case AccountOpened, BalanceUpdate, AccountClosed:
		return true
	}
	return false
}

// CarriesBalance reports whether events of this type record a known balance.
func (t EventType) CarriesBalance() bool {
	return t == AccountOpened || t == BalanceUpdate
}

// AccountEvent is a dated fact about one account. Balance is set for
// account_opened and balance_update events and unset for account_closed.
type AccountEvent struct {
	EventID   string              `json:"eventID"`
	AccountID string              `json:"accountID"`
	UserID    string              `json:"userID"`
	Type      EventType           `json:"type"`
	Date      time.Time           `json:"date"`
	Balance   decimal.NullDecimal `json:"balance"`
}
