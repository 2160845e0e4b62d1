package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountEvent is a row of the account_events table.
type AccountEvent struct {
	EventID   string              `db:"event_id"`
	AccountID string              `db:"account_id"`
	UserID    string              `db:"user_id"`
	EventType string              `db:"event_type"`
	EventDate time.Time           `db:"event_date"`
	Balance   decimal.NullDecimal `db:"balance"`
}
