package dto

import (
	"time"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEventRequest records a dated fact about an account.
// Balance is required unless the event closes the account.
type CreateEventRequest struct {
	AccountID string           `json:"accountID" binding:"required"`
	Type      domain.EventType `json:"type" binding:"required,oneof=account_opened balance_update account_closed"`
	Date      *Date            `json:"date" binding:"required"`
	Balance   *decimal.Decimal `json:"balance,omitempty"`
}

// UpdateEventRequest changes an event's date or balance. Omitted fields are kept.
type UpdateEventRequest struct {
	Date    *Date            `json:"date,omitempty"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID   string           `json:"eventID"`
	AccountID string           `json:"accountID"`
	Type      domain.EventType `json:"type"`
	Date      time.Time        `json:"date"`
	Balance   *decimal.Decimal `json:"balance,omitempty"`
}

// ToEventResponse converts a domain.AccountEvent to EventResponse DTO
func ToEventResponse(e *domain.AccountEvent) EventResponse {
	res := EventResponse{
		EventID:   e.EventID,
		AccountID: e.AccountID,
		Type:      e.Type,
		Date:      e.Date,
	}
	if e.Balance.Valid {
		b := e.Balance.Decimal
		res.Balance = &b
	}
	return res
}

// ToListEventResponse converts a slice of events.
func ToListEventResponse(events []domain.AccountEvent) []EventResponse {
	res := make([]EventResponse, len(events))
	for i := range events {
		res[i] = ToEventResponse(&events[i])
	}
	return res
}
