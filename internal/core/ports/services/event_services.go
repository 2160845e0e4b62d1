package services

import (
	"context"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/SscSPs/networth_dashboard/internal/dto"
)

// EventReaderSvc defines read operations for account events.
type EventReaderSvc interface {
	// ListEvents retrieves all events of userID, oldest first.
	ListEvents(ctx context.Context, userID string) ([]domain.AccountEvent, error)

	// ListAccountEvents retrieves the events of one account, oldest first.
	ListAccountEvents(ctx context.Context, userID, accountID string) ([]domain.AccountEvent, error)
}

// EventWriterSvc defines write operations for account events.
type EventWriterSvc interface {
	// CreateEvent records an event. A balance update that becomes the latest
	// anchor of its account also updates the account's current balance.
	CreateEvent(ctx context.Context, userID string, req dto.CreateEventRequest) (*domain.AccountEvent, error)

	// UpdateEvent changes an event's date or balance.
	UpdateEvent(ctx context.Context, userID, eventID string, req dto.UpdateEventRequest) (*domain.AccountEvent, error)

	// DeleteEvent removes an event.
	DeleteEvent(ctx context.Context, userID, eventID string) error
}

// EventSvcFacade combines all event-related service interfaces
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
}
