package repositories

import (
	"context"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
)

// EventReader defines read operations for account events.
// Lists are ordered by date, then by insertion.
type EventReader interface {
	FindEventByID(ctx context.Context, userID, eventID string) (*domain.AccountEvent, error)
	ListEventsByUser(ctx context.Context, userID string) ([]domain.AccountEvent, error)
	ListEventsByAccount(ctx context.Context, userID, accountID string) ([]domain.AccountEvent, error)
}

// EventWriter defines write operations for account events.
type EventWriter interface {
	SaveEvent(ctx context.Context, event domain.AccountEvent) error
	UpdateEvent(ctx context.Context, event domain.AccountEvent) error
	DeleteEvent(ctx context.Context, userID, eventID string) error
}

// EventRepositoryFacade combines all event-related repository interfaces
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
