package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/apperrors"
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_dashboard/internal/core/ports/services"
	"github.com/SscSPs/networth_dashboard/internal/core/projection"
	"github.com/SscSPs/networth_dashboard/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type eventService struct {
	BaseService
	eventRepo   portsrepo.EventRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	validate    *validator.Validate
}

// EventServiceOption is a functional option for configuring the event service
type EventServiceOption func(*eventService)

// WithEventClock overrides the clock used when syncing account balances.
func WithEventClock(clock func() time.Time) EventServiceOption {
	return func(s *eventService) {
		s.Clock = clock
	}
}

// NewEventService creates a new event service.
func NewEventService(eventRepo portsrepo.EventRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, options ...EventServiceOption) portssvc.EventSvcFacade {
	svc := &eventService{
		eventRepo:   eventRepo,
		accountRepo: accountRepo,
		validate:    dto.NewValidator(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func newEvent(account domain.Account, t domain.EventType, date time.Time) domain.AccountEvent {
	return domain.AccountEvent{
		EventID:   uuid.NewString(),
		AccountID: account.AccountID,
		UserID:    account.UserID,
		Type:      t,
		Date:      date,
	}
}

func (s *eventService) ListEvents(ctx context.Context, userID string) ([]domain.AccountEvent, error) {
	events, err := s.eventRepo.ListEventsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events")
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListAccountEvents(ctx context.Context, userID, accountID string) ([]domain.AccountEvent, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, accountID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account for events", slog.String("account_id", accountID))
		return nil, err
	}
	events, err := s.eventRepo.ListEventsByAccount(ctx, userID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account events", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list account events: %w", err)
	}
	return events, nil
}

func (s *eventService) CreateEvent(ctx context.Context, userID string, req dto.CreateEventRequest) (*domain.AccountEvent, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account for event", slog.String("account_id", req.AccountID))
		return nil, err
	}

	event := newEvent(*account, req.Type, req.Date.Time)
	if req.Balance != nil && req.Type.CarriesBalance() {
		event.Balance = decimal.NewNullDecimal(*req.Balance)
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save event", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	s.LogInfo(ctx, "Event recorded", slog.String("event_id", event.EventID), slog.String("type", string(event.Type)))

	if event.Type == domain.BalanceUpdate {
		if err := s.syncBalance(ctx, event); err != nil {
			return nil, err
		}
	}
	return &event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, userID, eventID string, req dto.UpdateEventRequest) (*domain.AccountEvent, error) {
	event, err := s.eventRepo.FindEventByID(ctx, userID, eventID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find event", slog.String("event_id", eventID))
		return nil, err
	}

	if req.Date != nil {
		event.Date = req.Date.Time
	}
	if req.Balance != nil {
		if !event.Type.CarriesBalance() {
			return nil, fmt.Errorf("%w: %s events carry no balance", apperrors.ErrValidation, event.Type)
		}
		if req.Balance.IsNegative() {
			return nil, fmt.Errorf("%w: balance must be at least 0", apperrors.ErrValidation)
		}
		event.Balance = decimal.NewNullDecimal(*req.Balance)
	}

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	if event.Type == domain.BalanceUpdate {
		if err := s.syncBalance(ctx, *event); err != nil {
			return nil, err
		}
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	if err := s.eventRepo.DeleteEvent(ctx, userID, eventID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete event", slog.String("event_id", eventID))
		return fmt.Errorf("failed to delete event: %w", err)
	}
	s.LogInfo(ctx, "Event deleted", slog.String("event_id", eventID))
	return nil
}

// syncBalance copies event's balance onto its account when event is the
// account's latest anchor.
func (s *eventService) syncBalance(ctx context.Context, event domain.AccountEvent) error {
	events, err := s.eventRepo.ListEventsByAccount(ctx, event.UserID, event.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events for balance sync", slog.String("account_id", event.AccountID))
		return fmt.Errorf("failed to sync account balance: %w", err)
	}

	latest, ok := projection.LatestAnchor(events)
	if !ok || latest.EventID != event.EventID {
		return nil
	}

	if err := s.accountRepo.UpdateAccountBalance(ctx, event.UserID, event.AccountID, event.Balance.Decimal, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to sync account balance", slog.String("account_id", event.AccountID))
		return fmt.Errorf("failed to sync account balance: %w", err)
	}
	s.LogDebug(ctx, "Account balance synced from event", slog.String("account_id", event.AccountID), slog.String("event_id", event.EventID))
	return nil
}
