package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/networth_dashboard/internal/apperrors"
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/networth_dashboard/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const eventColumns = `event_id, account_id, user_id, event_type, event_date, balance`

const insertEventSQL = `
	INSERT INTO account_events (` + eventColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6);
`

type PgxEventRepository struct {
	pool *pgxpool.Pool
}

func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{pool: pool}
}

// Ensure PgxEventRepository implements portsrepo.EventRepositoryFacade
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

func toModelEvent(d domain.AccountEvent) models.AccountEvent {
	return models.AccountEvent{
		EventID:   d.EventID,
		AccountID: d.AccountID,
		UserID:    d.UserID,
		EventType: string(d.Type),
		EventDate: d.Date,
		Balance:   d.Balance,
	}
}

func toDomainEvent(m models.AccountEvent) domain.AccountEvent {
	return domain.AccountEvent{
		EventID:   m.EventID,
		AccountID: m.AccountID,
		UserID:    m.UserID,
		Type:      domain.EventType(m.EventType),
		Date:      m.EventDate,
		Balance:   m.Balance,
	}
}

func eventArgs(m models.AccountEvent) []any {
	return []any{m.EventID, m.AccountID, m.UserID, m.EventType, m.EventDate, m.Balance}
}

func scanEvent(row rowScanner) (models.AccountEvent, error) {
	var m models.AccountEvent
	err := row.Scan(&m.EventID, &m.AccountID, &m.UserID, &m.EventType, &m.EventDate, &m.Balance)
	return m, err
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.AccountEvent) error {
	_, err := r.pool.Exec(ctx, insertEventSQL, eventArgs(toModelEvent(event))...)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: event with ID %s already exists", apperrors.ErrDuplicate, event.EventID)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, event.AccountID)
		}
		return fmt.Errorf("failed to save event %s: %w", event.EventID, err)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, userID, eventID string) (*domain.AccountEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM account_events WHERE event_id = $1 AND user_id = $2;`
	m, err := scanEvent(r.pool.QueryRow(ctx, query, eventID, userID))
	if err != nil {
		return nil, notFoundIfNoRows(err, "event", eventID)
	}
	e := toDomainEvent(m)
	return &e, nil
}

func (r *PgxEventRepository) listEvents(ctx context.Context, query string, args ...any) ([]domain.AccountEvent, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.AccountEvent{}
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, toDomainEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

func (r *PgxEventRepository) ListEventsByUser(ctx context.Context, userID string) ([]domain.AccountEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM account_events WHERE user_id = $1 ORDER BY event_date, event_seq;`
	return r.listEvents(ctx, query, userID)
}

func (r *PgxEventRepository) ListEventsByAccount(ctx context.Context, userID, accountID string) ([]domain.AccountEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM account_events WHERE user_id = $1 AND account_id = $2 ORDER BY event_date, event_seq;`
	return r.listEvents(ctx, query, userID, accountID)
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.AccountEvent) error {
	query := `UPDATE account_events SET event_date = $3, balance = $4 WHERE event_id = $1 AND user_id = $2;`
	tag, err := r.pool.Exec(ctx, query, event.EventID, event.UserID, event.Date, event.Balance)
	if err != nil {
		return fmt.Errorf("failed to update event %s: %w", event.EventID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: event %s", apperrors.ErrNotFound, event.EventID)
	}
	return nil
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, userID, eventID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM account_events WHERE event_id = $1 AND user_id = $2;`, eventID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	return nil
}
