package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/networth_dashboard/internal/apperrors"
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/networth_dashboard/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, password_hash, birthday, inflation_rate, created_at, last_updated_at`

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:        d.UserID,
		Username:      d.Username,
		PasswordHash:  d.PasswordHash,
		InflationRate: d.InflationRate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
	if d.Birthday != nil {
		m.Birthday = sql.NullTime{Time: *d.Birthday, Valid: true}
	}
	return m
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:        m.UserID,
		Username:      m.Username,
		PasswordHash:  m.PasswordHash,
		InflationRate: m.InflationRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.Birthday.Valid {
		b := m.Birthday.Time
		d.Birthday = &b
	}
	return d
}

func scanUser(row rowScanner) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.PasswordHash,
		&m.Birthday,
		&m.InflationRate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.PasswordHash,
		m.Birthday,
		m.InflationRate,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, m.Username)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, notFoundIfNoRows(err, "user", userID)
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		return nil, notFoundIfNoRows(err, "user", username)
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) UpdateUserProfile(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `UPDATE users SET birthday = $2, inflation_rate = $3, last_updated_at = $4 WHERE user_id = $1;`
	tag, err := r.db.Exec(ctx, query, m.UserID, m.Birthday, m.InflationRate, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update profile of user %s: %w", m.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, m.UserID)
	}
	return nil
}
