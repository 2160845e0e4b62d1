package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/apperrors"
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/networth_dashboard/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, user_id, name, category, account_type, balance,
	interest_rate, expected_growth_rate, monthly_contribution, monthly_payment, remaining_term,
	created_at, last_updated_at`

const insertAccountSQL = `
	INSERT INTO accounts (` + accountColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

// Helper to convert domain.Account to models.Account for DB storage
func toModelAccount(d domain.Account) models.Account {
	p := domain.ParamsOf(d.Terms)
	m := models.Account{
		AccountID:           d.AccountID,
		UserID:              d.UserID,
		Name:                d.Name,
		Category:            string(d.Category),
		AccountType:         string(d.AccountType),
		Balance:             d.Balance,
		InterestRate:        nullDecimal(p.InterestRate),
		ExpectedGrowthRate:  nullDecimal(p.ExpectedGrowthRate),
		MonthlyContribution: nullDecimal(p.MonthlyContribution),
		MonthlyPayment:      nullDecimal(p.MonthlyPayment),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
	if p.RemainingTerm != nil {
		m.RemainingTerm = pgtype.Int4{Int32: int32(*p.RemainingTerm), Valid: true}
	}
	return m
}

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	params := domain.TermParams{
		InterestRate:        decimalPtr(m.InterestRate),
		ExpectedGrowthRate:  decimalPtr(m.ExpectedGrowthRate),
		MonthlyContribution: decimalPtr(m.MonthlyContribution),
		MonthlyPayment:      decimalPtr(m.MonthlyPayment),
	}
	if m.RemainingTerm.Valid {
		term := int(m.RemainingTerm.Int32)
		params.RemainingTerm = &term
	}
	accountType := domain.AccountType(m.AccountType)
	return domain.Account{
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		Name:        m.Name,
		Category:    domain.AccountCategory(m.Category),
		AccountType: accountType,
		Balance:     m.Balance,
		Terms:       domain.NewTerms(accountType, params),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func scanAccount(row rowScanner) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.Name,
		&m.Category,
		&m.AccountType,
		&m.Balance,
		&m.InterestRate,
		&m.ExpectedGrowthRate,
		&m.MonthlyContribution,
		&m.MonthlyPayment,
		&m.RemainingTerm,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func accountArgs(m models.Account) []any {
	return []any{
		m.AccountID,
		m.UserID,
		m.Name,
		m.Category,
		m.AccountType,
		m.Balance,
		m.InterestRate,
		m.ExpectedGrowthRate,
		m.MonthlyContribution,
		m.MonthlyPayment,
		m.RemainingTerm,
		m.CreatedAt,
		m.LastUpdatedAt,
	}
}

// SaveAccount inserts a new account and its opening event atomically.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account, opened domain.AccountEvent) error {
	modelAcc := toModelAccount(account)
	modelEvt := toModelEvent(opened)

	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertAccountSQL, accountArgs(modelAcc)...); err != nil {
			if pgErrorCode(err) == pgUniqueViolation {
				return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
			}
			return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
		}
		if _, err := tx.Exec(ctx, insertEventSQL, eventArgs(modelEvt)...); err != nil {
			return fmt.Errorf("failed to save opening event for account %s: %w", modelAcc.AccountID, err)
		}
		return nil
	})
}

// FindAccountByID retrieves an account by its ID, scoped to its owner.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 AND user_id = $2;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID, userID))
	if err != nil {
		return nil, notFoundIfNoRows(err, "account", accountID)
	}
	acc := toDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves all accounts of a user in creation order.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY created_at, account_id;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccount overwrites the editable columns of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $3, category = $4, account_type = $5, balance = $6,
			interest_rate = $7, expected_growth_rate = $8, monthly_contribution = $9,
			monthly_payment = $10, remaining_term = $11, last_updated_at = $12
		WHERE account_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.UserID, m.Name, m.Category, m.AccountType, m.Balance,
		m.InterestRate, m.ExpectedGrowthRate, m.MonthlyContribution,
		m.MonthlyPayment, m.RemainingTerm, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}
	return nil
}

// UpdateAccountBalance sets the current balance of an account.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, userID, accountID string, balance decimal.Decimal, now time.Time) error {
	query := `UPDATE accounts SET balance = $3, last_updated_at = $4 WHERE account_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, accountID, userID, balance, now)
	if err != nil {
		return fmt.Errorf("failed to update balance of account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// DeleteAccount removes an account; its events go with it.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, userID, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1 AND user_id = $2;`, accountID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// ReplaceAccounts swaps the user's accounts and events for the given ones.
// Inserts are sent as one batch so events keep their slice order.
func (r *PgxAccountRepository) ReplaceAccounts(ctx context.Context, userID string, accounts []domain.Account, events []domain.AccountEvent) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE user_id = $1;`, userID); err != nil {
			return fmt.Errorf("failed to clear accounts of user %s: %w", userID, err)
		}

		batch := &pgx.Batch{}
		for _, a := range accounts {
			batch.Queue(insertAccountSQL, accountArgs(toModelAccount(a))...)
		}
		for _, e := range events {
			batch.Queue(insertEventSQL, eventArgs(toModelEvent(e))...)
		}
		if batch.Len() == 0 {
			return nil
		}

		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to insert imported record %d: %w", i, err)
			}
		}
		return results.Close()
	})
}
