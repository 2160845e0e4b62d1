package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account owned by userID.
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts of a user, oldest first.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account together with its account_opened event.
	SaveAccount(ctx context.Context, account domain.Account, opened domain.AccountEvent) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountBalance sets the current balance of an account.
	UpdateAccountBalance(ctx context.Context, userID, accountID string, balance decimal.Decimal, now time.Time) error

	// DeleteAccount removes an account and, by cascade, its events.
	DeleteAccount(ctx context.Context, userID, accountID string) error
}

// AccountBulkWriter supports replacing a user's whole data set.
type AccountBulkWriter interface {
	// ReplaceAccounts deletes every account of userID and inserts accounts
	// and events in one transaction.
	ReplaceAccounts(ctx context.Context, userID string, accounts []domain.Account, events []domain.AccountEvent) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBulkWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
