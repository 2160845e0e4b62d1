package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_dashboard/internal/core/ports/services"
	"github.com/SscSPs/networth_dashboard/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	validate    *validator.Validate
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountClock overrides the clock used for timestamps and default opening dates.
func WithAccountClock(clock func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.Clock = clock
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		validate:    dto.NewValidator(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// termsFor builds the accrual terms of fields, applying type defaults.
func termsFor(fields dto.AccountFields) domain.Terms {
	params := fields.AccountParams.TermParams()
	if fields.AccountType == domain.Vehicle && params.ExpectedGrowthRate == nil {
		rate := domain.DefaultVehicleGrowthRate
		params.ExpectedGrowthRate = &rate
	}
	return domain.NewTerms(fields.AccountType, params)
}

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	now := s.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Category:    req.Category,
		AccountType: req.AccountType,
		Balance:     *req.Balance,
		Terms:       termsFor(req.AccountFields),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	openedAt := now
	if req.OpenedAt != nil {
		openedAt = req.OpenedAt.Time
	}
	opened := newEvent(account, domain.AccountOpened, openedAt)
	opened.Balance.Valid = true
	opened.Balance.Decimal = account.Balance

	if err := s.accountRepo.SaveAccount(ctx, account, opened); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account for update", slog.String("account_id", accountID))
		return nil, err
	}

	account.Name = req.Name
	account.Category = req.Category
	account.AccountType = req.AccountType
	account.Balance = *req.Balance
	account.Terms = termsFor(req.AccountFields)
	account.LastUpdatedAt = s.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, userID, accountID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
