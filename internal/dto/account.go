package dto

import (
	"time"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountParams are the optional accrual parameters of an account.
// Which of them are required depends on the account type.
type AccountParams struct {
	InterestRate        *decimal.Decimal `json:"interestRate,omitempty"`
	ExpectedGrowthRate  *decimal.Decimal `json:"expectedGrowthRate,omitempty"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution,omitempty"`
	MonthlyPayment      *decimal.Decimal `json:"monthlyPayment,omitempty"`
	RemainingTerm       *int             `json:"remainingTerm,omitempty" binding:"omitempty,min=0"`
}

// TermParams converts p to the domain's nullable parameter set.
func (p AccountParams) TermParams() domain.TermParams {
	return domain.TermParams{
		InterestRate:        p.InterestRate,
		ExpectedGrowthRate:  p.ExpectedGrowthRate,
		MonthlyContribution: p.MonthlyContribution,
		MonthlyPayment:      p.MonthlyPayment,
		RemainingTerm:       p.RemainingTerm,
	}
}

// ToAccountParams flattens account terms for output.
func ToAccountParams(t domain.Terms) AccountParams {
	p := domain.ParamsOf(t)
	return AccountParams{
		InterestRate:        p.InterestRate,
		ExpectedGrowthRate:  p.ExpectedGrowthRate,
		MonthlyContribution: p.MonthlyContribution,
		MonthlyPayment:      p.MonthlyPayment,
		RemainingTerm:       p.RemainingTerm,
	}
}

// AccountFields are the user-editable fields of an account.
// Category/type pairing and per-type parameters are checked by the
// struct-level rule registered in RegisterAccountRules.
type AccountFields struct {
	Name        string                 `json:"name" binding:"required,max=255"`
	Category    domain.AccountCategory `json:"category" binding:"required,oneof=asset debt"`
	AccountType domain.AccountType     `json:"type" binding:"required,oneof=investment property vehicle cash loan credit_card"`
	Balance     *decimal.Decimal       `json:"balance" binding:"required"`
	AccountParams
}

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	AccountFields
	OpenedAt *Date `json:"openedAt,omitempty"` // Optional: date of the account_opened event, defaults to now
}

// UpdateAccountRequest replaces an account's editable fields.
type UpdateAccountRequest struct {
	AccountFields
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string                 `json:"accountID"`
	Name        string                 `json:"name"`
	Category    domain.AccountCategory `json:"category"`
	AccountType domain.AccountType     `json:"type"`
	Balance     decimal.Decimal        `json:"balance"`
	AccountParams
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		Category:      acc.Category,
		AccountType:   acc.AccountType,
		Balance:       acc.Balance,
		AccountParams: ToAccountParams(acc.Terms),
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
