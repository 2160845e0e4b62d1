package models

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table. The term parameters are nullable
// columns; only the ones relevant to the account type are set.
type Account struct {
	AccountID           string              `db:"account_id"`
	UserID              string              `db:"user_id"`
	Name                string              `db:"name"`
	Category            string              `db:"category"`
	AccountType         string              `db:"account_type"`
	Balance             decimal.Decimal     `db:"balance"`
	InterestRate        decimal.NullDecimal `db:"interest_rate"`
	ExpectedGrowthRate  decimal.NullDecimal `db:"expected_growth_rate"`
	MonthlyContribution decimal.NullDecimal `db:"monthly_contribution"`
	MonthlyPayment      decimal.NullDecimal `db:"monthly_payment"`
	RemainingTerm       pgtype.Int4         `db:"remaining_term"`
	AuditFields
}
