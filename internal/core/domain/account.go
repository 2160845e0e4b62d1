package domain

import (
	"github.com/shopspring/decimal"
)

// AccountCategory splits accounts into the two sides of a net-worth statement.
type AccountCategory string

const (
	Asset AccountCategory = "asset"
	Debt  AccountCategory = "debt"
)

// AccountType selects the accrual rule applied to an account.
type AccountType string

const (
	Investment AccountType = "investment"
	Property   AccountType = "property"
	Vehicle    AccountType = "vehicle"
	Cash       AccountType = "cash"
	Loan       AccountType = "loan"
	CreditCard AccountType = "credit_card"
)

// CategoryOf returns the category an account type belongs to and whether the type is known.
func CategoryOf(t AccountType) (AccountCategory, bool) {
	switch t {
	case Investment, Property, Vehicle, Cash:
		return Asset, true
	case Loan, CreditCard:
		return Debt, true
	default:
		return "", false
	}
}

// DefaultVehicleGrowthRate is the depreciation applied to vehicles created without a growth rate.
var DefaultVehicleGrowthRate = decimal.NewFromInt(-15)

// OpenEndedTerm marks a loan without a fixed amortization horizon.
const OpenEndedTerm = -1

// Terms carries the accrual parameters of one account type. The set of
// implementations is closed: InvestmentTerms, CashTerms, AppreciationTerms,
// LoanTerms and CreditCardTerms.
type Terms interface {
	terms()
}

// InvestmentTerms compound at ExpectedGrowthRate (%/yr) and receive MonthlyContribution.
type InvestmentTerms struct {
	ExpectedGrowthRate  decimal.Decimal
	MonthlyContribution decimal.Decimal
}

// CashTerms compound at InterestRate (%/yr) and receive MonthlyContribution.
type CashTerms struct {
	InterestRate        decimal.Decimal
	MonthlyContribution decimal.Decimal
}

// AppreciationTerms apply to property and vehicles. A negative rate depreciates.
type AppreciationTerms struct {
	ExpectedGrowthRate decimal.Decimal
}

// LoanTerms amortize the balance with MonthlyPayment over RemainingTerm months.
// RemainingTerm is OpenEndedTerm when the loan has no fixed horizon.
type LoanTerms struct {
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
	RemainingTerm  int
}

// CreditCardTerms accrue InterestRate then subtract MonthlyPayment.
type CreditCardTerms struct {
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
}

func (InvestmentTerms) terms()   {}
func (CashTerms) terms()         {}
func (AppreciationTerms) terms() {}
func (LoanTerms) terms()         {}
func (CreditCardTerms) terms()   {}

// TermParams is the flat, nullable parameter set used by storage and the API.
type TermParams struct {
	InterestRate        *decimal.Decimal
	ExpectedGrowthRate  *decimal.Decimal
	MonthlyContribution *decimal.Decimal
	MonthlyPayment      *decimal.Decimal
	RemainingTerm       *int
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// NewTerms builds the variant for t from p. Missing numeric parameters become
// zero, a missing loan term becomes OpenEndedTerm. Unknown types yield nil.
func NewTerms(t AccountType, p TermParams) Terms {
	switch t {
	case Investment:
		return InvestmentTerms{
			ExpectedGrowthRate:  valueOrZero(p.ExpectedGrowthRate),
			MonthlyContribution: valueOrZero(p.MonthlyContribution),
		}
	case Cash:
		return CashTerms{
			InterestRate:        valueOrZero(p.InterestRate),
			MonthlyContribution: valueOrZero(p.MonthlyContribution),
		}
	case Property, Vehicle:
		return AppreciationTerms{ExpectedGrowthRate: valueOrZero(p.ExpectedGrowthRate)}
	case Loan:
		term := OpenEndedTerm
		if p.RemainingTerm != nil {
			term = *p.RemainingTerm
		}
		return LoanTerms{
			InterestRate:   valueOrZero(p.InterestRate),
			MonthlyPayment: valueOrZero(p.MonthlyPayment),
			RemainingTerm:  term,
		}
	case CreditCard:
		return CreditCardTerms{
			InterestRate:   valueOrZero(p.InterestRate),
			MonthlyPayment: valueOrZero(p.MonthlyPayment),
		}
	default:
		return nil
	}
}

// ParamsOf flattens terms back into nullable parameters. Only the fields
// relevant to the variant are set.
func ParamsOf(t Terms) TermParams {
	var p TermParams
	switch v := t.(type) {
	case InvestmentTerms:
		p.ExpectedGrowthRate = &v.ExpectedGrowthRate
		p.MonthlyContribution = &v.MonthlyContribution
	case CashTerms:
		p.InterestRate = &v.InterestRate
		p.MonthlyContribution = &v.MonthlyContribution
	case AppreciationTerms:
		p.ExpectedGrowthRate = &v.ExpectedGrowthRate
	case LoanTerms:
		p.InterestRate = &v.InterestRate
		p.MonthlyPayment = &v.MonthlyPayment
		if v.RemainingTerm != OpenEndedTerm {
			term := v.RemainingTerm
			p.RemainingTerm = &term
		}
	case CreditCardTerms:
		p.InterestRate = &v.InterestRate
		p.MonthlyPayment = &v.MonthlyPayment
	}
	return p
}

// Account is a financial position owned by a user.
type Account struct {
	AccountID   string          `json:"accountID"`
	UserID      string          `json:"userID"`
	Name        string          `json:"name"`
	Category    AccountCategory `json:"category"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"` // current balance, the month-0 anchor
	Terms       Terms           `json:"-"`
	AuditFields
}
