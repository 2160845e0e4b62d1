package projection

import (
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// stepPrecision is the number of decimal places kept after every monthly step.
const stepPrecision = 10

var (
	one          = decimal.NewFromInt(1)
	percentMonth = decimal.NewFromInt(1200)
)

// monthlyRate converts an annual percentage into a monthly fraction.
func monthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(percentMonth)
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Step advances balance by one month under terms. month is the zero-based
// index of the step since the projection start and only matters for loans:
// the balance produced by the step that completes the remaining term, and
// every step after it, is zero. This cuts a loan off one step earlier than a
// month >= term check would, so that the balance at month T itself is zero.
// Nil terms leave the balance unchanged.
func Step(terms domain.Terms, balance decimal.Decimal, month int) decimal.Decimal {
	var next decimal.Decimal

	switch t := terms.(type) {
	case domain.InvestmentTerms:
		next = balance.Mul(one.Add(monthlyRate(t.ExpectedGrowthRate))).Add(t.MonthlyContribution)
	case domain.CashTerms:
		next = balance.Mul(one.Add(monthlyRate(t.InterestRate))).Add(t.MonthlyContribution)
	case domain.AppreciationTerms:
		next = balance.Mul(one.Add(monthlyRate(t.ExpectedGrowthRate)))
	case domain.LoanTerms:
		if t.RemainingTerm != domain.OpenEndedTerm && month+1 >= t.RemainingTerm {
			return decimal.Zero
		}
		interest := balance.Mul(monthlyRate(t.InterestRate))
		principal := t.MonthlyPayment.Sub(interest)
		next = balance.Sub(principal)
	case domain.CreditCardTerms:
		interest := balance.Mul(monthlyRate(t.InterestRate))
		next = balance.Add(interest).Sub(t.MonthlyPayment)
	default:
		return balance
	}

	return floorZero(next).Round(stepPrecision)
}
