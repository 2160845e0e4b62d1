// Package projection simulates account balances month by month. It projects
// current balances forward under each account's accrual rule, reconstructs
// past balances from a sparse event log, and post-processes the resulting
// series (inflation deflation, stitching, thinning).
//
// Every function is pure: inputs are never mutated and "now" is always an
// explicit argument, so results depend only on the arguments.
package projection

import (
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignConvention controls how debt accounts appear in per-account series.
type SignConvention int

const (
	// SignMagnitude reports every balance as a positive magnitude.
	SignMagnitude SignConvention = iota
	// SignSigned negates debt balances so they chart below zero.
	SignSigned
)

func (s SignConvention) apply(category domain.AccountCategory, v decimal.Decimal) decimal.Decimal {
	if s == SignSigned && category == domain.Debt {
		return v.Neg()
	}
	return v
}

// totals sums balances by category. Accounts with any other category are ignored.
func totals(month int, accounts []domain.Account, balances []decimal.Decimal) domain.ProjectionPoint {
	assets, debts := decimal.Zero, decimal.Zero
	for i, a := range accounts {
		switch a.Category {
		case domain.Asset:
			assets = assets.Add(balances[i])
		case domain.Debt:
			debts = debts.Add(balances[i])
		}
	}
	return domain.ProjectionPoint{
		Month:    month,
		Assets:   assets,
		Debts:    debts,
		NetWorth: assets.Sub(debts),
	}
}

// walk calls emit for months 0..months with the running balances, stepping
// every account once between consecutive calls.
func walk(accounts []domain.Account, months int, emit func(month int, balances []decimal.Decimal)) {
	if months < 0 {
		months = 0
	}
	balances := make([]decimal.Decimal, len(accounts))
	for i, a := range accounts {
		balances[i] = a.Balance
	}

	for m := 0; m <= months; m++ {
		emit(m, balances)
		if m == months {
			break
		}
		for i, a := range accounts {
			balances[i] = Step(a.Terms, balances[i], m)
		}
	}
}

// Project returns months+1 aggregate points. Point 0 holds the current
// balances; point k holds the balances after k monthly steps.
func Project(accounts []domain.Account, months int) []domain.ProjectionPoint {
	points := make([]domain.ProjectionPoint, 0, max(months, 0)+1)
	walk(accounts, months, func(m int, balances []decimal.Decimal) {
		points = append(points, totals(m, accounts, balances))
	})
	return points
}

// ProjectByAccount returns months+1 points holding each account's own
// trajectory, keyed by account ID.
func ProjectByAccount(accounts []domain.Account, months int, sign SignConvention) []domain.AccountPoint {
	points := make([]domain.AccountPoint, 0, max(months, 0)+1)
	walk(accounts, months, func(m int, balances []decimal.Decimal) {
		p := domain.AccountPoint{Month: m, Balances: make(map[string]decimal.Decimal, len(accounts))}
		for i, a := range accounts {
			p.Balances[a.AccountID] = sign.apply(a.Category, balances[i])
		}
		points = append(points, p)
	})
	return points
}
