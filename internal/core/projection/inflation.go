package projection

import (
	"maps"
	"slices"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// powPrecision bounds the digits kept while compounding the deflator.
const powPrecision = 16

// HistoryPolicy decides whether points before month 0 are deflated.
type HistoryPolicy int

const (
	// DeflateHistory deflates every point, past ones included.
	DeflateHistory HistoryPolicy = iota
	// NominalHistory leaves points with a negative month untouched.
	NominalHistory
)

// pow raises base to a non-negative integer power by repeated squaring.
func pow(base decimal.Decimal, n int) decimal.Decimal {
	result := one
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(powPrecision)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base).Round(powPrecision)
		}
	}
	return result
}

type deflator struct {
	base   decimal.Decimal
	policy HistoryPolicy
	noop   bool
}

func newDeflator(annualPercent decimal.Decimal, policy HistoryPolicy) deflator {
	return deflator{
		base:   one.Add(monthlyRate(annualPercent)),
		policy: policy,
		noop:   annualPercent.IsZero(),
	}
}

func (d deflator) skips(month int) bool {
	return d.noop || month == 0 || (month < 0 && d.policy == NominalHistory)
}

// adjust divides v by (1+r)^month.
func (d deflator) adjust(v decimal.Decimal, month int) decimal.Decimal {
	if month > 0 {
		return v.Div(pow(d.base, month)).Round(stepPrecision)
	}
	return v.Mul(pow(d.base, -month)).Round(stepPrecision)
}

// Deflate expresses every currency field of points in today's money using an
// annual inflation rate in percent. A zero rate returns an identical copy.
func Deflate(points []domain.ProjectionPoint, annualPercent decimal.Decimal, policy HistoryPolicy) []domain.ProjectionPoint {
	d := newDeflator(annualPercent, policy)
	out := slices.Clone(points)
	for i, p := range out {
		if d.skips(p.Month) {
			continue
		}
		out[i].Assets = d.adjust(p.Assets, p.Month)
		out[i].Debts = d.adjust(p.Debts, p.Month)
		out[i].NetWorth = d.adjust(p.NetWorth, p.Month)
	}
	return out
}

// DeflateByAccount is Deflate for per-account series.
func DeflateByAccount(points []domain.AccountPoint, annualPercent decimal.Decimal, policy HistoryPolicy) []domain.AccountPoint {
	d := newDeflator(annualPercent, policy)
	out := make([]domain.AccountPoint, len(points))
	for i, p := range points {
		balances := maps.Clone(p.Balances)
		if !d.skips(p.Month) {
			for id, v := range balances {
				balances[id] = d.adjust(v, p.Month)
			}
		}
		out[i] = domain.AccountPoint{Month: p.Month, Balances: balances}
	}
	return out
}
