package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionPoint is one month of an aggregate series. Month is an offset in
// calendar months from the current month: negative is history, positive is
// forecast. Debts is a positive magnitude and NetWorth = Assets - Debts.
type ProjectionPoint struct {
	Month    int             `json:"month"`
	Assets   decimal.Decimal `json:"assets"`
	Debts    decimal.Decimal `json:"debts"`
	NetWorth decimal.Decimal `json:"netWorth"`
}

// MonthIndex returns the point's month offset.
func (p ProjectionPoint) MonthIndex() int { return p.Month }

// AccountPoint is one month of a per-account series, keyed by account ID.
type AccountPoint struct {
	Month    int                        `json:"month"`
	Balances map[string]decimal.Decimal `json:"balances"`
}

// MonthIndex returns the point's month offset.
func (p AccountPoint) MonthIndex() int { return p.Month }

// Timeline is an aggregate net-worth series prepared for display.
type Timeline struct {
	Origin         time.Time // the instant month 0 was computed for
	Points         []ProjectionPoint
	Ages           map[int]int // month offset -> age, only when the user has a birthday
	HistoryMonths  int
	ForecastMonths int
	InflationRate  decimal.Decimal
	Real           bool
}

// AccountTimeline is a per-account series prepared for display.
type AccountTimeline struct {
	Origin         time.Time
	Accounts       []Account
	Points         []AccountPoint
	HistoryMonths  int
	ForecastMonths int
	InflationRate  decimal.Decimal
	Real           bool
	Signed         bool
}
