package dto

import (
	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/SscSPs/networth_dashboard/internal/core/projection"
	"github.com/shopspring/decimal"
)

// ProjectionQuery defines the query parameters of the aggregate projection.
type ProjectionQuery struct {
	Months        int      `form:"months,default=120" binding:"min=0"`
	Real          bool     `form:"real"`
	InflationRate *float64 `form:"inflationRate" binding:"omitempty,min=0,max=100"`
	History       bool     `form:"history,default=true"`
	Thin          bool     `form:"thin"`
}

// AccountProjectionQuery defines the query parameters of the per-account projection.
type AccountProjectionQuery struct {
	Category      domain.AccountCategory `form:"category" binding:"omitempty,oneof=asset debt"`
	Months        int                    `form:"months,default=120" binding:"min=0"`
	Real          bool                   `form:"real"`
	InflationRate *float64               `form:"inflationRate" binding:"omitempty,min=0,max=100"`
	Sign          string                 `form:"sign,default=magnitude" binding:"oneof=magnitude signed"`
	History       bool                   `form:"history,default=true"`
	Thin          bool                   `form:"thin"`
}

// InflationOverride converts an optional query rate to a decimal.
func InflationOverride(rate *float64) *decimal.Decimal {
	if rate == nil {
		return nil
	}
	d := decimal.NewFromFloat(*rate)
	return &d
}

// TimelinePoint is one month of the aggregate chart.
type TimelinePoint struct {
	Month    int             `json:"month"`
	Date     string          `json:"date"` // YYYY-MM
	Assets   decimal.Decimal `json:"assets"`
	Debts    decimal.Decimal `json:"debts"`
	NetWorth decimal.Decimal `json:"netWorth"`
	Age      *int            `json:"age,omitempty"`
}

// TimelineResponse is the aggregate net-worth chart.
type TimelineResponse struct {
	HistoryMonths  int             `json:"historyMonths"`
	ForecastMonths int             `json:"forecastMonths"`
	InflationRate  decimal.Decimal `json:"inflationRate"`
	Real           bool            `json:"real"`
	Points         []TimelinePoint `json:"points"`
}

// ToTimelineResponse converts a domain.Timeline to TimelineResponse DTO
func ToTimelineResponse(t *domain.Timeline) TimelineResponse {
	points := make([]TimelinePoint, len(t.Points))
	for i, p := range t.Points {
		points[i] = TimelinePoint{
			Month:    p.Month,
			Date:     projection.OffsetMonth(t.Origin, p.Month).String(),
			Assets:   p.Assets,
			Debts:    p.Debts,
			NetWorth: p.NetWorth,
		}
		if age, ok := t.Ages[p.Month]; ok {
			points[i].Age = &age
		}
	}
	return TimelineResponse{
		HistoryMonths:  t.HistoryMonths,
		ForecastMonths: t.ForecastMonths,
		InflationRate:  t.InflationRate,
		Real:           t.Real,
		Points:         points,
	}
}

// AccountSummary identifies a series in the per-account chart.
type AccountSummary struct {
	AccountID   string                 `json:"accountID"`
	Name        string                 `json:"name"`
	Category    domain.AccountCategory `json:"category"`
	AccountType domain.AccountType     `json:"type"`
}

// AccountTimelineResponse is the per-account chart. Each point is a flat
// object with "month", "date" and one key per account ID.
type AccountTimelineResponse struct {
	HistoryMonths  int              `json:"historyMonths"`
	ForecastMonths int              `json:"forecastMonths"`
	InflationRate  decimal.Decimal  `json:"inflationRate"`
	Real           bool             `json:"real"`
	Signed         bool             `json:"signed"`
	Accounts       []AccountSummary `json:"accounts"`
	Points         []map[string]any `json:"points"`
}

// ToAccountTimelineResponse converts a domain.AccountTimeline to AccountTimelineResponse DTO
func ToAccountTimelineResponse(t *domain.AccountTimeline) AccountTimelineResponse {
	accounts := make([]AccountSummary, len(t.Accounts))
	for i, a := range t.Accounts {
		accounts[i] = AccountSummary{AccountID: a.AccountID, Name: a.Name, Category: a.Category, AccountType: a.AccountType}
	}

	points := make([]map[string]any, len(t.Points))
	for i, p := range t.Points {
		row := make(map[string]any, len(p.Balances)+2)
		row["month"] = p.Month
		row["date"] = projection.OffsetMonth(t.Origin, p.Month).String()
		for id, v := range p.Balances {
			row[id] = v
		}
		points[i] = row
	}

	return AccountTimelineResponse{
		HistoryMonths:  t.HistoryMonths,
		ForecastMonths: t.ForecastMonths,
		InflationRate:  t.InflationRate,
		Real:           t.Real,
		Signed:         t.Signed,
		Accounts:       accounts,
		Points:         points,
	}
}
