package projection

import (
	"slices"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// accountHistory answers balance queries for one account. Queries for
// increasing target months that share an anchor reuse the previous walk.
type accountHistory struct {
	account domain.Account
	events  []domain.AccountEvent // ascending by date
	loc     *time.Location

	opened *YearMonth
	closed *YearMonth

	anchor  int // index into events of the last anchor used, -1 when none
	steps   int
	balance decimal.Decimal
}

func newAccountHistory(account domain.Account, events []domain.AccountEvent, loc *time.Location) *accountHistory {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b domain.AccountEvent) int {
		return a.Date.Compare(b.Date)
	})

	h := &accountHistory{account: account, events: sorted, loc: loc, anchor: -1}
	for _, e := range sorted {
		ym := MonthOf(e.Date, loc)
		switch e.Type {
		case domain.AccountOpened:
			if h.opened == nil {
				h.opened = &ym
			}
		case domain.AccountClosed:
			if h.closed == nil {
				h.closed = &ym
			}
		}
	}
	return h
}

// latestAnchor returns the index of the most recent balance-carrying event in
// or before target, or -1. Among identical timestamps the first recorded wins.
func (h *accountHistory) latestAnchor(target YearMonth) int {
	idx := -1
	for i, e := range h.events {
		if !e.Type.CarriesBalance() || !MonthOf(e.Date, h.loc).AtOrBefore(target) {
			continue
		}
		if idx == -1 || e.Date.After(h.events[idx].Date) {
			idx = i
		}
	}
	return idx
}

func (h *accountHistory) at(target YearMonth) decimal.Decimal {
	if h.opened != nil && target.Before(*h.opened) {
		return decimal.Zero
	}
	if h.closed != nil && h.closed.AtOrBefore(target) {
		return decimal.Zero
	}

	idx := h.latestAnchor(target)
	if idx == -1 {
		// No known balance this early: flat-line the current balance.
		return h.account.Balance
	}

	anchor := h.events[idx]
	start := anchor.Balance.Decimal // zero when unset
	diff := MonthsBetween(MonthOf(anchor.Date, h.loc), target)
	if diff <= 0 {
		return start
	}

	if idx != h.anchor || h.steps > diff {
		h.anchor, h.steps, h.balance = idx, 0, start
	}
	for ; h.steps < diff; h.steps++ {
		h.balance = floorZero(Step(h.account.Terms, h.balance, h.steps))
	}
	return h.balance
}

// ReconstructBalance returns the balance account held monthOffset months
// from now (0 is the current month, negative is the past), derived from the
// account's events. Before the opening month and from the closing month on
// the balance is zero. Otherwise the latest balance-carrying event at or
// before the target month is projected forward to it; when there is no such
// event the account's current balance is returned unchanged.
func ReconstructBalance(account domain.Account, events []domain.AccountEvent, monthOffset int, now time.Time) decimal.Decimal {
	return newAccountHistory(account, events, now.Location()).at(OffsetMonth(now, monthOffset))
}

func groupEvents(events []domain.AccountEvent) map[string][]domain.AccountEvent {
	byAccount := make(map[string][]domain.AccountEvent)
	for _, e := range events {
		byAccount[e.AccountID] = append(byAccount[e.AccountID], e)
	}
	return byAccount
}

func histories(accounts []domain.Account, events []domain.AccountEvent, loc *time.Location) []*accountHistory {
	byAccount := groupEvents(events)
	hs := make([]*accountHistory, len(accounts))
	for i, a := range accounts {
		hs[i] = newAccountHistory(a, byAccount[a.AccountID], loc)
	}
	return hs
}

// BuildHistory returns aggregate points for months -historyMonths..0. The
// shape matches Project so the two series join at month 0. A non-positive
// historyMonths yields an empty series.
func BuildHistory(accounts []domain.Account, events []domain.AccountEvent, historyMonths int, now time.Time) []domain.ProjectionPoint {
	if historyMonths <= 0 {
		return []domain.ProjectionPoint{}
	}

	hs := histories(accounts, events, now.Location())
	balances := make([]decimal.Decimal, len(accounts))
	points := make([]domain.ProjectionPoint, 0, historyMonths+1)
	for m := -historyMonths; m <= 0; m++ {
		target := OffsetMonth(now, m)
		for i, h := range hs {
			balances[i] = h.at(target)
		}
		points = append(points, totals(m, accounts, balances))
	}
	return points
}

// BuildHistoryByAccount is the per-account counterpart of BuildHistory.
func BuildHistoryByAccount(accounts []domain.Account, events []domain.AccountEvent, historyMonths int, sign SignConvention, now time.Time) []domain.AccountPoint {
	if historyMonths <= 0 {
		return []domain.AccountPoint{}
	}

	hs := histories(accounts, events, now.Location())
	points := make([]domain.AccountPoint, 0, historyMonths+1)
	for m := -historyMonths; m <= 0; m++ {
		target := OffsetMonth(now, m)
		p := domain.AccountPoint{Month: m, Balances: make(map[string]decimal.Decimal, len(accounts))}
		for i, h := range hs {
			p.Balances[accounts[i].AccountID] = sign.apply(accounts[i].Category, h.at(target))
		}
		points = append(points, p)
	}
	return points
}

// ComputeHistoryMonths returns how many whole calendar months separate the
// earliest account_opened event from the current month, or 0 when there is
// none. Day-of-month is ignored, so an event dated "12 months ago" may count
// as 11, 12 or 13 months depending on where in the month the dates fall.
func ComputeHistoryMonths(events []domain.AccountEvent, now time.Time) int {
	var earliest *time.Time
	for i := range events {
		if events[i].Type != domain.AccountOpened {
			continue
		}
		if earliest == nil || events[i].Date.Before(*earliest) {
			earliest = &events[i].Date
		}
	}
	if earliest == nil {
		return 0
	}
	return max(0, MonthsBetween(MonthOf(*earliest, now.Location()), OffsetMonth(now, 0)))
}

// LatestAnchor returns the most recent balance-carrying event in events,
// which must be in recording order among equal dates. Ties on the timestamp
// go to the event that appears last, so the newest record of a day wins.
func LatestAnchor(events []domain.AccountEvent) (domain.AccountEvent, bool) {
	idx := -1
	for i, e := range events {
		if !e.Type.CarriesBalance() {
			continue
		}
		if idx == -1 || !e.Date.Before(events[idx].Date) {
			idx = i
		}
	}
	if idx == -1 {
		return domain.AccountEvent{}, false
	}
	return events[idx], true
}
