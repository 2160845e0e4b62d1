package projection_test

import (
	"testing"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/core/domain"
	"github.com/SscSPs/networth_dashboard/internal/core/projection"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func monthsAgo(n int) time.Time {
	return now.AddDate(0, -n, 0)
}

func event(accountID string, t domain.EventType, date time.Time, balance string) domain.AccountEvent {
	e := domain.AccountEvent{AccountID: accountID, Type: t, Date: date}
	if balance != "" {
		e.Balance = decimal.NewNullDecimal(dec(balance))
	}
	return e
}

func plainCash() domain.Account {
	return newAccount("acc1", domain.Cash, "10000", domain.TermParams{})
}

func TestReconstructBalance_OpeningScenario(t *testing.T) {
	acc := plainCash()
	events := []domain.AccountEvent{event("acc1", domain.AccountOpened, monthsAgo(6), "8000")}

	assertDecimal(t, "8000", projection.ReconstructBalance(acc, events, -6, now))
	assertDecimal(t, "8000", projection.ReconstructBalance(acc, events, 0, now))

	points := projection.BuildHistory([]domain.Account{acc}, events, 6, now)
	require.Len(t, points, 7)
	for i, p := range points {
		assert.Equal(t, i-6, p.Month)
		assertDecimal(t, "8000", p.Assets, "month", p.Month)
	}
}

func TestReconstructBalance_BeforeOpeningIsZero(t *testing.T) {
	acc := plainCash()
	events := []domain.AccountEvent{event("acc1", domain.AccountOpened, monthsAgo(6), "5000")}

	for _, m := range []int{-7, -8, -20} {
		assertDecimal(t, "0", projection.ReconstructBalance(acc, events, m, now), "month", m)
	}
	assertDecimal(t, "5000", projection.ReconstructBalance(acc, events, -6, now))
}

func TestReconstructBalance_AfterClosingIsZero(t *testing.T) {
	acc := plainCash()
	events := []domain.AccountEvent{
		event("acc1", domain.AccountClosed, monthsAgo(3), ""),
		event("acc1", domain.AccountOpened, monthsAgo(6), "5000"),
	}

	assertDecimal(t, "5000", projection.ReconstructBalance(acc, events, -4, now))
	for _, m := range []int{-3, -2, -1, 0} {
		assertDecimal(t, "0", projection.ReconstructBalance(acc, events, m, now), "month", m)
	}
}

func TestReconstructBalance_BalanceUpdateIsExactAnchor(t *testing.T) {
	acc := newAccount("acc1", domain.Investment, "20000", domain.TermParams{
		ExpectedGrowthRate:  decPtr("7"),
		MonthlyContribution: decPtr("300"),
	})
	events := []domain.AccountEvent{
		event("acc1", domain.AccountOpened, monthsAgo(10), "5000"),
		event("acc1", domain.BalanceUpdate, monthsAgo(4), "9876.54"),
	}

	assertDecimal(t, "9876.54", projection.ReconstructBalance(acc, events, -4, now))
	assertDecimal(t, "5000", projection.ReconstructBalance(acc, events, -10, now))
}

func TestReconstructBalance_ProjectsFromAnchor(t *testing.T) {
	acc := newAccount("acc1", domain.Investment, "0", domain.TermParams{MonthlyContribution: decPtr("100")})
	events := []domain.AccountEvent{event("acc1", domain.AccountOpened, monthsAgo(4), "1000")}

	assertDecimal(t, "1100", projection.ReconstructBalance(acc, events, -3, now))
	assertDecimal(t, "1400", projection.ReconstructBalance(acc, events, 0, now))
}

func TestReconstructBalance_FlatFallbackWithoutAnchor(t *testing.T) {
	acc := plainCash()
	events := []domain.AccountEvent{event("acc1", domain.BalanceUpdate, monthsAgo(2), "7000")}

	assertDecimal(t, "10000", projection.ReconstructBalance(acc, events, -5, now))
	assertDecimal(t, "7000", projection.ReconstructBalance(acc, events, -2, now))
	assertDecimal(t, "10000", projection.ReconstructBalance(acc, nil, -12, now))
}

func TestReconstructBalance_SameMonthLaterEventWins(t *testing.T) {
	acc := plainCash()
	opened := event("acc1", domain.AccountOpened, time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC), "5000")
	updated := event("acc1", domain.BalanceUpdate, time.Date(2026, time.July, 20, 9, 0, 0, 0, time.UTC), "6000")

	assertDecimal(t, "6000", projection.ReconstructBalance(acc, []domain.AccountEvent{opened, updated}, -3, now))
	assertDecimal(t, "6000", projection.ReconstructBalance(acc, []domain.AccountEvent{updated, opened}, -3, now))
}

func TestBuildHistory_EmptyForZeroMonths(t *testing.T) {
	points := projection.BuildHistory([]domain.Account{plainCash()}, nil, 0, now)

	assert.NotNil(t, points)
	assert.Empty(t, points)
	assert.Empty(t, projection.BuildHistoryByAccount([]domain.Account{plainCash()}, nil, 0, projection.SignMagnitude, now))
}

func TestBuildHistory_MatchesPointwiseReconstruction(t *testing.T) {
	inv := newAccount("inv", domain.Investment, "30000", domain.TermParams{
		ExpectedGrowthRate:  decPtr("7"),
		MonthlyContribution: decPtr("50"),
	})
	loan := newAccount("loan", domain.Loan, "8000", domain.TermParams{
		InterestRate:   decPtr("5"),
		MonthlyPayment: decPtr("200"),
		RemainingTerm:  intPtr(60),
	})
	events := []domain.AccountEvent{
		event("inv", domain.BalanceUpdate, monthsAgo(10), "5000"),
		event("inv", domain.AccountOpened, monthsAgo(24), "1000"),
		event("loan", domain.AccountOpened, monthsAgo(12), "10000"),
	}

	points := projection.BuildHistory([]domain.Account{inv, loan}, events, 24, now)

	require.Len(t, points, 25)
	for _, p := range points {
		wantAssets := projection.ReconstructBalance(inv, events[:2], p.Month, now)
		wantDebts := projection.ReconstructBalance(loan, events[2:], p.Month, now)
		assert.Truef(t, wantAssets.Equal(p.Assets), "assets at %d: want %s got %s", p.Month, wantAssets, p.Assets)
		assert.Truef(t, wantDebts.Equal(p.Debts), "debts at %d: want %s got %s", p.Month, wantDebts, p.Debts)
		assert.True(t, p.Assets.Sub(p.Debts).Equal(p.NetWorth))
	}
	assert.True(t, points[len(points)-1].Debts.IsPositive())
}

func TestBuildHistoryByAccount(t *testing.T) {
	acc1 := plainCash()
	card := newAccount("card", domain.CreditCard, "900", domain.TermParams{})
	events := []domain.AccountEvent{
		event("acc1", domain.AccountOpened, monthsAgo(3), "10000"),
		event("card", domain.AccountOpened, monthsAgo(1), "900"),
	}

	points := projection.BuildHistoryByAccount([]domain.Account{acc1, card}, events, 2, projection.SignSigned, now)

	require.Len(t, points, 3)
	assert.Equal(t, -2, points[0].Month)
	assert.Contains(t, points[0].Balances, "acc1")
	assert.Contains(t, points[0].Balances, "card")
	assertDecimal(t, "0", points[0].Balances["card"])
	assertDecimal(t, "-900", points[2].Balances["card"])
	assertDecimal(t, "10000", points[2].Balances["acc1"])
}

func TestComputeHistoryMonths(t *testing.T) {
	t.Run("no events", func(t *testing.T) {
		assert.Equal(t, 0, projection.ComputeHistoryMonths(nil, now))
	})

	t.Run("no account_opened events", func(t *testing.T) {
		events := []domain.AccountEvent{event("acc1", domain.BalanceUpdate, monthsAgo(6), "5000")}
		assert.Equal(t, 0, projection.ComputeHistoryMonths(events, now))
	})

	t.Run("earliest opening wins", func(t *testing.T) {
		events := []domain.AccountEvent{
			event("acc2", domain.AccountOpened, monthsAgo(6), "3000"),
			event("acc1", domain.AccountOpened, monthsAgo(12), "5000"),
		}
		// Day-of-month is discarded, so a one month tolerance is accepted.
		assert.InDelta(t, 12, projection.ComputeHistoryMonths(events, now), 1)
	})

	t.Run("future opening clamps to zero", func(t *testing.T) {
		events := []domain.AccountEvent{event("acc1", domain.AccountOpened, now.AddDate(0, 2, 0), "1")}
		assert.Equal(t, 0, projection.ComputeHistoryMonths(events, now))
	})
}

func TestLatestAnchor(t *testing.T) {
	opened := event("acc1", domain.AccountOpened, monthsAgo(6), "100")
	update := event("acc1", domain.BalanceUpdate, monthsAgo(2), "300")
	sameTime := event("acc1", domain.BalanceUpdate, monthsAgo(2), "999")
	closed := event("acc1", domain.AccountClosed, monthsAgo(1), "")

	got, ok := projection.LatestAnchor([]domain.AccountEvent{opened, update, sameTime, closed})
	require.True(t, ok)
	assertDecimal(t, "999", got.Balance.Decimal, "later record of the same timestamp wins")

	got, ok = projection.LatestAnchor([]domain.AccountEvent{update, opened})
	require.True(t, ok)
	assertDecimal(t, "300", got.Balance.Decimal, "date decides before position")

	_, ok = projection.LatestAnchor([]domain.AccountEvent{closed})
	assert.False(t, ok)
}
