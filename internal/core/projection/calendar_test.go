package projection_test

import (
	"testing"
	"time"

	"github.com/SscSPs/networth_dashboard/internal/core/projection"
	"github.com/stretchr/testify/assert"
)

func TestOffsetMonth(t *testing.T) {
	assert.Equal(t, projection.YearMonth{Year: 2026, Month: time.October}, projection.OffsetMonth(now, 0))
	assert.Equal(t, projection.YearMonth{Year: 2025, Month: time.December}, projection.OffsetMonth(now, -10))
	assert.Equal(t, projection.YearMonth{Year: 2027, Month: time.January}, projection.OffsetMonth(now, 3))
	assert.Equal(t, projection.YearMonth{Year: 2022, Month: time.October}, projection.OffsetMonth(now, -48))
}

func TestOffsetMonth_EndOfMonthDoesNotOverflow(t *testing.T) {
	endOfMarch := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, projection.YearMonth{Year: 2026, Month: time.February}, projection.OffsetMonth(endOfMarch, -1))
}

func TestMonthsBetween(t *testing.T) {
	from := projection.MonthOf(time.Date(2024, time.November, 30, 23, 0, 0, 0, time.UTC), time.UTC)
	to := projection.OffsetMonth(now, 0)

	assert.Equal(t, 23, projection.MonthsBetween(from, to))
	assert.Equal(t, -23, projection.MonthsBetween(to, from))
	assert.True(t, from.Before(to))
	assert.True(t, to.AtOrBefore(to))
}

func TestMonthOf_UsesLocation(t *testing.T) {
	lateUTC := time.Date(2026, time.January, 31, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, projection.YearMonth{Year: 2026, Month: time.January}, projection.MonthOf(lateUTC, time.UTC))
	assert.Equal(t, projection.YearMonth{Year: 2026, Month: time.February}, projection.MonthOf(lateUTC, tokyo))
}

func TestAgeAtMonth(t *testing.T) {
	birthday := time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 36, projection.AgeAtMonth(birthday, 0, now))
	assert.Equal(t, 35, projection.AgeAtMonth(birthday, -6, now))
	assert.Equal(t, 37, projection.AgeAtMonth(birthday, 12, now))
}

func TestAgeAtMonth_ClampsDayToTargetMonth(t *testing.T) {
	monthEnd := time.Date(2025, time.October, 31, 12, 0, 0, 0, time.UTC)
	birthday := time.Date(1990, time.October, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 35, projection.AgeAtMonth(birthday, 0, monthEnd))
	// Sep 30 2025, the October birthday is still ahead.
	assert.Equal(t, 34, projection.AgeAtMonth(birthday, -1, monthEnd))

	leapDay := time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)
	march31 := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	// Feb 28 2025 falls before the Feb 29 birthday.
	assert.Equal(t, 24, projection.AgeAtMonth(leapDay, -1, march31))
}

func TestYearMonth_String(t *testing.T) {
	assert.Equal(t, "2026-03", projection.YearMonth{Year: 2026, Month: time.March}.String())
	assert.Equal(t, "0999-12", projection.YearMonth{Year: 999, Month: time.December}.String())
}
