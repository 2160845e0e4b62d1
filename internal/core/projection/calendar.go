package projection

import (
	"fmt"
	"time"
)

// YearMonth is a calendar month. The engine never reasons below month granularity.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

func fromIndex(i int) YearMonth {
	return YearMonth{Year: i / 12, Month: time.Month(i%12 + 1)}
}

// String formats ym as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.index() < other.index()
}

// AtOrBefore reports whether ym is the same month as other or earlier.
func (ym YearMonth) AtOrBefore(other YearMonth) bool {
	return ym.index() <= other.index()
}

// MonthOf returns the calendar month of t as observed in loc.
func MonthOf(t time.Time, loc *time.Location) YearMonth {
	t = t.In(loc)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// OffsetMonth returns the calendar month that lies offset months from now.
func OffsetMonth(now time.Time, offset int) YearMonth {
	return fromIndex(MonthOf(now, now.Location()).index() + offset)
}

// MonthsBetween returns to - from in whole calendar months.
func MonthsBetween(from, to YearMonth) int {
	return to.index() - from.index()
}

// daysIn returns the number of days in ym.
func daysIn(ym YearMonth) int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AgeAtMonth returns the age in whole years of someone born on birthday,
// evaluated offset months from now. The day of now is clamped to the length
// of the target month, so Oct 31 minus one month is Sep 30.
func AgeAtMonth(birthday time.Time, offset int, now time.Time) int {
	at := OffsetMonth(now, offset)
	day := min(now.Day(), daysIn(at))
	bd := birthday.In(now.Location())
	age := at.Year - bd.Year()
	if at.Month < bd.Month() || (at.Month == bd.Month() && day < bd.Day()) {
		age--
	}
	return age
}
