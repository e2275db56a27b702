package statements

import (
	"time"

	"github.com/liasse-dev/liasse/internal/model"
)

// LineFilter selects ledger lines belonging to a period.
type LineFilter func(model.LedgerLine) bool

// Periods carries the four line filters derived from one closing date:
// cumulative filters for stock-type statements (balance sheet, trial
// balance) and calendar-year windows for flow-type statements (income
// statement), for the current exercise N and the comparative exercise N-1.
type Periods struct {
	Closing   time.Time
	ClosingN1 time.Time

	CumulativeN  LineFilter
	CumulativeN1 LineFilter
	WindowN      LineFilter
	WindowN1     LineFilter
}

// ResolvePeriods derives the period filters for a closing date. N-1 closes
// exactly one year earlier; a Feb-29 closing shifted into a non-leap year
// clamps to Feb 28. All bounds are inclusive.
func ResolvePeriods(closing time.Time) Periods {
	closing = dateOnly(closing)
	closingN1 := yearEarlier(closing)

	jan1N := time.Date(closing.Year(), time.January, 1, 0, 0, 0, 0, closing.Location())
	jan1N1 := time.Date(closing.Year()-1, time.January, 1, 0, 0, 0, 0, closing.Location())

	return Periods{
		Closing:      closing,
		ClosingN1:    closingN1,
		CumulativeN:  onOrBefore(closing),
		CumulativeN1: onOrBefore(closingN1),
		WindowN:      between(jan1N, closing),
		WindowN1:     between(jan1N1, closingN1),
	}
}

// Filter returns the lines accepted by f, preserving order.
func Filter(lines []model.LedgerLine, f LineFilter) []model.LedgerLine {
	var out []model.LedgerLine
	for _, line := range lines {
		if f(line) {
			out = append(out, line)
		}
	}
	return out
}

func onOrBefore(end time.Time) LineFilter {
	return func(l model.LedgerLine) bool {
		return !dateOnly(l.Date).After(end)
	}
}

func between(start, end time.Time) LineFilter {
	return func(l model.LedgerLine) bool {
		d := dateOnly(l.Date)
		return !d.Before(start) && !d.After(end)
	}
}

// yearEarlier shifts a date one year back, clamping Feb 29 to Feb 28 when
// the target year is not a leap year.
func yearEarlier(d time.Time) time.Time {
	shifted := time.Date(d.Year()-1, d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	if shifted.Month() != d.Month() {
		// time.Date normalized Feb 29 into Mar 1; step back to Feb 28.
		shifted = shifted.AddDate(0, 0, -shifted.Day())
	}
	return shifted
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
