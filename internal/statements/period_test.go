package statements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/liasse-dev/liasse/internal/model"
)

func lineOn(date time.Time) model.LedgerLine {
	return model.LedgerLine{Date: date}
}

func TestResolvePeriodsBoundaries(t *testing.T) {
	closing := day(2025, time.June, 30)
	periods := ResolvePeriods(closing)

	onClosing := lineOn(closing)
	dayAfter := lineOn(closing.AddDate(0, 0, 1))

	// A line dated exactly on the closing date belongs to both N filters.
	assert.True(t, periods.CumulativeN(onClosing))
	assert.True(t, periods.WindowN(onClosing))
	// One day later it belongs to neither.
	assert.False(t, periods.CumulativeN(dayAfter))
	assert.False(t, periods.WindowN(dayAfter))

	// The window opens on January 1 of the closing year.
	jan1 := lineOn(day(2025, time.January, 1))
	dec31Prior := lineOn(day(2024, time.December, 31))
	assert.True(t, periods.WindowN(jan1))
	assert.False(t, periods.WindowN(dec31Prior))
	// Cumulative has no lower bound.
	assert.True(t, periods.CumulativeN(dec31Prior))
}

func TestResolvePeriodsN1(t *testing.T) {
	periods := ResolvePeriods(day(2025, time.June, 30))

	assert.Equal(t, day(2024, time.June, 30), periods.ClosingN1)

	assert.True(t, periods.CumulativeN1(lineOn(day(2024, time.June, 30))))
	assert.False(t, periods.CumulativeN1(lineOn(day(2024, time.July, 1))))

	// Window N-1 runs Jan 1 of the prior year to the shifted closing.
	assert.True(t, periods.WindowN1(lineOn(day(2024, time.January, 1))))
	assert.True(t, periods.WindowN1(lineOn(day(2024, time.June, 30))))
	assert.False(t, periods.WindowN1(lineOn(day(2023, time.December, 31))))
	assert.False(t, periods.WindowN1(lineOn(day(2024, time.July, 1))))
}

func TestResolvePeriodsLeapDayClamp(t *testing.T) {
	// 2024-02-29 shifted into non-leap 2023 clamps to Feb 28.
	periods := ResolvePeriods(day(2024, time.February, 29))
	assert.Equal(t, day(2023, time.February, 28), periods.ClosingN1)

	assert.True(t, periods.CumulativeN1(lineOn(day(2023, time.February, 28))))
	assert.False(t, periods.CumulativeN1(lineOn(day(2023, time.March, 1))))
}

func TestResolvePeriodsIgnoresTimeOfDay(t *testing.T) {
	periods := ResolvePeriods(day(2025, time.December, 31))

	noon := lineOn(time.Date(2025, time.December, 31, 12, 30, 0, 0, time.UTC))
	assert.True(t, periods.CumulativeN(noon))
	assert.True(t, periods.WindowN(noon))
}

func TestFilter(t *testing.T) {
	lines := []model.LedgerLine{
		{ID: "a", Date: day(2025, time.January, 1)},
		{ID: "b", Date: day(2025, time.June, 1)},
		{ID: "c", Date: day(2026, time.January, 1)},
	}
	periods := ResolvePeriods(day(2025, time.December, 31))

	kept := Filter(lines, periods.CumulativeN)
	assert.Len(t, kept, 2)
	assert.Equal(t, "a", kept[0].ID)
	assert.Equal(t, "b", kept[1].ID)
}
