package statements

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/model"
)

// FixedAssetSchedule is the annexe table of gross fixed-asset movements
// over exercise N: opening gross value, additions (exercise debits on
// class-2 accounts), disposals (exercise credits), closing gross value.
type FixedAssetSchedule struct {
	OpeningGross decimal.Decimal
	Additions    decimal.Decimal
	Disposals    decimal.Decimal
	ClosingGross decimal.Decimal
}

// BuildFixedAssetSchedule aggregates class-2 movements for the exercise
// ending at the closing date. The opening balance covers every line dated
// before January 1 of the closing year.
func BuildFixedAssetSchedule(lines []model.LedgerLine, closing time.Time) FixedAssetSchedule {
	periods := ResolvePeriods(closing)
	jan1 := time.Date(closing.Year(), time.January, 1, 0, 0, 0, 0, closing.Location())

	prior := Filter(lines, func(l model.LedgerLine) bool {
		return dateOnly(l.Date).Before(jan1)
	})
	exercise := Filter(lines, periods.WindowN)

	priorDebits, priorCredits := classTwoMovements(prior)
	exerciseDebits, exerciseCredits := classTwoMovements(exercise)

	schedule := FixedAssetSchedule{
		OpeningGross: priorDebits.Sub(priorCredits),
		Additions:    exerciseDebits,
		Disposals:    exerciseCredits,
	}
	schedule.ClosingGross = schedule.OpeningGross.Add(schedule.Additions).Sub(schedule.Disposals)
	return schedule
}

// classTwoMovements sums gross fixed-asset movements. Amortissement and
// provision accounts (28x, 29x) are contra entries, not gross movements.
func classTwoMovements(lines []model.LedgerLine) (debits, credits decimal.Decimal) {
	for _, l := range lines {
		if model.ClassOf(l.AccountCode) != 2 {
			continue
		}
		if strings.HasPrefix(l.AccountCode, "28") || strings.HasPrefix(l.AccountCode, "29") {
			continue
		}
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}
