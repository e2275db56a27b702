package statements

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/model"
)

// EquitySnapshot is the capitaux propres position at one closing date,
// split the way the variation table presents it: share capital, everything
// else in "Capital et réserves" (primes, réserves, report à nouveau), and
// the exercise result.
type EquitySnapshot struct {
	Capital  decimal.Decimal
	Reserves decimal.Decimal
	Result   decimal.Decimal
}

// EquityRow is one row of the tableau de variation des capitaux propres.
type EquityRow struct {
	Label    string
	Capital  decimal.Decimal
	Reserves decimal.Decimal
	Result   decimal.Decimal
	Total    decimal.Decimal
}

// EquityVariationTable is the statement of changes in equity over two
// exercises.
type EquityVariationTable struct {
	Rows     []EquityRow
	Warnings []Warning
}

// RollForward builds the variation table from three consecutive closing
// snapshots and the two exercise results: opening balance at N-2,
// appropriation of the N-2 result into reserves, net income of N-1,
// closing balance at N-1, and the same pattern rolled to N.
func RollForward(snapN2, snapN1, snapN EquitySnapshot, netIncomeN1, netIncomeN decimal.Decimal, yearN int) EquityVariationTable {
	row := func(label string, capital, reserves, result decimal.Decimal) EquityRow {
		return EquityRow{
			Label:    label,
			Capital:  capital,
			Reserves: reserves,
			Result:   result,
			Total:    capital.Add(reserves).Add(result),
		}
	}

	return EquityVariationTable{Rows: []EquityRow{
		row(fmt.Sprintf("Solde au 31 décembre %d", yearN-2), snapN2.Capital, snapN2.Reserves, snapN2.Result),
		row(fmt.Sprintf("Affectation du résultat %d", yearN-2), decimal.Zero, snapN2.Result, snapN2.Result.Neg()),
		row(fmt.Sprintf("Résultat net exercice %d", yearN-1), decimal.Zero, decimal.Zero, netIncomeN1),
		row(fmt.Sprintf("Solde au 31 décembre %d", yearN-1), snapN1.Capital, snapN1.Reserves, snapN1.Result),
		row(fmt.Sprintf("Affectation du résultat %d", yearN-1), decimal.Zero, snapN1.Result, snapN1.Result.Neg()),
		row(fmt.Sprintf("Résultat net exercice %d", yearN), decimal.Zero, decimal.Zero, netIncomeN),
		row(fmt.Sprintf("Solde au 31 décembre %d", yearN), snapN.Capital, snapN.Reserves, snapN.Result),
	}}
}

// BuildEquityVariation computes the three closing snapshots from the
// ledger, reads the two exercise results off the comparative income
// statement, and rolls the table forward.
func BuildEquityVariation(accounts []model.Account, lines []model.LedgerLine, closing time.Time) EquityVariationTable {
	periods := ResolvePeriods(closing)
	closingN2 := yearEarlier(periods.ClosingN1)

	snapN, warnings := equitySnapshotAt(accounts, lines, periods.Closing)
	snapN1, _ := equitySnapshotAt(accounts, lines, periods.ClosingN1)
	snapN2, _ := equitySnapshotAt(accounts, lines, closingN2)

	income := BuildComparativeIncomeStatement(accounts, lines, closing)

	table := RollForward(snapN2, snapN1, snapN, income.NetResultN1, income.NetResultN, closing.Year())
	table.Warnings = warnings
	return table
}

// equitySnapshotAt extracts the capitaux propres split from the balance
// sheet at one closing date.
func equitySnapshotAt(accounts []model.Account, lines []model.LedgerLine, closing time.Time) (EquitySnapshot, []Warning) {
	cumulative := Filter(lines, ResolvePeriods(closing).CumulativeN)
	sheet := BuildBalanceSheet(accounts, cumulative)

	capitalAndReserves, _ := sheet.Passif.SubMass("CAPITAUX PROPRES", "Capital et réserves")
	resultAndGrants, _ := sheet.Passif.SubMass("CAPITAUX PROPRES", "Résultat et subventions")

	snap := EquitySnapshot{}
	for _, line := range capitalAndReserves.Lines {
		if line.Label == "Capital" {
			snap.Capital = line.Amounts.Net
			break
		}
	}
	snap.Reserves = capitalAndReserves.Total.Net.Sub(snap.Capital)
	for _, line := range resultAndGrants.Lines {
		if strings.HasPrefix(line.Label, "Résultat") {
			snap.Result = line.Amounts.Net
			break
		}
	}

	return snap, sheet.Warnings
}
