package statements

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/model"
)

// ComparativeAmounts carries one node's amounts for both exercises.
type ComparativeAmounts struct {
	N  SheetAmounts
	N1 SheetAmounts
}

// ComparativeSheetLine, ComparativeSheetSubMass, ComparativeSheetMass and
// ComparativeSheetSide mirror the single-period sheet tree with a value per
// exercise on every node. Both trees always have the same shape because
// they are built from the same taxonomy.
type ComparativeSheetLine struct {
	Label   string
	Amounts ComparativeAmounts
}

type ComparativeSheetSubMass struct {
	Label string
	Lines []ComparativeSheetLine
	Total ComparativeAmounts
}

type ComparativeSheetMass struct {
	Label     string
	SubMasses []ComparativeSheetSubMass
	Total     ComparativeAmounts
}

type ComparativeSheetSide struct {
	Masses []ComparativeSheetMass
	Total  ComparativeAmounts
}

// SubMass looks a sub-mass up by mass and sub-mass label.
func (s ComparativeSheetSide) SubMass(mass, sub string) (ComparativeSheetSubMass, bool) {
	for _, m := range s.Masses {
		if m.Label != mass {
			continue
		}
		for _, sm := range m.SubMasses {
			if sm.Label == sub {
				return sm, true
			}
		}
	}
	return ComparativeSheetSubMass{}, false
}

// Mass looks a mass up by label.
func (s ComparativeSheetSide) Mass(label string) (ComparativeSheetMass, bool) {
	for _, m := range s.Masses {
		if m.Label == label {
			return m, true
		}
	}
	return ComparativeSheetMass{}, false
}

// ComparativeBalanceSheet is the bilan with N and N-1 columns.
type ComparativeBalanceSheet struct {
	Closing   time.Time
	ClosingN1 time.Time
	Actif     ComparativeSheetSide
	Passif    ComparativeSheetSide
	Warnings  []Warning
}

// BuildComparativeBalanceSheet runs the statement builder for the two
// cumulative periods derived from the closing date and merges the trees
// node by node. Equilibrium is checked independently per exercise; a
// violation is reported, never corrected.
func BuildComparativeBalanceSheet(accounts []model.Account, lines []model.LedgerLine, closing time.Time) ComparativeBalanceSheet {
	periods := ResolvePeriods(closing)

	linesN := Filter(lines, periods.CumulativeN)
	linesN1 := Filter(lines, periods.CumulativeN1)

	sheetN := BuildBalanceSheet(accounts, linesN)
	sheetN1 := BuildBalanceSheet(accounts, linesN1)

	cmp := ComparativeBalanceSheet{
		Closing:   periods.Closing,
		ClosingN1: periods.ClosingN1,
		Actif:     mergeSides(sheetN.Actif, sheetN1.Actif),
		Passif:    mergeSides(sheetN.Passif, sheetN1.Passif),
		Warnings:  sheetN.Warnings,
	}

	if !withinTolerance(sheetN1.Actif.Total.Net, sheetN1.Passif.Total.Net) {
		cmp.Warnings = append(cmp.Warnings, warningf(WarningUnbalancedSheet,
			"N-1 actif net %s != passif net %s",
			sheetN1.Actif.Total.Net.StringFixed(2), sheetN1.Passif.Total.Net.StringFixed(2)))
	}

	return cmp
}

// mergeSides zips two same-shaped sides into a comparative side.
func mergeSides(n, n1 SheetSide) ComparativeSheetSide {
	side := ComparativeSheetSide{Total: ComparativeAmounts{N: n.Total, N1: n1.Total}}
	for i, mass := range n.Masses {
		massN1 := n1.Masses[i]
		cm := ComparativeSheetMass{
			Label: mass.Label,
			Total: ComparativeAmounts{N: mass.Total, N1: massN1.Total},
		}
		for j, sub := range mass.SubMasses {
			subN1 := massN1.SubMasses[j]
			csm := ComparativeSheetSubMass{
				Label: sub.Label,
				Total: ComparativeAmounts{N: sub.Total, N1: subN1.Total},
			}
			for k, line := range sub.Lines {
				csm.Lines = append(csm.Lines, ComparativeSheetLine{
					Label:   line.Label,
					Amounts: ComparativeAmounts{N: line.Amounts, N1: subN1.Lines[k].Amounts},
				})
			}
			cm.SubMasses = append(cm.SubMasses, csm)
		}
		side.Masses = append(side.Masses, cm)
	}
	return side
}

// ComparativeIncomeLine carries one income line for both exercises.
type ComparativeIncomeLine struct {
	Label    string
	AmountN  decimal.Decimal
	AmountN1 decimal.Decimal
}

// ComparativeIncomeSection groups comparative lines with per-exercise
// subtotals.
type ComparativeIncomeSection struct {
	Label   string
	Lines   []ComparativeIncomeLine
	TotalN  decimal.Decimal
	TotalN1 decimal.Decimal
}

// ComparativeIncomeStatement is the compte de résultat with N and N-1
// columns and the intermediate balances for both exercises.
type ComparativeIncomeStatement struct {
	Closing   time.Time
	ClosingN1 time.Time
	Sections  []ComparativeIncomeSection

	OperatingResultN         decimal.Decimal
	OperatingResultN1        decimal.Decimal
	FinancialResultN         decimal.Decimal
	FinancialResultN1        decimal.Decimal
	CurrentResultBeforeTaxN  decimal.Decimal
	CurrentResultBeforeTaxN1 decimal.Decimal
	NetResultN               decimal.Decimal
	NetResultN1              decimal.Decimal
	Warnings                 []Warning
}

// Section looks a section up by label.
func (s ComparativeIncomeStatement) Section(label string) (ComparativeIncomeSection, bool) {
	for _, sec := range s.Sections {
		if sec.Label == label {
			return sec, true
		}
	}
	return ComparativeIncomeSection{}, false
}

// BuildComparativeIncomeStatement runs the income statement for the two
// annual windows derived from the closing date. Flow measures always use
// window filters, never cumulative ones, even inside a comparative request.
func BuildComparativeIncomeStatement(accounts []model.Account, lines []model.LedgerLine, closing time.Time) ComparativeIncomeStatement {
	periods := ResolvePeriods(closing)

	stmtN := BuildIncomeStatement(accounts, Filter(lines, periods.WindowN))
	stmtN1 := BuildIncomeStatement(accounts, Filter(lines, periods.WindowN1))

	cmp := ComparativeIncomeStatement{
		Closing:   periods.Closing,
		ClosingN1: periods.ClosingN1,

		OperatingResultN:         stmtN.OperatingResult,
		OperatingResultN1:        stmtN1.OperatingResult,
		FinancialResultN:         stmtN.FinancialResult,
		FinancialResultN1:        stmtN1.FinancialResult,
		CurrentResultBeforeTaxN:  stmtN.CurrentResultBeforeTax,
		CurrentResultBeforeTaxN1: stmtN1.CurrentResultBeforeTax,
		NetResultN:               stmtN.NetResult,
		NetResultN1:              stmtN1.NetResult,
		Warnings:                 stmtN.Warnings,
	}

	for i, sec := range stmtN.Sections {
		secN1 := stmtN1.Sections[i]
		csec := ComparativeIncomeSection{Label: sec.Label, TotalN: sec.Total, TotalN1: secN1.Total}
		for j, line := range sec.Lines {
			csec.Lines = append(csec.Lines, ComparativeIncomeLine{
				Label:    line.Label,
				AmountN:  line.Amount,
				AmountN1: secN1.Lines[j].Amount,
			})
		}
		cmp.Sections = append(cmp.Sections, csec)
	}

	return cmp
}
