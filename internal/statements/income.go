package statements

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/model"
)

// IncomeLine is one line of the compte de résultat.
type IncomeLine struct {
	Label  string
	Amount decimal.Decimal
}

// IncomeSection groups lines by nature (produits/charges, exploitation/
// financier) with their subtotal.
type IncomeSection struct {
	Label string
	Lines []IncomeLine
	Total decimal.Decimal
}

// IncomeStatement is the compte de résultat over one fiscal window, with
// its intermediate management balances.
type IncomeStatement struct {
	Sections []IncomeSection

	OperatingResult        decimal.Decimal // produits - charges d'exploitation
	FinancialResult        decimal.Decimal // produits - charges financiers
	CurrentResultBeforeTax decimal.Decimal
	NetResult              decimal.Decimal // bénéfice ou perte
	Warnings               []Warning
}

// Section looks a section up by label.
func (s IncomeStatement) Section(label string) (IncomeSection, bool) {
	for _, sec := range s.Sections {
		if sec.Label == label {
			return sec, true
		}
	}
	return IncomeSection{}, false
}

// Line looks a line up by label prefix within a section.
func (s IncomeSection) Line(labelPrefix string) (IncomeLine, bool) {
	for _, l := range s.Lines {
		if strings.HasPrefix(l.Label, labelPrefix) {
			return l, true
		}
	}
	return IncomeLine{}, false
}

// BuildIncomeStatement computes the compte de résultat over a set of ledger
// lines (the caller applies the period filter; flow statements take
// annual-window lines). Only management lines (classes 6 and 7) enter the
// computation.
func BuildIncomeStatement(accounts []model.Account, lines []model.LedgerLine) IncomeStatement {
	managed := Filter(lines, func(l model.LedgerLine) bool {
		class := model.ClassOf(l.AccountCode)
		return class == 6 || class == 7
	})
	balances, warnings := ComputeBalances(accounts, managed)

	stmt := IncomeStatement{Warnings: warnings}
	for _, cat := range CompteDeResultat.Categories {
		section := IncomeSection{Label: cat.Label}
		for _, sub := range cat.SubCategories {
			for _, line := range sub.Lines {
				amount := balances.sumSignedForPrefixes(line.Prefixes)
				section.Lines = append(section.Lines, IncomeLine{Label: line.Label, Amount: amount})
				section.Total = section.Total.Add(amount)
			}
		}
		stmt.Sections = append(stmt.Sections, section)
	}

	stmt.Warnings = append(stmt.Warnings, incomeCoverageWarnings(balances)...)

	operatingIncome := sectionTotal(stmt, "Produits d'exploitation")
	operatingExpense := sectionTotal(stmt, "Charges d'exploitation")
	stmt.OperatingResult = operatingIncome.Sub(operatingExpense)

	financialIncome := sectionTotal(stmt, "Produits financiers")
	financialExpense := sectionTotal(stmt, "Charges financières")
	stmt.FinancialResult = financialIncome.Sub(financialExpense)

	stmt.CurrentResultBeforeTax = stmt.OperatingResult.Add(stmt.FinancialResult)
	stmt.NetResult = stmt.CurrentResultBeforeTax

	return stmt
}

func sectionTotal(stmt IncomeStatement, label string) decimal.Decimal {
	if sec, ok := stmt.Section(label); ok {
		return sec.Total
	}
	return decimal.Zero
}

// incomeCoverageWarnings reports moved class 6/7 accounts matched by no
// line of the compte de résultat.
func incomeCoverageWarnings(balances BalanceSet) []Warning {
	prefixes := CompteDeResultat.AllPrefixes()

	var warnings []Warning
	for _, code := range sortedCodes(balances) {
		b := balances[code]
		class := model.ClassOf(code)
		if class != 6 && class != 7 || !b.HasMovement() {
			continue
		}
		if !matchesAnyPrefix(code, prefixes) {
			warnings = append(warnings, warningf(WarningUncoveredAccount,
				"account %s matches no income-statement line", code))
		}
	}
	return warnings
}
