package statements

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/model"
)

// SheetAmounts is the gross / depreciation / net triple carried by every
// node of the actif side. The passif side only populates Gross and Net
// (equal), there is no contra-account split on that side.
type SheetAmounts struct {
	Gross        decimal.Decimal
	Depreciation decimal.Decimal
	Net          decimal.Decimal
}

func (a SheetAmounts) add(b SheetAmounts) SheetAmounts {
	return SheetAmounts{
		Gross:        a.Gross.Add(b.Gross),
		Depreciation: a.Depreciation.Add(b.Depreciation),
		Net:          a.Net.Add(b.Net),
	}
}

// SheetLine is one leaf line of a balance-sheet side.
type SheetLine struct {
	Label   string
	Amounts SheetAmounts
}

// SheetSubMass groups leaf lines with their subtotal.
type SheetSubMass struct {
	Label string
	Lines []SheetLine
	Total SheetAmounts
}

// SheetMass is a "grande masse" with its subtotal.
type SheetMass struct {
	Label     string
	SubMasses []SheetSubMass
	Total     SheetAmounts
}

// SheetSide is one full side (actif or passif) of the balance sheet.
type SheetSide struct {
	Masses []SheetMass
	Total  SheetAmounts
}

// SubMass looks a sub-mass up by mass and sub-mass label.
func (s SheetSide) SubMass(mass, sub string) (SheetSubMass, bool) {
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
	return SheetSubMass{}, false
}

// Mass looks a mass up by label.
func (s SheetSide) Mass(label string) (SheetMass, bool) {
	for _, m := range s.Masses {
		if m.Label == label {
			return m, true
		}
	}
	return SheetMass{}, false
}

// buildOptions controls how buildSide turns balances into amounts.
type buildOptions struct {
	// signFlip negates the raw debit-minus-credit delta of every matched
	// account. The passif side is presented this way: the same actif-style
	// delta is computed and then negated, rather than applying the
	// credit-normal convention per class.
	signFlip bool
	// withDepreciation computes the gross/depreciation/net split from the
	// paired 28x / x9 contra accounts. Actif only.
	withDepreciation bool
	// result is the income-statement result substituted verbatim into any
	// leaf whose prefixes include account 12 (résultat de l'exercice).
	result decimal.Decimal
}

// buildSide walks a taxonomy against a balance set and produces the tree of
// one balance-sheet side. All totals are summed bottom-up from the leaves,
// never re-derived top-down.
func buildSide(tax Taxonomy, balances BalanceSet, opts buildOptions) SheetSide {
	side := SheetSide{}
	for _, cat := range tax.Categories {
		mass := SheetMass{Label: cat.Label}
		for _, sub := range cat.SubCategories {
			subMass := SheetSubMass{Label: sub.Label}
			for _, line := range sub.Lines {
				leaf := SheetLine{Label: line.Label, Amounts: leafAmounts(line, balances, opts)}
				subMass.Lines = append(subMass.Lines, leaf)
				subMass.Total = subMass.Total.add(leaf.Amounts)
			}
			mass.SubMasses = append(mass.SubMasses, subMass)
			mass.Total = mass.Total.add(subMass.Total)
		}
		side.Masses = append(side.Masses, mass)
		side.Total = side.Total.add(mass.Total)
	}
	return side
}

func leafAmounts(line TaxonomyLine, balances BalanceSet, opts buildOptions) SheetAmounts {
	// Résultat de l'exercice comes from the income statement, not from the
	// barely-moved account 12 itself.
	for _, p := range line.Prefixes {
		if p == "12" {
			return SheetAmounts{Gross: opts.result, Net: opts.result}
		}
	}

	var gross decimal.Decimal
	if opts.signFlip {
		gross = balances.sumNegatedRawForPrefixes(line.Prefixes)
	} else {
		gross = balances.sumSignedForPrefixes(line.Prefixes)
	}

	if !opts.withDepreciation {
		return SheetAmounts{Gross: gross, Net: gross}
	}

	// Contra accounts carry credit balances; their credit-minus-debit
	// delta is the depreciation deducted from the gross value.
	depreciation := balances.sumNegatedRawForPrefixes(contraPrefixes(line.Prefixes))
	return SheetAmounts{
		Gross:        gross,
		Depreciation: depreciation,
		Net:          gross.Sub(depreciation),
	}
}

// BalanceSheet is one snapshot of the bilan at a closing date.
type BalanceSheet struct {
	Actif    SheetSide
	Passif   SheetSide
	Warnings []Warning
}

// BuildBalanceSheet computes the bilan over a set of ledger lines (the
// caller applies the period filter; pass cumulative-filtered lines for a
// closing-date snapshot). The résultat line of the passif is the income
// statement computed over the same line set.
func BuildBalanceSheet(accounts []model.Account, lines []model.LedgerLine) BalanceSheet {
	balances, warnings := ComputeBalances(accounts, lines)
	income := BuildIncomeStatement(accounts, lines)

	actif := buildSide(BilanActif, balances, buildOptions{withDepreciation: true})
	passif := buildSide(BilanPassif, balances, buildOptions{signFlip: true, result: income.NetResult})

	warnings = append(warnings, sheetCoverageWarnings(balances)...)
	if !withinTolerance(actif.Total.Net, passif.Total.Net) {
		warnings = append(warnings, warningf(WarningUnbalancedSheet,
			"actif net %s != passif net %s", actif.Total.Net.StringFixed(2), passif.Total.Net.StringFixed(2)))
	}

	return BalanceSheet{Actif: actif, Passif: passif, Warnings: warnings}
}

// sheetCoverageWarnings reports moved balance-sheet accounts (classes 1-5)
// that no taxonomy leaf of either side covers. An uncovered account appears
// in no statement line and silently skews the equilibrium.
func sheetCoverageWarnings(balances BalanceSet) []Warning {
	prefixes := append(BilanActif.AllPrefixes(), BilanPassif.AllPrefixes()...)
	prefixes = append(prefixes, contraPrefixes(BilanActif.AllPrefixes())...)

	var uncovered []string
	for code, b := range balances {
		class := model.ClassOf(code)
		if class < 1 || class > 5 || !b.HasMovement() {
			continue
		}
		if !matchesAnyPrefix(code, prefixes) {
			uncovered = append(uncovered, code)
		}
	}
	sort.Strings(uncovered)

	warnings := make([]Warning, 0, len(uncovered))
	for _, code := range uncovered {
		warnings = append(warnings, warningf(WarningUncoveredAccount,
			"account %s matches no balance-sheet line", code))
	}
	return warnings
}
