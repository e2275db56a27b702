package statements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liasse-dev/liasse/internal/model"
)

func TestComparativeBalanceSheet(t *testing.T) {
	closing := day(2025, time.December, 31)
	sheet := BuildComparativeBalanceSheet(testChart(), twoExerciseLedger(), closing)

	assert.Equal(t, closing, sheet.Closing)
	assert.Equal(t, day(2024, time.December, 31), sheet.ClosingN1)

	assert.True(t, sheet.Actif.Total.N.Net.Equal(dec("16400")), "got %s", sheet.Actif.Total.N.Net)
	assert.True(t, sheet.Actif.Total.N1.Net.Equal(dec("11200")), "got %s", sheet.Actif.Total.N1.Net)
	assert.True(t, sheet.Passif.Total.N.Net.Equal(dec("16400")))
	assert.True(t, sheet.Passif.Total.N1.Net.Equal(dec("11200")))

	// The equipment carries one more year of depreciation in N.
	corporelles, ok := sheet.Actif.SubMass("ACTIF IMMOBILISE", "Immobilisations corporelles")
	require.True(t, ok)
	assert.True(t, corporelles.Total.N.Depreciation.Equal(dec("1600")))
	assert.True(t, corporelles.Total.N1.Depreciation.Equal(dec("800")))

	// The loan only exists in N.
	financieres, ok := sheet.Passif.SubMass("DETTES", "Dettes financières")
	require.True(t, ok)
	assert.True(t, financieres.Total.N.Net.Equal(dec("2000")))
	assert.True(t, financieres.Total.N1.Net.IsZero())

	assert.Empty(t, sheet.Warnings)
}

func TestComparativeBalanceSheetSameShape(t *testing.T) {
	sheet := BuildComparativeBalanceSheet(testChart(), twoExerciseLedger(), day(2025, time.December, 31))

	require.Len(t, sheet.Actif.Masses, len(BilanActif.Categories))
	require.Len(t, sheet.Passif.Masses, len(BilanPassif.Categories))
	for i, mass := range sheet.Actif.Masses {
		assert.Equal(t, BilanActif.Categories[i].Label, mass.Label)
	}
}

func TestComparativeBalanceSheetWarnsOnUnbalancedN1(t *testing.T) {
	lines := twoExerciseLedger()
	// An orphan debit in 2024, reversed in 2025, breaks the N-1 equilibrium
	// while the N cumulative stays balanced.
	lines = append(lines,
		model.LedgerLine{ID: "2024-11-001a", Date: day(2024, time.November, 3),
			AccountCode: "512000", Debit: dec("250")},
		model.LedgerLine{ID: "2025-11-001a", Date: day(2025, time.November, 3),
			AccountCode: "512000", Credit: dec("250")})

	sheet := BuildComparativeBalanceSheet(testChart(), lines, day(2025, time.December, 31))

	var codes []WarningCode
	for _, w := range sheet.Warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, WarningUnbalancedSheet)
}

func TestComparativeIncomeStatement(t *testing.T) {
	stmt := BuildComparativeIncomeStatement(testChart(), twoExerciseLedger(), day(2025, time.December, 31))

	assert.True(t, stmt.NetResultN.Equal(dec("2600")), "got %s", stmt.NetResultN)
	assert.True(t, stmt.NetResultN1.Equal(dec("1200")), "got %s", stmt.NetResultN1)
	assert.True(t, stmt.OperatingResultN.Equal(dec("2700")))
	assert.True(t, stmt.OperatingResultN1.Equal(dec("1200")))
	assert.True(t, stmt.FinancialResultN.Equal(dec("-100")))
	assert.True(t, stmt.FinancialResultN1.IsZero())

	produits, ok := stmt.Section("Produits d'exploitation")
	require.True(t, ok)
	assert.True(t, produits.TotalN.Equal(dec("5000")))
	assert.True(t, produits.TotalN1.Equal(dec("3000")))

	for _, line := range produits.Lines {
		if line.Label == "Ventes de marchandises" {
			assert.True(t, line.AmountN.Equal(dec("5000")))
			assert.True(t, line.AmountN1.Equal(dec("3000")))
		}
	}
}
