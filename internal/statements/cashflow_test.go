package statements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/liasse-dev/liasse/internal/model"
)

func deriveTestCashFlow(t *testing.T, accounts []model.Account, lines []model.LedgerLine, closing time.Time) CashFlowStatement {
	t.Helper()
	sheet := BuildComparativeBalanceSheet(accounts, lines, closing)
	income := BuildComparativeIncomeStatement(accounts, lines, closing)
	return DeriveCashFlow(sheet, income)
}

func TestCashFlowReconciles(t *testing.T) {
	cf := deriveTestCashFlow(t, testChart(), twoExerciseLedger(), day(2025, time.December, 31))

	assert.True(t, cf.NetIncome.Equal(dec("2600")), "net income %s", cf.NetIncome)
	assert.True(t, cf.DepreciationAddback.Equal(dec("800")))

	// Receivables fell by 500, operating debts rose by 600; both free cash.
	assert.True(t, cf.ReceivablesChange.Equal(dec("500")), "got %s", cf.ReceivablesChange)
	assert.True(t, cf.PayablesChange.Equal(dec("600")), "got %s", cf.PayablesChange)
	assert.True(t, cf.InventoryChange.IsZero())
	assert.True(t, cf.OperatingCashFlow.Equal(dec("4500")), "operating %s", cf.OperatingCashFlow)

	// No acquisitions in N; the net fixed-asset drop is pure depreciation.
	assert.True(t, cf.InvestingCashFlow.IsZero(), "investing %s", cf.InvestingCashFlow)

	assert.True(t, cf.EquityChange.IsZero(), "equity change %s", cf.EquityChange)
	assert.True(t, cf.FinancialDebtChange.Equal(dec("2000")))
	assert.True(t, cf.FinancingCashFlow.Equal(dec("2000")))

	assert.True(t, cf.NetChangeInCash.Equal(dec("6500")), "net change %s", cf.NetChangeInCash)
	assert.True(t, cf.OpeningCash.Equal(dec("7000")))
	assert.True(t, cf.ClosingCash.Equal(dec("13500")))
	assert.Empty(t, cf.Warnings)
}

func TestCashFlowCapitalExpenditure(t *testing.T) {
	// Closing one year earlier: the 4000 equipment purchase sits in N.
	cf := deriveTestCashFlow(t, testChart(), twoExerciseLedger(), day(2024, time.December, 31))

	assert.True(t, cf.CapitalExpenditure.Equal(dec("-4000")), "capex %s", cf.CapitalExpenditure)
	assert.True(t, cf.InvestingCashFlow.Equal(dec("-4000")))
	assert.True(t, cf.NetChangeInCash.Equal(dec("7000")), "net change %s", cf.NetChangeInCash)
	assert.Empty(t, cf.Warnings)
}

func TestCashFlowMismatchWarning(t *testing.T) {
	// A cash movement against a provisions account reaches the treasury but
	// none of the flows the derivation tracks: the PROVISIONS mass feeds no
	// operating, investing, or financing line.
	chart := append(testChart(), model.Account{Code: "151000", Label: "Provisions pour risques"})
	lines := append(twoExerciseLedger(), piece("2025-10-001", day(2025, time.October, 1), "OD",
		pieceLine{account: "512000", debit: "400"},
		pieceLine{account: "151000", credit: "400"})...)

	cf := deriveTestCashFlow(t, chart, lines, day(2025, time.December, 31))

	var found bool
	for _, w := range cf.Warnings {
		if w.Code == WarningCashFlowMismatch {
			found = true
		}
	}
	assert.True(t, found, "expected a cash-flow mismatch warning, got %v", cf.Warnings)
	assert.True(t, cf.ClosingCash.Equal(dec("13900")))
	assert.True(t, cf.NetChangeInCash.Equal(dec("6500")))
}
