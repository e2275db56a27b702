package statements

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CashFlowStatement is the tableau des flux de trésorerie, indirect method.
// Every figure is an arithmetic derivation from already-computed
// comparative statements; no ledger scan happens here.
type CashFlowStatement struct {
	NetIncome           decimal.Decimal // bénéfice ou perte N
	DepreciationAddback decimal.Decimal // dotations aux amortissements et provisions N

	// Working-capital deltas. An increase in an asset consumes cash, an
	// increase in a liability provides cash.
	InventoryChange   decimal.Decimal
	ReceivablesChange decimal.Decimal
	PayablesChange    decimal.Decimal
	OperatingCashFlow decimal.Decimal

	CapitalExpenditure decimal.Decimal // net of the depreciation already added back
	InvestingCashFlow  decimal.Decimal

	EquityChange        decimal.Decimal // excluding the exercise result
	FinancialDebtChange decimal.Decimal
	FinancingCashFlow   decimal.Decimal

	NetChangeInCash decimal.Decimal
	OpeningCash     decimal.Decimal // treasury at N-1 closing
	ClosingCash     decimal.Decimal // treasury at N closing

	Warnings []Warning
}

// DeriveCashFlow derives the indirect-method cash-flow statement from a
// comparative balance sheet and a comparative income statement, then
// cross-checks the net change in cash against the treasury delta read off
// the balance sheet. A mismatch indicates a taxonomy or account-mapping
// inconsistency and is surfaced as a warning, never masked.
func DeriveCashFlow(sheet ComparativeBalanceSheet, income ComparativeIncomeStatement) CashFlowStatement {
	cf := CashFlowStatement{NetIncome: income.NetResultN}

	if sec, ok := income.Section("Charges d'exploitation"); ok {
		for _, line := range sec.Lines {
			if strings.HasPrefix(line.Label, "Dotations") {
				cf.DepreciationAddback = line.AmountN
				break
			}
		}
	}

	stocks, _ := sheet.Actif.SubMass("ACTIF CIRCULANT", "Stocks")
	receivables, _ := sheet.Actif.SubMass("ACTIF CIRCULANT", "Créances")
	treasury, _ := sheet.Actif.SubMass("ACTIF CIRCULANT", "Trésorerie")
	fixedAssets, _ := sheet.Actif.Mass("ACTIF IMMOBILISE")
	equity, _ := sheet.Passif.Mass("CAPITAUX PROPRES")
	operatingDebts, _ := sheet.Passif.SubMass("DETTES", "Dettes d'exploitation")
	financialDebts, _ := sheet.Passif.SubMass("DETTES", "Dettes financières")

	cf.InventoryChange = stocks.Total.N1.Net.Sub(stocks.Total.N.Net)
	cf.ReceivablesChange = receivables.Total.N1.Net.Sub(receivables.Total.N.Net)
	cf.PayablesChange = operatingDebts.Total.N.Net.Sub(operatingDebts.Total.N1.Net)

	cf.OperatingCashFlow = cf.NetIncome.
		Add(cf.DepreciationAddback).
		Add(cf.InventoryChange).
		Add(cf.ReceivablesChange).
		Add(cf.PayablesChange)

	// Capital expenditure is estimated from the net fixed-asset delta with
	// the period's depreciation added back (the net value already absorbed
	// it). Absent disposals this equals the gross delta and the statement
	// reconciles exactly with the treasury movement.
	cf.CapitalExpenditure = fixedAssets.Total.N.Net.
		Sub(fixedAssets.Total.N1.Net).
		Add(cf.DepreciationAddback).
		Neg()
	cf.InvestingCashFlow = cf.CapitalExpenditure

	cf.EquityChange = equity.Total.N.Net.Sub(equity.Total.N1.Net).Sub(cf.NetIncome)
	cf.FinancialDebtChange = financialDebts.Total.N.Net.Sub(financialDebts.Total.N1.Net)
	cf.FinancingCashFlow = cf.EquityChange.Add(cf.FinancialDebtChange)

	cf.NetChangeInCash = cf.OperatingCashFlow.
		Add(cf.InvestingCashFlow).
		Add(cf.FinancingCashFlow)

	cf.OpeningCash = treasury.Total.N1.Net
	cf.ClosingCash = treasury.Total.N.Net

	treasuryDelta := cf.ClosingCash.Sub(cf.OpeningCash)
	if !withinTolerance(cf.NetChangeInCash, treasuryDelta) {
		cf.Warnings = append(cf.Warnings, warningf(WarningCashFlowMismatch,
			"net change in cash %s does not reconcile with treasury delta %s",
			cf.NetChangeInCash.StringFixed(2), treasuryDelta.StringFixed(2)))
	}

	return cf
}
