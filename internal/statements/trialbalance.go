package statements

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/model"
)

// TrialBalanceRow is one account row of the balance de vérification.
// Exactly one of BalanceDebit / BalanceCredit is nonzero, chosen by the
// class sign convention; the magnitude is the absolute signed balance.
type TrialBalanceRow struct {
	AccountCode   string
	Label         string
	TotalDebit    decimal.Decimal
	TotalCredit   decimal.Decimal
	BalanceDebit  decimal.Decimal
	BalanceCredit decimal.Decimal
}

// TrialBalanceTotals carries the grand totals of the trial balance. For a
// ledger whose pieces balance, TotalDebit == TotalCredit and
// BalanceDebit == BalanceCredit.
type TrialBalanceTotals struct {
	TotalDebit    decimal.Decimal
	TotalCredit   decimal.Decimal
	BalanceDebit  decimal.Decimal
	BalanceCredit decimal.Decimal
}

// TrialBalance is the flat, non-hierarchical statement listing every moved
// account.
type TrialBalance struct {
	Rows     []TrialBalanceRow
	Totals   TrialBalanceTotals
	Warnings []Warning
}

// BuildTrialBalance computes the balance de vérification over a set of
// ledger lines. Accounts without movement are omitted; rows follow the
// chart-of-accounts order.
func BuildTrialBalance(accounts []model.Account, lines []model.LedgerLine) TrialBalance {
	balances, warnings := ComputeBalances(accounts, lines)

	tb := TrialBalance{Warnings: warnings}
	for _, account := range accounts {
		b := balances[account.Code]
		if b == nil || !b.HasMovement() {
			continue
		}

		row := TrialBalanceRow{
			AccountCode: account.Code,
			Label:       account.Label,
			TotalDebit:  b.TotalDebit,
			TotalCredit: b.TotalCredit,
		}

		// A positive raw delta is a solde débiteur, a negative one a solde
		// créditeur. Classes without a sign convention (8, 9) land on the
		// credit side.
		class := account.Class()
		delta := b.RawDelta()
		debitSide := delta.IsPositive() && (model.DebitNormal(class) || model.CreditNormal(class))
		if debitSide {
			row.BalanceDebit = delta.Abs()
		} else {
			row.BalanceCredit = delta.Abs()
		}

		tb.Rows = append(tb.Rows, row)
		tb.Totals.TotalDebit = tb.Totals.TotalDebit.Add(row.TotalDebit)
		tb.Totals.TotalCredit = tb.Totals.TotalCredit.Add(row.TotalCredit)
		tb.Totals.BalanceDebit = tb.Totals.BalanceDebit.Add(row.BalanceDebit)
		tb.Totals.BalanceCredit = tb.Totals.BalanceCredit.Add(row.BalanceCredit)
	}

	return tb
}

// ComparativeTrialBalanceRow carries the signed balance of one account at
// the N and N-1 closings.
type ComparativeTrialBalanceRow struct {
	AccountCode string
	Label       string
	BalanceN    decimal.Decimal
	BalanceN1   decimal.Decimal
}

// ComparativeTrialBalance lists per-account signed balances for the two
// cumulative periods.
type ComparativeTrialBalance struct {
	Rows     []ComparativeTrialBalanceRow
	TotalN   decimal.Decimal
	TotalN1  decimal.Decimal
	Warnings []Warning
}

// BuildComparativeTrialBalance computes signed balances at the closing date
// and one year earlier from the full ledger. Accounts with a zero balance
// in both periods are omitted.
func BuildComparativeTrialBalance(accounts []model.Account, lines []model.LedgerLine, closing time.Time) ComparativeTrialBalance {
	periods := ResolvePeriods(closing)

	balancesN, warnings := ComputeBalances(accounts, Filter(lines, periods.CumulativeN))
	balancesN1, _ := ComputeBalances(accounts, Filter(lines, periods.CumulativeN1))

	tb := ComparativeTrialBalance{Warnings: warnings}
	for _, account := range accounts {
		n := balancesN[account.Code].Signed
		n1 := balancesN1[account.Code].Signed
		if n.IsZero() && n1.IsZero() {
			continue
		}
		tb.Rows = append(tb.Rows, ComparativeTrialBalanceRow{
			AccountCode: account.Code,
			Label:       account.Label,
			BalanceN:    n,
			BalanceN1:   n1,
		})
		tb.TotalN = tb.TotalN.Add(n)
		tb.TotalN1 = tb.TotalN1.Add(n1)
	}
	return tb
}
