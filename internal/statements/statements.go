// Package statements turns a flat list of double-entry ledger lines into
// hierarchical, period-comparable financial statements: trial balance,
// balance sheet (actif/passif), income statement, cash-flow statement and
// statement of changes in equity.
//
// Everything here is a pure function of the accounts, the ledger lines and
// a closing date. The package performs no I/O, reads no clock, and never
// fails on data-quality issues: those are returned as Warnings attached to
// the generated statement.
package statements

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WarningCode identifies a class of data-quality anomaly.
type WarningCode string

const (
	// WarningUnknownAccount flags a ledger line whose account code is not
	// in the chart of accounts. Its amounts are excluded from all balances.
	WarningUnknownAccount WarningCode = "unknown-account"
	// WarningUncoveredAccount flags a moved account matched by no taxonomy
	// leaf of a statement. Its balance appears in no line of that statement.
	WarningUncoveredAccount WarningCode = "uncovered-account"
	// WarningUnbalancedSheet flags an actif/passif total mismatch.
	WarningUnbalancedSheet WarningCode = "unbalanced-sheet"
	// WarningCashFlowMismatch flags a cash-flow statement whose net change
	// in cash does not reconcile with the treasury delta on the balance
	// sheet.
	WarningCashFlowMismatch WarningCode = "cashflow-mismatch"
)

// Warning is a non-fatal anomaly detected while building a statement.
// Statements are never auto-corrected; callers decide how to surface these.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

func warningf(code WarningCode, format string, args ...any) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}

// tolerance is the reconciliation threshold for equilibrium and cash-flow
// checks: differences strictly below one cent are treated as equal.
var tolerance = decimal.New(1, -2)

// withinTolerance reports whether a and b differ by less than one cent.
func withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tolerance)
}
