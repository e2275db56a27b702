package statements

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/model"
)

// AccountBalance holds the aggregated movements and signed balance of one
// account over a given subset of ledger lines. Balances are recomputed per
// query; they are never cached because the period filter changes per call.
type AccountBalance struct {
	AccountCode string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	// Signed holds the balance under the class sign convention:
	// debit - credit for classes 2-6, credit - debit for classes 1 and 7,
	// zero variation otherwise.
	Signed decimal.Decimal
}

// RawDelta returns the actif-style debit-minus-credit delta, independent of
// the class convention. The passif side of the balance sheet is built from
// the negation of this value.
func (b AccountBalance) RawDelta() decimal.Decimal {
	return b.TotalDebit.Sub(b.TotalCredit)
}

// BalanceSet maps account codes to their balances for one line subset.
type BalanceSet map[string]*AccountBalance

// ComputeBalances aggregates ledger lines into one balance per known
// account. Lines referencing unknown account codes contribute nothing and
// are reported as warnings.
func ComputeBalances(accounts []model.Account, lines []model.LedgerLine) (BalanceSet, []Warning) {
	balances := make(BalanceSet, len(accounts))
	for _, a := range accounts {
		balances[a.Code] = &AccountBalance{AccountCode: a.Code}
	}

	var warnings []Warning
	unknown := map[string]bool{}
	for _, line := range lines {
		b, ok := balances[line.AccountCode]
		if !ok {
			if !unknown[line.AccountCode] {
				unknown[line.AccountCode] = true
				warnings = append(warnings, warningf(WarningUnknownAccount,
					"ledger line %s references account %q not present in the chart of accounts", line.ID, line.AccountCode))
			}
			continue
		}
		b.TotalDebit = b.TotalDebit.Add(line.Debit)
		b.TotalCredit = b.TotalCredit.Add(line.Credit)
	}

	for _, b := range balances {
		class := model.ClassOf(b.AccountCode)
		switch {
		case model.DebitNormal(class):
			b.Signed = b.TotalDebit.Sub(b.TotalCredit)
		case model.CreditNormal(class):
			b.Signed = b.TotalCredit.Sub(b.TotalDebit)
		}
	}

	return balances, warnings
}

// HasMovement reports whether the account saw any debit or credit in the
// period.
func (b AccountBalance) HasMovement() bool {
	return !b.TotalDebit.IsZero() || !b.TotalCredit.IsZero()
}

// sumSignedForPrefixes adds up the signed balances of every account whose
// code starts with one of the prefixes.
func (s BalanceSet) sumSignedForPrefixes(prefixes []string) decimal.Decimal {
	total := decimal.Zero
	for code, b := range s {
		if matchesAnyPrefix(code, prefixes) {
			total = total.Add(b.Signed)
		}
	}
	return total
}

// sumNegatedRawForPrefixes adds up the negated debit-minus-credit deltas of
// every matching account. Used for passif presentation.
func (s BalanceSet) sumNegatedRawForPrefixes(prefixes []string) decimal.Decimal {
	total := decimal.Zero
	for code, b := range s {
		if matchesAnyPrefix(code, prefixes) {
			total = total.Sub(b.RawDelta())
		}
	}
	return total
}

// sortedCodes returns the account codes of a balance set in ascending
// order, for deterministic iteration.
func sortedCodes(s BalanceSet) []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func matchesAnyPrefix(code string, prefixes []string) bool {
	for _, p := range prefixes {
		if len(code) >= len(p) && code[:len(p)] == p {
			return true
		}
	}
	return false
}
