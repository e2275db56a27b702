package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/id"
	"github.com/liasse-dev/liasse/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	PieceNumber string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.PieceNumber, e.Description)
}

// AccountChecker tests whether an account code exists in the plan comptable.
type AccountChecker interface {
	Exists(code string) bool
}

// ValidateLines enforces the journal invariants on a month's lines:
//
//  1. every piece balances (sum of debits equals sum of credits)
//  2. each line carries exactly one of debit or credit
//  3. every account code exists in the plan comptable
//  4. every date falls inside the month
//  5. piece sequence numbers are contiguous 1..N
//  6. amounts carry at most two decimal places
func ValidateLines(lines []model.LedgerLine, accounts AccountChecker, year, month int) []ValidationError {
	var errs []ValidationError

	// Group lines by piece.
	groups := make(map[string][]model.LedgerLine)
	var groupOrder []string
	for _, line := range lines {
		p := line.PieceNumber()
		if _, seen := groups[p]; !seen {
			groupOrder = append(groupOrder, p)
		}
		groups[p] = append(groups[p], line)
	}

	for _, p := range groupOrder {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, line := range groups[p] {
			totalDebit = totalDebit.Add(line.Debit)
			totalCredit = totalCredit.Add(line.Credit)
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				PieceNumber: p,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
	}

	two := decimal.NewFromInt(100)
	for _, line := range lines {
		hasDebit := !line.Debit.IsZero()
		hasCredit := !line.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Invariant:   2,
				PieceNumber: line.ID,
				Description: "line must have exactly one of debit or credit",
			})
		}

		if !accounts.Exists(line.AccountCode) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				PieceNumber: line.ID,
				Description: fmt.Sprintf("unknown account %s", line.AccountCode),
			})
		}

		if line.Date.Year() != year || int(line.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Invariant:   4,
				PieceNumber: line.ID,
				Description: fmt.Sprintf("date %s not in %04d-%02d", line.Date.Format("2006-01-02"), year, month),
			})
		}

		if !line.Debit.IsZero() && !line.Debit.Mul(two).Equal(line.Debit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   6,
				PieceNumber: line.ID,
				Description: fmt.Sprintf("debit %s has more than 2 decimal places", line.Debit),
			})
		}
		if !line.Credit.IsZero() && !line.Credit.Mul(two).Equal(line.Credit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   6,
				PieceNumber: line.ID,
				Description: fmt.Sprintf("credit %s has more than 2 decimal places", line.Credit),
			})
		}
	}

	// Contiguous piece sequences 1..N.
	seqSeen := make(map[int]bool)
	for _, line := range lines {
		_, _, seq, err := id.ParsePieceNumber(line.ID)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				PieceNumber: line.ID,
				Description: fmt.Sprintf("invalid line ID: %v", err),
			})
			continue
		}
		seqSeen[seq] = true
	}
	for i := 1; i <= len(seqSeen); i++ {
		if !seqSeen[i] {
			errs = append(errs, ValidationError{
				Invariant:   5,
				PieceNumber: fmt.Sprintf("seq %d", i),
				Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seqSeen)),
			})
		}
	}

	return errs
}
