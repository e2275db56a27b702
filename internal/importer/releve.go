package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/model"
)

// ReleveParser parses the semicolon-separated relevé de compte export
// common to French banks: Date;Libellé;Débit;Crédit with DD/MM/YYYY dates
// and comma decimal separators.
type ReleveParser struct{}

const (
	releveDateFormat = "02/01/2006"
	releveNumFields  = 4
	releveColDate    = 0
	releveColLabel   = 1
	releveColDebit   = 2
	releveColCredit  = 3
)

// Format returns the parser name.
func (p *ReleveParser) Format() string { return "releve" }

// Parse reads a relevé CSV and returns BankTransactions. Débit amounts come
// out negative, crédit amounts positive.
func (p *ReleveParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = releveNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading relevé CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		txn, err := parseReleveRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseReleveRow(rec []string) (model.BankTransaction, error) {
	date, err := time.Parse(releveDateFormat, rec[releveColDate])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", rec[releveColDate], err)
	}

	debit := strings.TrimSpace(rec[releveColDebit])
	credit := strings.TrimSpace(rec[releveColCredit])

	var amount decimal.Decimal
	switch {
	case debit != "" && credit != "":
		return model.BankTransaction{}, fmt.Errorf("row has both débit %q and crédit %q", debit, credit)
	case debit != "":
		amount, err = parseFrenchAmount(debit)
		if err != nil {
			return model.BankTransaction{}, fmt.Errorf("parsing débit %q: %w", debit, err)
		}
		amount = amount.Abs().Neg()
	case credit != "":
		amount, err = parseFrenchAmount(credit)
		if err != nil {
			return model.BankTransaction{}, fmt.Errorf("parsing crédit %q: %w", credit, err)
		}
		amount = amount.Abs()
	default:
		return model.BankTransaction{}, fmt.Errorf("row has neither débit nor crédit")
	}

	label := strings.TrimSpace(rec[releveColLabel])
	return model.BankTransaction{
		Date:      date,
		Label:     label,
		Amount:    amount,
		Reference: makeReleveRef(date, label),
	}, nil
}

// parseFrenchAmount parses "1 234,56" style amounts. Non-breaking and
// narrow spaces show up as thousands separators in real exports.
func parseFrenchAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		case ',':
			return '.'
		}
		return r
	}, s)
	return decimal.NewFromString(cleaned)
}

// makeReleveRef creates a reference like releve_20250103_VIRSALAIRE.
func makeReleveRef(date time.Time, label string) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, label)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Sprintf("releve_%s_%s", date.Format("20060102"), prefix)
}
