package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "line_id,date,journal,account,label,debit,credit,reference"

const (
	numFields  = 8
	dateFormat = "2006-01-02"
	colLineID  = 0
	colDate    = 1
	colJournal = 2
	colAccount = 3
	colLabel   = 4
	colDebit   = 5
	colCredit  = 6
	colRef     = 7
)

// ReadLines reads all ledger lines from a journal.csv reader.
func ReadLines(r io.Reader) ([]model.LedgerLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var lines []model.LedgerLine
	for i, rec := range records[1:] {
		line, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteLines writes ledger lines to a journal.csv writer (including header).
func WriteLines(w io.Writer, lines []model.LedgerLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendLines appends lines to an existing journal.csv writer (no header).
func AppendLines(w io.Writer, lines []model.LedgerLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalLine converts a LedgerLine to a CSV row.
func MarshalLine(line model.LedgerLine) []string {
	row := make([]string, numFields)
	row[colLineID] = line.ID
	row[colDate] = line.Date.Format(dateFormat)
	row[colJournal] = line.JournalCode
	row[colAccount] = line.AccountCode
	row[colLabel] = line.Label

	if !line.Debit.IsZero() {
		row[colDebit] = line.Debit.StringFixed(2)
	}
	if !line.Credit.IsZero() {
		row[colCredit] = line.Credit.StringFixed(2)
	}

	row[colRef] = line.Reference
	return row
}

// UnmarshalLine converts a CSV row to a LedgerLine.
func UnmarshalLine(record []string) (model.LedgerLine, error) {
	if len(record) != numFields {
		return model.LedgerLine{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.LedgerLine{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var debit, credit decimal.Decimal

	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return model.LedgerLine{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}

	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return model.LedgerLine{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return model.LedgerLine{
		ID:          record[colLineID],
		Date:        date,
		JournalCode: record[colJournal],
		AccountCode: record[colAccount],
		Label:       record[colLabel],
		Debit:       debit,
		Credit:      credit,
		Reference:   record[colRef],
	}, nil
}
