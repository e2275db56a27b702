package statements

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// testChart is a minimal plan comptable covering every statement family.
func testChart() []model.Account {
	return []model.Account{
		{Code: "101000", Label: "Capital"},
		{Code: "106800", Label: "Autres réserves"},
		{Code: "164000", Label: "Emprunts auprès des établissements de crédit"},
		{Code: "215000", Label: "Installations techniques"},
		{Code: "281500", Label: "Amortissements des installations techniques"},
		{Code: "311000", Label: "Matières premières"},
		{Code: "401000", Label: "Fournisseurs"},
		{Code: "411000", Label: "Clients"},
		{Code: "512000", Label: "Banque"},
		{Code: "530000", Label: "Caisse"},
		{Code: "601000", Label: "Achats de matières premières"},
		{Code: "641000", Label: "Salaires et traitements"},
		{Code: "661000", Label: "Charges d'intérêts"},
		{Code: "681000", Label: "Dotations aux amortissements"},
		{Code: "707000", Label: "Ventes de marchandises"},
		{Code: "764000", Label: "Revenus des valeurs mobilières"},
	}
}

type pieceLine struct {
	account string
	debit   string
	credit  string
}

// piece expands a balanced transaction into its ledger lines.
func piece(id string, date time.Time, journal string, lines ...pieceLine) []model.LedgerLine {
	out := make([]model.LedgerLine, 0, len(lines))
	for i, pl := range lines {
		line := model.LedgerLine{
			ID:          id + string(rune('a'+i)),
			Date:        date,
			JournalCode: journal,
			AccountCode: pl.account,
			Label:       "piece " + id,
		}
		if pl.debit != "" {
			line.Debit = dec(pl.debit)
		}
		if pl.credit != "" {
			line.Credit = dec(pl.credit)
		}
		out = append(out, line)
	}
	return out
}

// twoExerciseLedger builds a ledger spanning 2024 (N-1) and 2025 (N) whose
// balance sheet stays in equilibrium and whose cash flow reconciles.
//
// 2024: capital paid in, equipment bought, one sale collected in part, one
// salary payment, year-end depreciation.
// 2025: supplier purchase partially paid, a sale, the prior receivable
// collected, a loan drawn, interest and year-end depreciation.
func twoExerciseLedger() []model.LedgerLine {
	var lines []model.LedgerLine
	add := func(ls []model.LedgerLine) { lines = append(lines, ls...) }

	add(piece("2024-01-001", day(2024, time.January, 5), "OD",
		pieceLine{account: "512000", debit: "10000"},
		pieceLine{account: "101000", credit: "10000"}))
	add(piece("2024-02-001", day(2024, time.February, 1), "AC",
		pieceLine{account: "215000", debit: "4000"},
		pieceLine{account: "512000", credit: "4000"}))
	add(piece("2024-03-001", day(2024, time.March, 1), "VE",
		pieceLine{account: "411000", debit: "3000"},
		pieceLine{account: "707000", credit: "3000"}))
	add(piece("2024-04-001", day(2024, time.April, 1), "BQ",
		pieceLine{account: "512000", debit: "2000"},
		pieceLine{account: "411000", credit: "2000"}))
	add(piece("2024-05-001", day(2024, time.May, 1), "OD",
		pieceLine{account: "641000", debit: "1000"},
		pieceLine{account: "512000", credit: "1000"}))
	add(piece("2024-12-001", day(2024, time.December, 31), "OD",
		pieceLine{account: "681000", debit: "800"},
		pieceLine{account: "281500", credit: "800"}))

	add(piece("2025-02-001", day(2025, time.February, 10), "AC",
		pieceLine{account: "601000", debit: "1500"},
		pieceLine{account: "401000", credit: "1500"}))
	add(piece("2025-03-001", day(2025, time.March, 5), "BQ",
		pieceLine{account: "401000", debit: "900"},
		pieceLine{account: "512000", credit: "900"}))
	add(piece("2025-04-001", day(2025, time.April, 1), "VE",
		pieceLine{account: "411000", debit: "5000"},
		pieceLine{account: "707000", credit: "5000"}))
	add(piece("2025-05-001", day(2025, time.May, 2), "BQ",
		pieceLine{account: "512000", debit: "5500"},
		pieceLine{account: "411000", credit: "5500"}))
	add(piece("2025-06-001", day(2025, time.June, 15), "BQ",
		pieceLine{account: "512000", debit: "2000"},
		pieceLine{account: "164000", credit: "2000"}))
	add(piece("2025-09-001", day(2025, time.September, 30), "BQ",
		pieceLine{account: "661000", debit: "100"},
		pieceLine{account: "512000", credit: "100"}))
	add(piece("2025-12-001", day(2025, time.December, 31), "OD",
		pieceLine{account: "681000", debit: "800"},
		pieceLine{account: "281500", credit: "800"}))

	return lines
}
