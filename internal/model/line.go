package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is a single posted row in journal.csv (one side of a piece).
// Lines are immutable once written; lines sharing a piece number form one
// balanced transaction.
type LedgerLine struct {
	ID          string // "YYYY-MM-NNNx" where x = a,b,c... per line
	Date        time.Time
	JournalCode string // VE, AC, BQ, OD...
	AccountCode string
	Label       string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
	Reference   string
}

// PieceNumber returns the piece number (line ID without the line suffix).
// "2025-06-001a" -> "2025-06-001"
func (l LedgerLine) PieceNumber() string {
	id := l.ID
	i := len(id)
	for i > 0 && id[i-1] >= 'a' && id[i-1] <= 'z' {
		i--
	}
	return id[:i]
}
