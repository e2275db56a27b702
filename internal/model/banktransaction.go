package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one movement from an imported bank statement, before
// it is turned into a journal piece. Amount is signed from the account
// holder's perspective: positive for money in, negative for money out.
type BankTransaction struct {
	Date      time.Time
	Label     string
	Amount    decimal.Decimal
	Reference string
}
