package model

// Account is one row of the plan comptable (French PCG chart of accounts).
// Codes are hierarchical digit strings; the leading digit is the account
// class and fixes the sign convention of its balance.
type Account struct {
	Code        string
	Label       string
	Description string
}

// Class returns the account class (leading digit of the code), or 0 when
// the code does not start with a digit.
func (a Account) Class() int {
	return ClassOf(a.Code)
}

// ClassOf returns the class digit of an account code, or 0 for malformed
// codes.
func ClassOf(code string) int {
	if len(code) == 0 {
		return 0
	}
	c := code[0]
	if c < '1' || c > '9' {
		return 0
	}
	return int(c - '0')
}

// DebitNormal reports whether the class carries a debit-normal balance
// (assets and expenses: classes 2-6). Classes 1 and 7 are credit-normal.
func DebitNormal(class int) bool {
	return class >= 2 && class <= 6
}

// CreditNormal reports whether the class carries a credit-normal balance.
func CreditNormal(class int) bool {
	return class == 1 || class == 7
}
