package domain

import "github.com/shopspring/decimal"

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool { return k == KindIncome || k == KindExpense }

// Transaction is an immutable ledger entry. Amount is always positive;
// the kind decides whether it adds to or subtracts from the balance.
// Date is a DD/MM label stamped at append time.
type Transaction struct {
	ID          int64           `db:"id"`
	UserID      string          `db:"user_id"`
	Kind        Kind            `db:"kind"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Date        string          `db:"date"`
	CreatedAt   string          `db:"created_at"`
}
