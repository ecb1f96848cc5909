package services

import (
	"time"

	"mywallet/internal/domain"
	"mywallet/internal/repos"
	"mywallet/internal/validate"

	"github.com/shopspring/decimal"
)

type LedgerService struct {
	Transactions *repos.TransactionRepo
	Now          func() time.Time // test seam; defaults to time.Now
}

func NewLedgerService(tr *repos.TransactionRepo) *LedgerService {
	return &LedgerService{Transactions: tr, Now: time.Now}
}

// Append records an immutable ledger entry for the user, stamped with the
// current DD/MM label.
func (s *LedgerService) Append(u *domain.User, kind domain.Kind, description string, amount decimal.Decimal) error {
	msgs := validate.Entry(description, amount)
	if !kind.Valid() {
		msgs = append(msgs, `"tipo" must be one of [entrada, saida]`)
	}
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	description, _ = validate.Description(description)

	t := &domain.Transaction{
		UserID:      u.ID,
		Kind:        kind,
		Description: description,
		Amount:      amount,
		Date:        s.Now().Format("02/01"),
	}
	return s.Transactions.Insert(t)
}

// Statement returns the user's entries in insertion order together with
// the balance: sum of income minus sum of expense, recomputed by full
// scan on every read.
func (s *LedgerService) Statement(u *domain.User) ([]domain.Transaction, decimal.Decimal, error) {
	ts, err := s.Transactions.ListByUser(u.ID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for _, t := range ts {
		if t.Kind == domain.KindIncome {
			total = total.Add(t.Amount)
		} else {
			total = total.Sub(t.Amount)
		}
	}
	return ts, total, nil
}
