package repos

import (
	"mywallet/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TransactionRepo struct{ DB *sqlx.DB }

func NewTransactionRepo(db *sqlx.DB) *TransactionRepo { return &TransactionRepo{DB: db} }

func (r *TransactionRepo) Insert(t *domain.Transaction) error {
	_, err := r.DB.Exec(`INSERT INTO transactions(user_id,kind,description,amount,date) VALUES(?,?,?,?,?)`,
		t.UserID, t.Kind, t.Description, t.Amount.String(), t.Date)
	return err
}

// ListByUser returns the user's entries in insertion order.
func (r *TransactionRepo) ListByUser(userID string) ([]domain.Transaction, error) {
	var ts []domain.Transaction
	err := r.DB.Select(&ts, `
      SELECT id,user_id,kind,description,amount,date,created_at
      FROM transactions WHERE user_id=? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	return ts, nil
}
