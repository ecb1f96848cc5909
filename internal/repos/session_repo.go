package repos

import (
	"mywallet/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SessionRepo struct{ DB *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{DB: db} }

func (r *SessionRepo) Create(s *domain.Session) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(token,user_id,user_name) VALUES(?,?,?)`,
		s.Token, s.UserID, s.UserName)
	return err
}

// UserByToken resolves a bearer token to the user it was issued for.
func (r *SessionRepo) UserByToken(token string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id,u.name,u.email,u.password_hash
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.token=?`, token)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
