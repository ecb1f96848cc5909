package services

import (
	"database/sql"
	"errors"

	"mywallet/internal/domain"
	"mywallet/internal/repos"
	"mywallet/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type AuthService struct {
	Users    *repos.UserRepo
	Sessions *repos.SessionRepo
}

// Register validates the signup fields, rejects duplicate identities and
// stores the new user with a bcrypt hash. The plaintext password never
// reaches the store.
func (s *AuthService) Register(name, email, password string) (string, error) {
	if msgs := validate.Registration(name, email, password); len(msgs) > 0 {
		return "", &ValidationError{Messages: msgs}
	}
	name, _ = validate.Name(name)
	email, _ = validate.Email(email)

	taken, err := s.Users.Exists(name, email)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	u := &domain.User{ID: uuid.NewString(), Name: name, Email: email, Hash: string(hash)}
	if err := s.Users.Create(u); err != nil {
		return "", err
	}
	return u.ID, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *AuthService) Authenticate(email, password string) (*domain.User, error) {
	if msgs := validate.Login(email, password); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}
	u, err := s.Users.ByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	return u, nil
}

// CreateSession mints an opaque token for the user and persists the
// association. A user may hold any number of live sessions.
func (s *AuthService) CreateSession(u *domain.User) (string, error) {
	token := uuid.NewString()
	if err := s.Sessions.Create(&domain.Session{Token: token, UserID: u.ID, UserName: u.Name}); err != nil {
		return "", err
	}
	return token, nil
}

// CurrentUser resolves a bearer token. Unknown or empty tokens come back
// as ErrUnauthenticated; the caller maps that to 401.
func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	u, err := s.Sessions.UserByToken(token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
