package services

import (
	"errors"
	"strings"
)

var (
	// ErrConflict: a user with the same name or email already exists.
	ErrConflict = errors.New("usuário já cadastrado")
	// ErrNotFound: no user registered under the given email.
	ErrNotFound = errors.New("usuário não cadastrado")
	// ErrBadCreds: password comparison failed.
	ErrBadCreds = errors.New("senha incorreta")
	// ErrUnauthenticated: missing, malformed or unknown session token.
	ErrUnauthenticated = errors.New("sessão inválida")
)

// ValidationError carries every failed input rule so the API can report
// them all at once, the way the original service did.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Messages, "; ") }

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
