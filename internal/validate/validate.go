package validate

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces the minimum length the original service required.
func Password(s string) bool {
	return len(s) >= 3
}

func Description(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Amount accepts positive values with at most 2 decimal digits.
func Amount(d decimal.Decimal) bool {
	if d.Cmp(decimal.Zero) <= 0 {
		return false
	}
	return d.Exponent() >= -2
}

// Registration collects all field errors for a signup request, joi-style:
// every failing rule is reported, not just the first.
func Registration(name, email, password string) []string {
	var errs []string
	if _, ok := Name(name); !ok {
		errs = append(errs, `"name" is required`)
	}
	if _, ok := Email(email); !ok {
		errs = append(errs, `"email" must be a valid email`)
	}
	if !Password(password) {
		errs = append(errs, `"password" length must be at least 3 characters long`)
	}
	return errs
}

// Login collects all field errors for a login request.
func Login(email, password string) []string {
	var errs []string
	if _, ok := Email(email); !ok {
		errs = append(errs, `"email" must be a valid email`)
	}
	if !Password(password) {
		errs = append(errs, `"password" length must be at least 3 characters long`)
	}
	return errs
}

// Entry collects all field errors for a new ledger entry.
func Entry(description string, amount decimal.Decimal) []string {
	var errs []string
	if _, ok := Description(description); !ok {
		errs = append(errs, `"descricao" is required`)
	}
	if !Amount(amount) {
		errs = append(errs, `"valor" must be a positive number with at most 2 decimal digits`)
	}
	return errs
}
