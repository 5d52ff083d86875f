package security

import (
	"crypto/subtle"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminAuthenticator checks admin credentials. It is a stand-in for a real
// identity provider and must not be treated as production-grade auth.
type AdminAuthenticator interface {
	Authenticate(email, password string) error
}

// FixedCredentials compares against a single configured email/password pair.
type FixedCredentials struct {
	Email    string
	Password string
}

func (f *FixedCredentials) Authenticate(email, password string) error {
	emailOk := subtle.ConstantTimeCompare([]byte(email), []byte(f.Email)) == 1
	passwordOk := subtle.ConstantTimeCompare([]byte(password), []byte(f.Password)) == 1
	if !emailOk || !passwordOk {
		return ErrInvalidCredentials
	}
	return nil
}

var _ AdminAuthenticator = (*FixedCredentials)(nil)
