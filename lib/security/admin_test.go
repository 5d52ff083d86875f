package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedCredentials(t *testing.T) {
	gate := &FixedCredentials{Email: "admin@example.com", Password: "admin123"}

	assert.NoError(t, gate.Authenticate("admin@example.com", "admin123"))
	assert.ErrorIs(t, gate.Authenticate("admin@example.com", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, gate.Authenticate("someone@example.com", "admin123"), ErrInvalidCredentials)
	assert.ErrorIs(t, gate.Authenticate("", ""), ErrInvalidCredentials)
}
