package responses

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAuthErrorsNotAllowedForSentry(t *testing.T) {
	authErrResponse := echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
		"error":   true,
		"code":    1,
		"message": "Invalid credentials",
	})

	isAllowed := isErrAllowedForSentry(authErrResponse)
	assert.False(t, isAllowed)
}

func TestDomainErrorsAllowedForSentry(t *testing.T) {
	overPaymentErrResponse := echo.NewHTTPError(http.StatusBadRequest, echo.Map{
		"error":   true,
		"code":    2,
		"message": "Payment exceeds the amount due",
	})

	isAllowed := isErrAllowedForSentry(overPaymentErrResponse)
	assert.True(t, isAllowed)
}

func TestNonErrorResponseErrorsAllowedForSentry(t *testing.T) {
	err := errors.New("random error")

	isAllowed := isErrAllowedForSentry(err)
	assert.True(t, isAllowed)
}
