package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var InvalidCredentialsError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "Invalid credentials",
	HttpStatusCode: 401,
}

var WalletMismatchError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "Unauthorized: Wallet address does not match the recipient address",
	HttpStatusCode: 403,
}

var InvoiceNotFoundError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "Invoice not found",
	HttpStatusCode: 404,
}

var InvalidAmountError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "Invalid payment amount",
	HttpStatusCode: 400,
}

var OverPaymentError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "Payment exceeds the amount due",
	HttpStatusCode: 400,
}

var InvalidOtpError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "Invalid OTP",
	HttpStatusCode: 400,
}

var SendEmailError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Failed to send email",
	HttpStatusCode: 500,
}

// auth failures are expected noise, everything else goes to Sentry
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	m, ok := he.Message.(echo.Map)
	if !ok {
		return true
	}
	code, ok := m["code"].(int)
	if !ok {
		return true
	}
	return code != 1
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
		return
	}
	c.JSON(http.StatusInternalServerError, GeneralServerError)
}
