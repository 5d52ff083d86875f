package controllers

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// OtpController : OtpController struct
type OtpController struct {
	svc *service.InvoicehubService
}

func NewOtpController(svc *service.InvoicehubService) *OtpController {
	return &OtpController{svc: svc}
}

type GenerateOtpRequestBody struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOtpRequestBody struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required"`
}

// GenerateOtp godoc
// @Summary      Generate a login OTP
// @Description  Assigns a fresh 6-digit code to the email and sends it
// @Accept       json
// @Produce      json
// @Tags         Otp
// @Param        request  body      GenerateOtpRequestBody  true  "Email"
// @Success      200      {object}  echo.Map
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /api/generate-otp [post]
func (controller *OtpController) GenerateOtp(c echo.Context) error {
	var body GenerateOtpRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load generate otp request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	err := controller.svc.GenerateOtp(c.Request().Context(), body.Email)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"message": "OTP sent successfully"})
	case errors.Is(err, service.ErrEmailDelivery):
		return c.JSON(http.StatusInternalServerError, responses.SendEmailError)
	default:
		c.Logger().Errorf("Error generating OTP: email:%s error: %v", body.Email, err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
}

// VerifyOtp godoc
// @Summary      Verify a login OTP
// @Description  Checks the submitted code and marks the email verified on match
// @Accept       json
// @Produce      json
// @Tags         Otp
// @Param        request  body      VerifyOtpRequestBody  true  "Email and code"
// @Success      200      {object}  echo.Map
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /api/verify-otp [post]
func (controller *OtpController) VerifyOtp(c echo.Context) error {
	var body VerifyOtpRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load verify otp request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	err := controller.svc.VerifyOtp(c.Request().Context(), body.Email, body.Otp)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"message": "OTP verified successfully"})
	case errors.Is(err, service.ErrInvalidOtp):
		return c.JSON(http.StatusBadRequest, responses.InvalidOtpError)
	default:
		c.Logger().Errorf("Error verifying OTP: email:%s error: %v", body.Email, err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
}
