package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// PaymentController : PaymentController struct
type PaymentController struct {
	svc *service.InvoicehubService
}

func NewPaymentController(svc *service.InvoicehubService) *PaymentController {
	return &PaymentController{svc: svc}
}

type ApplyPaymentRequestBody struct {
	AmountPaid    json.Number `json:"amountPaid" validate:"required"`
	WalletAddress string      `json:"walletAddress" validate:"required"`
}

// ApplyPayment godoc
// @Summary      Record a payment against an invoice
// @Description  Deducts the paid amount from the invoice's remaining due amount
// @Accept       json
// @Produce      json
// @Tags         Payment
// @Param        invoiceId  path      string                   true  "Invoice id"
// @Param        payment    body      ApplyPaymentRequestBody  true  "Payment"
// @Success      200        {object}  models.Invoice
// @Failure      400        {object}  responses.ErrorResponse
// @Failure      403        {object}  responses.ErrorResponse
// @Failure      404        {object}  responses.ErrorResponse
// @Failure      500        {object}  responses.ErrorResponse
// @Router       /invoices/{invoiceId}/payment [put]
func (controller *PaymentController) ApplyPayment(c echo.Context) error {
	invoiceId, err := strconv.ParseInt(c.Param("invoiceId"), 10, 64)
	if err != nil {
		c.Logger().Errorf("Invalid invoice id: %v", c.Param("invoiceId"))
		return c.JSON(http.StatusNotFound, responses.InvoiceNotFoundError)
	}

	var body ApplyPaymentRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load payment request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.ApplyPayment(c.Request().Context(), invoiceId, body.AmountPaid.String(), body.WalletAddress)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, invoice)
	case errors.Is(err, service.ErrInvoiceNotFound):
		return c.JSON(http.StatusNotFound, responses.InvoiceNotFoundError)
	case errors.Is(err, service.ErrWalletMismatch):
		return c.JSON(http.StatusForbidden, responses.WalletMismatchError)
	case errors.Is(err, service.ErrInvalidAmount):
		return c.JSON(http.StatusBadRequest, responses.InvalidAmountError)
	case errors.Is(err, service.ErrOverPayment):
		return c.JSON(http.StatusBadRequest, responses.OverPaymentError)
	default:
		c.Logger().Errorf("Error updating invoice payment: invoice_id:%v error: %v", invoiceId, err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
}
