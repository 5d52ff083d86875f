package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// InvoiceController : InvoiceController struct
type InvoiceController struct {
	svc *service.InvoicehubService
}

func NewInvoiceController(svc *service.InvoicehubService) *InvoiceController {
	return &InvoiceController{svc: svc}
}

type CreateInvoiceRequestBody struct {
	RecipientAddress string    `json:"recipientAddress" validate:"required"`
	CompanyName      string    `json:"companyName" validate:"required"`
	Cryptocurrency   string    `json:"cryptocurrency" validate:"required"`
	DueDate          time.Time `json:"dueDate" validate:"required"`
	Description      string    `json:"description" validate:"required"`
	CompanyEmail     string    `json:"companyEmail" validate:"required,email"`
	InvoiceCategory  string    `json:"invoiceCategory" validate:"required"`
	PaymentDue       string    `json:"paymentDue" validate:"required"`
}

// CreateInvoice godoc
// @Summary      Create a new invoice
// @Description  Stores the invoice and emails a creation notice to the company
// @Accept       json
// @Produce      json
// @Tags         Invoice
// @Param        invoice  body      CreateInvoiceRequestBody  true  "Invoice"
// @Success      201      {object}  models.Invoice
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /api/invoices [post]
func (controller *InvoiceController) CreateInvoice(c echo.Context) error {
	var body CreateInvoiceRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice := &models.Invoice{
		RecipientAddress: body.RecipientAddress,
		CompanyName:      body.CompanyName,
		Cryptocurrency:   body.Cryptocurrency,
		DueDate:          body.DueDate,
		Description:      body.Description,
		CompanyEmail:     body.CompanyEmail,
		InvoiceCategory:  body.InvoiceCategory,
		PaymentDue:       body.PaymentDue,
	}

	err := controller.svc.CreateInvoice(c.Request().Context(), invoice)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, invoice)
	case errors.Is(err, service.ErrInvalidAmount):
		return c.JSON(http.StatusBadRequest, responses.InvalidAmountError)
	case errors.Is(err, service.ErrEmailDelivery):
		// the invoice row is already committed at this point
		return c.JSON(http.StatusInternalServerError, responses.SendEmailError)
	default:
		c.Logger().Errorf("Error creating invoice: %v", err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
}

// GetInvoices godoc
// @Summary      Retrieve all invoices
// @Description  Returns every stored invoice, unfiltered
// @Produce      json
// @Tags         Invoice
// @Success      200  {object}  []models.Invoice
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/invoices [get]
func (controller *InvoiceController) GetInvoices(c echo.Context) error {
	return controller.listInvoices(c, service.InvoiceFilter{})
}

// GetInvoicesForRecipient godoc
// @Summary      Retrieve invoices for a recipient
// @Description  Returns the invoices addressed to a wallet address
// @Produce      json
// @Tags         Invoice
// @Param        recipientAddress  path  string  true  "Recipient wallet address"
// @Success      200  {object}  []models.Invoice
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /user/{recipientAddress}/invoices [get]
func (controller *InvoiceController) GetInvoicesForRecipient(c echo.Context) error {
	return controller.listInvoices(c, service.InvoiceFilter{
		RecipientAddress: c.Param("recipientAddress"),
	})
}

// GetPendingInvoices godoc
// @Summary      Retrieve pending invoices
// @Description  Returns the invoices that still have an amount due
// @Produce      json
// @Tags         Invoice
// @Success      200  {object}  []models.Invoice
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /invoices/pending [get]
func (controller *InvoiceController) GetPendingInvoices(c echo.Context) error {
	pending := true
	return controller.listInvoices(c, service.InvoiceFilter{IsPending: &pending})
}

// GetCompletedInvoices godoc
// @Summary      Retrieve completed invoices
// @Description  Returns the invoices that are fully paid
// @Produce      json
// @Tags         Invoice
// @Success      200  {object}  []models.Invoice
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /invoices/completed [get]
func (controller *InvoiceController) GetCompletedInvoices(c echo.Context) error {
	pending := false
	return controller.listInvoices(c, service.InvoiceFilter{IsPending: &pending})
}

func (controller *InvoiceController) listInvoices(c echo.Context, filter service.InvoiceFilter) error {
	invoices, err := controller.svc.Invoices(c.Request().Context(), filter)
	if err != nil {
		c.Logger().Errorf("Error fetching invoices: %v", err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, invoices)
}
