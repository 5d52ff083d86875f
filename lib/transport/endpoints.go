package transport

import (
	_ "embed"

	"github.com/invoicehub/invoicehub.go/controllers"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

//go:embed templates/index.html
var indexHtml string

func RegisterEndpoints(svc *service.InvoicehubService, e *echo.Echo, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	adminCtrl := controllers.NewAdminController(svc)
	invoiceCtrl := controllers.NewInvoiceController(svc)
	paymentCtrl := controllers.NewPaymentController(svc)
	otpCtrl := controllers.NewOtpController(svc)

	e.POST("/api/admin-login", adminCtrl.Login, logMw)

	e.POST("/api/invoices", invoiceCtrl.CreateInvoice, strictRateLimitMiddleware, logMw)
	e.GET("/api/invoices", invoiceCtrl.GetInvoices, logMw)
	e.GET("/user/:recipientAddress/invoices", invoiceCtrl.GetInvoicesForRecipient, logMw)
	e.GET("/invoices/pending", invoiceCtrl.GetPendingInvoices, logMw)
	e.GET("/invoices/completed", invoiceCtrl.GetCompletedInvoices, logMw)
	e.PUT("/invoices/:invoiceId/payment", paymentCtrl.ApplyPayment, strictRateLimitMiddleware, logMw)

	e.POST("/api/generate-otp", otpCtrl.GenerateOtp, strictRateLimitMiddleware, logMw)
	e.POST("/api/verify-otp", otpCtrl.VerifyOtp, logMw)

	// Index page, no Authorization required
	homeController := controllers.NewHomeController(svc, indexHtml)
	e.GET("/", homeController.Home)
}
