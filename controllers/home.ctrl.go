package controllers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// HomeController : HomeController struct
type HomeController struct {
	svc  *service.InvoicehubService
	tmpl *template.Template
}

func NewHomeController(svc *service.InvoicehubService, html string) *HomeController {
	return &HomeController{
		svc:  svc,
		tmpl: template.Must(template.New("index").Parse(html)),
	}
}

type HomepageContent struct {
	Branding service.BrandingConfig
}

// Home : serves the invoice creation form
func (controller *HomeController) Home(c echo.Context) error {
	content := HomepageContent{
		Branding: controller.svc.Config.Branding,
	}
	var buf bytes.Buffer
	if err := controller.tmpl.Execute(&buf, content); err != nil {
		return err
	}
	return c.HTML(http.StatusOK, buf.String())
}
