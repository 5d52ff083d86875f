package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeRendersBranding(t *testing.T) {
	svc := &service.InvoicehubService{
		Config: &service.Config{
			Branding: service.BrandingConfig{Title: "InvoiceHub", Desc: "Crypto invoice management"},
		},
	}
	controller := NewHomeController(svc, "<h1>{{.Branding.Title}}</h1><p>{{.Branding.Desc}}</p>")

	e := echo.New()
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, controller.Home(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1>InvoiceHub</h1>")
		assert.Contains(t, rec.Body.String(), "Crypto invoice management")
	}
}
