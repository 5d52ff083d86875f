package integration_tests

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/invoicehub/invoicehub.go/controllers"
	"github.com/invoicehub/invoicehub.go/lib"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AdminLoginTestSuite struct {
	TestSuite
	Service *service.InvoicehubService
}

func (suite *AdminLoginTestSuite) SetupSuite() {
	svc, err := InvoiceHubTestServiceInit(&fakeNotifier{})
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.Service = svc
	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	suite.echo = e
	suite.echo.POST("/api/admin-login", controllers.NewAdminController(suite.Service).Login)
}

func (suite *AdminLoginTestSuite) TestLoginWithValidCredentials() {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(echo.Map{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	}))
	rec := suite.request(http.MethodPost, "/api/admin-login", &buf)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	response := map[string]string{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(suite.T(), "Admin login successful", response["message"])
}

func (suite *AdminLoginTestSuite) TestLoginWithInvalidCredentials() {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(echo.Map{
		"email":    testAdminEmail,
		"password": "wrong-password",
	}))
	rec := suite.request(http.MethodPost, "/api/admin-login", &buf)

	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *AdminLoginTestSuite) TestLoginWithMissingFields() {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(echo.Map{
		"email": testAdminEmail,
	}))
	rec := suite.request(http.MethodPost, "/api/admin-login", &buf)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func TestAdminLoginSuite(t *testing.T) {
	suite.Run(t, new(AdminLoginTestSuite))
}
