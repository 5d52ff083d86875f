package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"testing"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/invoicehub/invoicehub.go/controllers"
	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/invoicehub/invoicehub.go/lib"
	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OtpTestSuite struct {
	TestSuite
	Service  *service.InvoicehubService
	Notifier *fakeNotifier
}

func (suite *OtpTestSuite) SetupSuite() {
	suite.Notifier = &fakeNotifier{}
	svc, err := InvoiceHubTestServiceInit(suite.Notifier)
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.Service = svc
	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	suite.echo = e
	otpCtrl := controllers.NewOtpController(suite.Service)
	suite.echo.POST("/api/generate-otp", otpCtrl.GenerateOtp)
	suite.echo.POST("/api/verify-otp", otpCtrl.VerifyOtp)
}

func (suite *OtpTestSuite) TearDownTest() {
	suite.Notifier.Err = nil
	suite.Notifier.sent = nil
	err := clearTable(suite.Service, "users")
	if err != nil {
		fmt.Printf("Tear down test error %v\n", err.Error())
		return
	}
}

func (suite *OtpTestSuite) generateOtp(email string) *models.User {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(echo.Map{"email": email}))
	rec := suite.request(http.MethodPost, "/api/generate-otp", &buf)
	suite.Require().Equal(http.StatusOK, rec.Code)
	return suite.findUser(email)
}

func (suite *OtpTestSuite) findUser(email string) *models.User {
	var user models.User
	err := suite.Service.DB.NewSelect().Model(&user).Where("email = ?", email).Limit(1).Scan(context.Background())
	suite.Require().NoError(err)
	return &user
}

func (suite *OtpTestSuite) verifyOtp(email, otp string) int {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(echo.Map{"email": email, "otp": otp}))
	rec := suite.request(http.MethodPost, "/api/verify-otp", &buf)
	return rec.Code
}

func (suite *OtpTestSuite) TestGenerateOtpCreatesUserAndSendsMail() {
	user := suite.generateOtp("a@b.com")

	suite.Require().True(user.Otp.Valid)
	assert.Len(suite.T(), user.Otp.String, 6)
	for _, ch := range user.Otp.String {
		assert.True(suite.T(), unicode.IsDigit(ch))
	}
	assert.False(suite.T(), user.EmailVerified)

	sent := suite.Notifier.Sent()
	suite.Require().Len(sent, 1)
	assert.Equal(suite.T(), "a@b.com", sent[0].To)
	assert.Contains(suite.T(), sent[0].Body, user.Otp.String)
}

func (suite *OtpTestSuite) TestRegenerateReplacesOtp() {
	first := suite.generateOtp("a@b.com")
	second := suite.generateOtp("a@b.com")

	assert.Equal(suite.T(), first.ID, second.ID)
	suite.Require().True(second.Otp.Valid)
	// the conflict update stamps updated_at like any other update
	assert.False(suite.T(), second.UpdatedAt.IsZero())

	// the old code must no longer verify unless it happens to equal the new one
	if first.Otp.String != second.Otp.String {
		assert.Equal(suite.T(), http.StatusBadRequest, suite.verifyOtp("a@b.com", first.Otp.String))
	}
	assert.Equal(suite.T(), http.StatusOK, suite.verifyOtp("a@b.com", second.Otp.String))
}

func (suite *OtpTestSuite) TestVerifyWithWrongCode() {
	user := suite.generateOtp("a@b.com")

	wrong := "000000"
	if user.Otp.String == wrong {
		wrong = "999999"
	}
	assert.Equal(suite.T(), http.StatusBadRequest, suite.verifyOtp("a@b.com", wrong))

	stored := suite.findUser("a@b.com")
	assert.Equal(suite.T(), user.Otp.String, stored.Otp.String)
	assert.False(suite.T(), stored.EmailVerified)
}

func (suite *OtpTestSuite) TestVerifySucceedsExactlyOnce() {
	user := suite.generateOtp("a@b.com")

	assert.Equal(suite.T(), http.StatusOK, suite.verifyOtp("a@b.com", user.Otp.String))

	stored := suite.findUser("a@b.com")
	assert.False(suite.T(), stored.Otp.Valid)
	assert.True(suite.T(), stored.EmailVerified)

	// the code was cleared, replaying it must fail
	assert.Equal(suite.T(), http.StatusBadRequest, suite.verifyOtp("a@b.com", user.Otp.String))
}

func (suite *OtpTestSuite) TestVerifyUnknownEmail() {
	assert.Equal(suite.T(), http.StatusBadRequest, suite.verifyOtp("nobody@b.com", "123456"))
}

func (suite *OtpTestSuite) TestGenerateOtpKeepsCodeOnSendFailure() {
	suite.Notifier.Err = errors.New("smtp unreachable")

	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(echo.Map{"email": "a@b.com"}))
	rec := suite.request(http.MethodPost, "/api/generate-otp", &buf)
	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)

	// the code is persisted even though the send failed
	stored := suite.findUser("a@b.com")
	assert.True(suite.T(), stored.Otp.Valid)
}

func TestOtpSuite(t *testing.T) {
	suite.Run(t, new(OtpTestSuite))
}
