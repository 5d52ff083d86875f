package controllers

import (
	"net/http"

	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// AdminController : AdminController struct
type AdminController struct {
	svc *service.InvoicehubService
}

func NewAdminController(svc *service.InvoicehubService) *AdminController {
	return &AdminController{svc: svc}
}

type AdminLoginRequestBody struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary      Admin login
// @Description  Checks the submitted credentials against the configured admin pair
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        credentials  body      AdminLoginRequestBody  true  "Credentials"
// @Success      200          {object}  echo.Map
// @Failure      401          {object}  responses.ErrorResponse
// @Router       /api/admin-login [post]
func (controller *AdminController) Login(c echo.Context) error {
	var body AdminLoginRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load admin login request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.AdminGate.Authenticate(body.Email, body.Password); err != nil {
		c.Logger().Infof("Invalid admin credentials: email:%s", body.Email)
		return c.JSON(http.StatusUnauthorized, responses.InvalidCredentialsError)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Admin login successful"})
}
