package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skar710/CID/internal/services"
)

// AuthController serves the two unauthenticated routes, /register and
// /login.
type AuthController struct {
	svc services.AuthService
}

// NewAuthController wires the auth service into its controller.
func NewAuthController(svc services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// Register attaches the auth routes. These sit outside the token gate.
func (ct *AuthController) Register(g *echo.Group) {
	g.POST("/register", ct.RegisterUser)
	g.POST("/login", ct.Login)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser handles POST /register.
func (ct *AuthController) RegisterUser(c echo.Context) error {
	req := new(credentials)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	err := ct.svc.Register(c.Request().Context(), req.Email, req.Password)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, map[string]string{"message": "User created successfully"})
	case errors.Is(err, services.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"message": "Email already registered"})
	case errors.Is(err, services.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
}

// Login handles POST /login and returns {"token": ...} on success.
func (ct *AuthController) Login(c echo.Context) error {
	req := new(credentials)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	token, err := ct.svc.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"token": token})
	case errors.Is(err, services.ErrNotFound):
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "User not found"})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid password"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
}
