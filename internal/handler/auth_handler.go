package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"htmxtodo/internal/auth"
	apperrors "htmxtodo/internal/errors"
	"htmxtodo/internal/service"
)

// SigninRedirectPath is where a successful signin lands.
const SigninRedirectPath = "/todos"

// TokenRevoker invalidates the token of an authenticated caller.
type TokenRevoker interface {
	Revoke(ctx context.Context, p *auth.Principal) error
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	revoker     TokenRevoker
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, revoker TokenRevoker) *AuthHandler {
	return &AuthHandler{authService: authService, revoker: revoker}
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=191"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
	RoleID   *uint  `json:"roleId" form:"roleId"`
}

// SigninRequest represents a user login request.
type SigninRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// SignupResponse represents a successful signup.
type SignupResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// MessageResponse carries a human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Signup godoc
// @Summary Create a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} SignupResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /create-user [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	user, token, err := h.authService.Signup(c.Request().Context(), req.Username, req.Password, req.RoleID)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusCreated, SignupResponse{
		Message: "User created successfully",
		User:    NewUserResponse(*user),
		Token:   token,
	})
}

// Signin godoc
// @Summary Sign in
// @Description On success the token is returned in the Authorization header and in the redirect location.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Param request body SigninRequest true "Credentials"
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	_, token, err := h.authService.Signin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return domainError(c, err)
	}

	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+token)
	return c.Redirect(http.StatusFound, SigninRedirectPath+"?token="+url.QueryEscape(token))
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} MessageResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "No token provided.")
	}
	return c.JSON(http.StatusOK, NewUserResponse(p.User()))
}

// Signout godoc
// @Summary Revoke the presented token
// @Tags auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "No token provided.")
	}
	if err := h.revoker.Revoke(c.Request().Context(), p); err != nil {
		if errors.Is(err, auth.ErrRevocationDisabled) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, apperrors.ErrorResponse{
				ErrorType: "REVOCATION_DISABLED",
				Message:   "Signout is not available.",
			})
		}
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Signed out."})
}
