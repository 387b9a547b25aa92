package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "htmxtodo/internal/errors"
	"htmxtodo/internal/service"
)

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListUsers godoc
// @Summary List or search users
// @Tags users
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param page_size query int false "Page size" default(10)
// @Param q query string false "Username substring"
// @Success 200 {array} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", service.DefaultUserPageSize)

	users, err := h.svc.ListUsers(c.Request().Context(), page, pageSize, c.QueryParam("q"))
	if err != nil {
		c.Logger().Errorf("list users: %v", err)
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			ErrorType: "USER_LIST_FAILED",
			Message:   "Could not list users.",
		})
	}
	return c.JSON(http.StatusOK, NewUserResponses(users))
}

// queryInt reads a positive integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}
