package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "htmxtodo/internal/errors"
	"htmxtodo/internal/model"
)

// UserResponse is the public shape of a user. It has no password hash field.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	RoleID    *uint     `json:"roleId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse copies the public fields of user.
func NewUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		RoleID:    user.RoleID,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserResponses maps a slice of users, never returning nil.
func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// domainError converts err into an echo error, logging anything that maps to a 500.
func domainError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= 500 {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		ErrorType: "INVALID_REQUEST",
		Message:   msg,
	})
}
