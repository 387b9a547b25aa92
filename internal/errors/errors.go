package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrDuplicateUser is returned when the username is already taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a token cannot be verified or resolved.
	ErrInvalidToken = errors.New("token invalid")
	// ErrPermissionDenied is returned when the caller's role lacks an action.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrPasswordTooLong is returned when a password exceeds bcrypt's 72 byte limit.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
	// ErrRoleNotFound is returned when signup references an unknown role.
	ErrRoleNotFound = errors.New("role not found")
	// ErrTodoNotFound is returned when a todo does not exist.
	ErrTodoNotFound = errors.New("todo not found")
	// ErrInternal marks unexpected infrastructure failures.
	ErrInternal = errors.New("internal server error")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		ErrorType: e.Code,
		Message:   e.Message,
	}
}

// DeniedError names the action a role lacks. It matches ErrPermissionDenied.
type DeniedError struct {
	Action string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("%v: %s", ErrPermissionDenied, e.Action)
}

// Is reports whether target is ErrPermissionDenied.
func (e *DeniedError) Is(target error) bool {
	return target == ErrPermissionDenied
}

// PermissionDenied returns the error for a role lacking action.
func PermissionDenied(action string) error {
	return &DeniedError{Action: action}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// 500 without leaking their text.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateUser):
		return NewHTTPError(http.StatusBadRequest, "User already exists", "User_already_exists")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusBadRequest, "User not found.", "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, "Invalid credentials.", "INVALID_CREDENTIALS")
	case errors.Is(err, ErrPasswordTooLong):
		return NewHTTPError(http.StatusBadRequest, "Password must be at most 72 bytes.", "INVALID_REQUEST")
	case errors.Is(err, ErrRoleNotFound):
		return NewHTTPError(http.StatusBadRequest, "Role not found.", "ROLE_NOT_FOUND")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, "token invalid.", "Invalid_token")
	case errors.Is(err, ErrPermissionDenied):
		msg := "Permission denied."
		var denied *DeniedError
		if errors.As(err, &denied) {
			msg = fmt.Sprintf("Permission denied. User does not have the required permission (%s).", denied.Action)
		}
		return NewHTTPError(http.StatusForbidden, msg, "Permission_denied")
	case errors.Is(err, ErrTodoNotFound):
		return NewHTTPError(http.StatusNotFound, "Todo not found", "TODO_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error", "Internal_server_error")
	}
}
