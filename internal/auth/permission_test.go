package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"htmxtodo/internal/model"
)

func uintPtr(v uint) *uint { return &v }

func TestGate_Protect(t *testing.T) {
	tokens := newTestTokenService(t, "test-secret", 0)
	token, err := tokens.Issue("alice", 1)
	require.NoError(t, err)

	tests := []struct {
		name       string
		user       *model.User
		setupMock  func(*MockPermissionChecker)
		wantStatus int
		wantBody   string
	}{
		{
			name: "role grants action",
			user: &model.User{ID: 1, Username: "alice", RoleID: uintPtr(3)},
			setupMock: func(m *MockPermissionChecker) {
				m.On("HasPermission", mock.Anything, uint(3), "todo:delete").Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "deleted",
		},
		{
			name: "role lacks action",
			user: &model.User{ID: 1, Username: "alice", RoleID: uintPtr(4)},
			setupMock: func(m *MockPermissionChecker) {
				m.On("HasPermission", mock.Anything, uint(4), "todo:delete").Return(false, nil)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "Permission denied. User does not have the required permission (todo:delete).",
		},
		{
			name:       "user without role",
			user:       &model.User{ID: 1, Username: "alice"},
			setupMock:  func(m *MockPermissionChecker) {},
			wantStatus: http.StatusForbidden,
			wantBody:   "Permission_denied",
		},
		{
			name: "lookup failure",
			user: &model.User{ID: 1, Username: "alice", RoleID: uintPtr(3)},
			setupMock: func(m *MockPermissionChecker) {
				m.On("HasPermission", mock.Anything, uint(3), "todo:delete").Return(false, errors.New("db gone"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal_server_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserFinder)
			users.On("FindByID", mock.Anything, uint(1)).Return(tt.user, nil)
			perms := new(MockPermissionChecker)
			tt.setupMock(perms)

			gate := NewGate(NewAuthenticator(tokens, users, nil), perms)
			e := echo.New()
			e.DELETE("/todo", func(c echo.Context) error {
				return c.String(http.StatusOK, "deleted")
			}, gate.Protect("todo:delete")...)

			req := httptest.NewRequest(http.MethodDelete, "/todo", nil)
			req.Header.Set(echo.HeaderAuthorization, token)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "db gone")
			perms.AssertExpectations(t)
		})
	}
}

func TestGate_ProtectRejectsBeforePermissionLookup(t *testing.T) {
	perms := new(MockPermissionChecker)
	gate := NewGate(NewAuthenticator(newTestTokenService(t, "s", 0), new(MockUserFinder), nil), perms)

	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, gate.Protect("todo:read")...)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	perms.AssertNotCalled(t, "HasPermission", mock.Anything, mock.Anything, mock.Anything)
}

func TestGate_RequireWithoutPrincipal(t *testing.T) {
	perms := new(MockPermissionChecker)
	gate := NewGate(nil, perms)

	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, gate.Require("todo:read"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	perms.AssertNotCalled(t, "HasPermission", mock.Anything, mock.Anything, mock.Anything)
}
