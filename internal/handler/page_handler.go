package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"htmxtodo/internal/auth"
	"htmxtodo/internal/view"
)

// PageHandler serves full pages.
type PageHandler struct {
	tokens *auth.TokenService
}

// NewPageHandler creates a page handler.
func NewPageHandler(tokens *auth.TokenService) *PageHandler {
	return &PageHandler{tokens: tokens}
}

// Home renders the signin page.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, view.Layout, view.LayoutData{})
}

// Todos renders the todo page for the token in the query string. An invalid
// token is sent back to the signin page.
func (h *PageHandler) Todos(c echo.Context) error {
	token := c.QueryParam("token")
	if _, err := h.tokens.Verify(token); err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	data, err := view.NewLayoutData(token)
	if err != nil {
		return domainError(c, err)
	}
	return c.Render(http.StatusOK, view.Layout, data)
}
