package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"htmxtodo/internal/auth"
	apperrors "htmxtodo/internal/errors"
	"htmxtodo/internal/service"
	"htmxtodo/internal/view"
)

const emptySearchResult = "<div></div>"

// TodoHandler serves the todo fragments.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoRequest is the new-todo form.
type CreateTodoRequest struct {
	Title       string `form:"title" json:"title" validate:"required,max=255"`
	Description string `form:"description" json:"description"`
}

// UpdateTodoRequest is the edit-todo form.
type UpdateTodoRequest struct {
	ID          uint   `form:"id" json:"id" validate:"required"`
	Title       string `form:"title" json:"title" validate:"required,max=255"`
	Description string `form:"description" json:"description" validate:"required"`
}

// NewForm returns the empty todo form.
func (h *TodoHandler) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, view.TodoForm, nil)
}

// ListPage returns one page of rows. The last row of a full page loads the next one.
func (h *TodoHandler) ListPage(c echo.Context) error {
	page := queryInt(c, "page", 1)
	todos, err := h.todoService.ListPage(c.Request().Context(), page)
	if err != nil {
		c.Logger().Errorf("list todos page %d: %v", page, err)
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}

	data := view.TodoRowsData{Todos: todos}
	if len(todos) == service.TodoPageSize && page < math.MaxInt {
		data.NextPage = page + 1
	}
	return c.Render(http.StatusOK, view.TodoRows, data)
}

// EditForm returns the edit form for one todo.
func (h *TodoHandler) EditForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.String(http.StatusBadRequest, "Invalid todo ID")
	}
	todo, err := h.todoService.Get(c.Request().Context(), id)
	if err != nil {
		return h.fragmentError(c, err, "Todo not found")
	}
	return c.Render(http.StatusOK, view.TodoEdit, todo)
}

// Search returns rows whose title contains the submitted term.
func (h *TodoHandler) Search(c echo.Context) error {
	todos, err := h.todoService.Search(c.Request().Context(), c.FormValue("search"))
	if err != nil {
		c.Logger().Errorf("search todos: %v", err)
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}
	if len(todos) == 0 {
		return c.HTML(http.StatusOK, emptySearchResult)
	}
	return c.Render(http.StatusOK, view.TodoRows, view.TodoRowsData{Todos: todos})
}

// Create adds a todo owned by the caller.
func (h *TodoHandler) Create(c echo.Context) error {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "No token provided.")
	}
	var req CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Title is required.")
	}

	if _, err := h.todoService.Create(c.Request().Context(), req.Title, req.Description, p.UserID()); err != nil {
		return domainError(c, err)
	}
	return mutated(c)
}

// Update edits title and description of a todo.
func (h *TodoHandler) Update(c echo.Context) error {
	var req UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Both title and description are required.")
	}

	if err := h.todoService.Update(c.Request().Context(), req.ID, req.Title, req.Description); err != nil {
		return domainError(c, err)
	}
	return mutated(c)
}

// Delete removes a todo. The empty body lets htmx drop the row.
func (h *TodoHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.String(http.StatusBadRequest, "Invalid todo ID")
	}
	if err := h.todoService.Delete(c.Request().Context(), id); err != nil {
		return h.fragmentError(c, err, "Nothing here to delete")
	}
	return c.HTML(http.StatusOK, "")
}

func (h *TodoHandler) fragmentError(c echo.Context, err error, notFound string) error {
	if errors.Is(err, apperrors.ErrTodoNotFound) {
		return c.String(http.StatusNotFound, notFound)
	}
	c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	return c.String(http.StatusInternalServerError, "Internal Server Error")
}

// mutated finishes a successful create or update. htmx reloads the current
// page; a plain form post is sent back home.
func mutated(c echo.Context) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Refresh", "true")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
