package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"htmxtodo/internal/auth"
	"htmxtodo/internal/config"
	"htmxtodo/internal/handler"
	"htmxtodo/internal/model"
)

// Handlers groups everything Register wires.
type Handlers struct {
	Authn *auth.Authenticator
	Gate  *auth.Gate
	Page  *handler.PageHandler
	Auth  *handler.AuthHandler
	User  *handler.UserHandler
	Todo  *handler.TodoHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.StaticDir != "" {
		e.Static("/static", cfg.StaticDir)
	}

	// Pages
	e.GET("/", h.Page.Home)
	e.GET("/todos", h.Page.Todos)

	// Users
	credentials := rateLimit(cfg.RateLimitRPS)
	e.GET("/user", h.User.ListUsers)
	e.POST("/create-user", h.Auth.Signup, credentials...)
	e.POST("/signin", h.Auth.Signin, credentials...)
	e.GET("/me", h.Auth.Me, h.Authn.Middleware())
	e.POST("/signout", h.Auth.Signout, h.Authn.Middleware())

	// Todo fragments
	e.GET("/get/todo", h.Todo.NewForm, h.Authn.Middleware())
	e.GET("/todos-data", h.Todo.ListPage, h.Gate.Protect(model.ActionTodoRead)...)
	e.GET("/get-todo/:id", h.Todo.EditForm, h.Gate.Protect(model.ActionTodoRead)...)
	e.POST("/search/todos-data", h.Todo.Search, h.Gate.Protect(model.ActionTodoRead)...)
	e.POST("/add-todos", h.Todo.Create, h.Gate.Protect(model.ActionTodoCreate)...)
	e.POST("/edit-todos", h.Todo.Update, h.Gate.Protect(model.ActionTodoUpdate)...)
	e.DELETE("/remove-todos/:id", h.Todo.Delete, h.Gate.Protect(model.ActionTodoDelete)...)
}

// rateLimit limits requests per client IP. A non-positive rps disables it.
func rateLimit(rps int) []echo.MiddlewareFunc {
	if rps <= 0 {
		return nil
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     rps * 2,
		ExpiresIn: 3 * time.Minute,
	})
	return []echo.MiddlewareFunc{middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests.")
		},
	})}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
