package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "htmxtodo/docs" // swagger docs

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"htmxtodo/internal/auth"
	"htmxtodo/internal/cache"
	"htmxtodo/internal/config"
	"htmxtodo/internal/db"
	"htmxtodo/internal/handler"
	"htmxtodo/internal/repository"
	"htmxtodo/internal/router"
	"htmxtodo/internal/service"
	"htmxtodo/internal/view"
)

// @title Todo API
// @version 1.0
// @description Todo list served as htmx fragments, with token authentication and role permissions.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description The raw token returned by signup or signin, without a "Bearer" prefix.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Printf("Warning: reset database: %v", err)
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	// Revocation needs Redis. Without it signout is disabled.
	var revocations auth.RevocationStore
	if cfg.RedisAddr != "" {
		cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer cacheClient.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := cacheClient.Ping(pingCtx); err != nil {
			log.Printf("Warning: redis ping: %v", err)
		}
		cancel()
		revocations = auth.NewRedisRevocationStore(cacheClient)
	}

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	permRepo := repository.NewPermissionRepository(gormDB)
	todoRepo := repository.NewTodoRepository(gormDB)

	// Initialize auth components
	authn := auth.NewAuthenticator(tokens, userRepo, revocations)
	gate := auth.NewGate(authn, permRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, permRepo, auth.NewPasswordHasher(), tokens)
	userService := service.NewUserService(userRepo)
	todoService := service.NewTodoService(todoRepo)

	router.Register(e, cfg, router.Handlers{
		Authn: authn,
		Gate:  gate,
		Page:  handler.NewPageHandler(tokens),
		Auth:  handler.NewAuthHandler(authService, authn),
		User:  handler.NewUserHandler(userService),
		Todo:  handler.NewTodoHandler(todoService),
	})

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
