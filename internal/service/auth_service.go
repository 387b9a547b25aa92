package service

import (
	"context"
	"errors"
	"fmt"

	"htmxtodo/internal/auth"
	apperrors "htmxtodo/internal/errors"
	"htmxtodo/internal/model"
	"htmxtodo/internal/repository"
)

// AuthService handles signup and signin.
type AuthService interface {
	Signup(ctx context.Context, username, password string, roleID *uint) (user *model.User, token string, err error)
	Signin(ctx context.Context, username, password string) (user *model.User, token string, err error)
}

type authService struct {
	userRepo repository.UserRepository
	permRepo repository.PermissionRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	permRepo repository.PermissionRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenService,
) AuthService {
	return &authService{
		userRepo: userRepo,
		permRepo: permRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Signup creates a user with a hashed password and issues a token. A taken
// username is reported by the insert itself, not by a prior lookup.
func (s *authService) Signup(ctx context.Context, username, password string, roleID *uint) (*model.User, string, error) {
	if roleID != nil {
		exists, err := s.permRepo.RoleExists(ctx, *roleID)
		if err != nil {
			return nil, "", fmt.Errorf("check role: %w", err)
		}
		if !exists {
			return nil, "", apperrors.ErrRoleNotFound
		}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		RoleID:       roleID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUser) {
			return nil, "", apperrors.ErrDuplicateUser
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.Username, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Signin checks credentials and issues a token.
func (s *authService) Signin(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
