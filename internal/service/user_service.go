package service

import (
	"context"
	"strings"

	"htmxtodo/internal/model"
	"htmxtodo/internal/repository"
)

const (
	// DefaultUserPageSize is used when no page size is requested.
	DefaultUserPageSize = 10
	// MaxUserPageSize caps the page size a client may request.
	MaxUserPageSize = 100
)

// UserService exposes user listing.
type UserService interface {
	ListUsers(ctx context.Context, page, pageSize int, search string) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// ListUsers returns one page of users in insertion order. A non-empty search
// filters by username substring. Pages past the end are empty, not errors.
func (s *userService) ListUsers(ctx context.Context, page, pageSize int, search string) ([]model.User, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultUserPageSize
	}
	if pageSize > MaxUserPageSize {
		pageSize = MaxUserPageSize
	}
	offset, ok := pageOffset(page, pageSize)
	if !ok {
		return []model.User{}, nil
	}

	if search = strings.TrimSpace(search); search != "" {
		return s.repo.Search(ctx, search, offset, pageSize)
	}
	return s.repo.List(ctx, offset, pageSize)
}
