package service

import (
	"context"
	"fmt"
	"strings"

	"htmxtodo/internal/model"
	"htmxtodo/internal/repository"
)

// TodoPageSize is the number of todos per infinite-scroll page.
const TodoPageSize = 8

// TodoService handles todo operations.
type TodoService interface {
	ListPage(ctx context.Context, page int) ([]model.Todo, error)
	Get(ctx context.Context, id uint) (*model.Todo, error)
	Search(ctx context.Context, term string) ([]model.Todo, error)
	Create(ctx context.Context, title, description string, ownerID uint) (*model.Todo, error)
	Update(ctx context.Context, id uint, title, description string) error
	Delete(ctx context.Context, id uint) error
}

type todoService struct {
	repo repository.TodoRepository
}

// NewTodoService creates a new todo service.
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

// ListPage returns the given 1-based page, newest first.
func (s *todoService) ListPage(ctx context.Context, page int) ([]model.Todo, error) {
	if page < 1 {
		page = 1
	}
	offset, ok := pageOffset(page, TodoPageSize)
	if !ok {
		return []model.Todo{}, nil
	}
	todos, err := s.repo.List(ctx, offset, TodoPageSize)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *todoService) Get(ctx context.Context, id uint) (*model.Todo, error) {
	return s.repo.FindByID(ctx, id)
}

// Search matches titles case-insensitively. An empty term matches nothing.
func (s *todoService) Search(ctx context.Context, term string) ([]model.Todo, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, nil
	}
	todos, err := s.repo.SearchByTitle(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search todos: %w", err)
	}
	return todos, nil
}

// Create stores a todo owned by ownerID.
func (s *todoService) Create(ctx context.Context, title, description string, ownerID uint) (*model.Todo, error) {
	todo := &model.Todo{
		Title:       title,
		Description: description,
		UserID:      &ownerID,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) Update(ctx context.Context, id uint, title, description string) error {
	return s.repo.Update(ctx, id, title, description)
}

func (s *todoService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
