package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "htmxtodo/internal/errors"
	"htmxtodo/internal/model"
)

// TodoRepository defines todo persistence operations.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	Update(ctx context.Context, id uint, title, description string) error
	FindByID(ctx context.Context, id uint) (*model.Todo, error)
	List(ctx context.Context, offset, limit int) ([]model.Todo, error)
	SearchByTitle(ctx context.Context, term string) ([]model.Todo, error)
	Delete(ctx context.Context, id uint) error
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new todo repository.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

// Create creates a new todo.
func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// Update replaces title and description of an existing todo.
func (r *todoRepository) Update(ctx context.Context, id uint, title, description string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var todo model.Todo
		if err := tx.Select("id").First(&todo, id).Error; err != nil {
			return mapTodoNotFound(err)
		}
		return tx.Model(&todo).Updates(map[string]interface{}{
			"title":       title,
			"description": description,
		}).Error
	})
}

// FindByID finds a todo by ID.
func (r *todoRepository) FindByID(ctx context.Context, id uint) (*model.Todo, error) {
	var todo model.Todo
	if err := r.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		return nil, mapTodoNotFound(err)
	}
	return &todo, nil
}

// List returns a page of todos, newest first.
func (r *todoRepository) List(ctx context.Context, offset, limit int) ([]model.Todo, error) {
	todos := []model.Todo{}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// SearchByTitle returns todos whose title contains term, ignoring case, newest first.
func (r *todoRepository) SearchByTitle(ctx context.Context, term string) ([]model.Todo, error) {
	todos := []model.Todo{}
	if err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? ESCAPE '"+likeEscape+"'", containsPattern(term)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// Delete removes a todo by ID.
func (r *todoRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Todo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTodoNotFound
	}
	return nil
}

func mapTodoNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTodoNotFound
	}
	return err
}
