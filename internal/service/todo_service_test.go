package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "htmxtodo/internal/errors"
	"htmxtodo/internal/model"
)

func TestTodoService_ListPage(t *testing.T) {
	repo := new(MockTodoRepository)
	repo.On("List", mock.Anything, 8, TodoPageSize).Return([]model.Todo{{ID: 1}}, nil)
	repo.On("List", mock.Anything, 0, TodoPageSize).Return([]model.Todo{}, nil)
	svc := NewTodoService(repo)

	todos, err := svc.ListPage(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, todos, 1)

	_, err = svc.ListPage(context.Background(), -1)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestTodoService_ListPagePastOverflow(t *testing.T) {
	repo := new(MockTodoRepository)

	todos, err := NewTodoService(repo).ListPage(context.Background(), math.MaxInt)

	require.NoError(t, err)
	assert.Empty(t, todos)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestTodoService_ListPageError(t *testing.T) {
	repo := new(MockTodoRepository)
	repo.On("List", mock.Anything, 0, TodoPageSize).Return(nil, errors.New("boom"))

	_, err := NewTodoService(repo).ListPage(context.Background(), 1)

	assert.EqualError(t, err, "list todos: boom")
}

func TestTodoService_Search(t *testing.T) {
	repo := new(MockTodoRepository)
	repo.On("SearchByTitle", mock.Anything, "milk").Return([]model.Todo{{ID: 3, Title: "Milk"}}, nil)
	svc := NewTodoService(repo)

	found, err := svc.Search(context.Background(), "  MiLk ")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	empty, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	repo.AssertExpectations(t)
}

func TestTodoService_CreateSetsOwner(t *testing.T) {
	repo := new(MockTodoRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(todo *model.Todo) bool {
		return todo.Title == "Buy milk" && todo.UserID != nil && *todo.UserID == 7
	})).Return(nil)

	todo, err := NewTodoService(repo).Create(context.Background(), "Buy milk", "", 7)

	require.NoError(t, err)
	assert.Equal(t, "Buy milk", todo.Title)
	repo.AssertExpectations(t)
}

func TestTodoService_PassThroughErrors(t *testing.T) {
	repo := new(MockTodoRepository)
	repo.On("FindByID", mock.Anything, uint(4)).Return(nil, apperrors.ErrTodoNotFound)
	repo.On("Update", mock.Anything, uint(4), "t", "d").Return(apperrors.ErrTodoNotFound)
	repo.On("Delete", mock.Anything, uint(4)).Return(apperrors.ErrTodoNotFound)
	svc := NewTodoService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx, 4)
	assert.ErrorIs(t, err, apperrors.ErrTodoNotFound)
	assert.ErrorIs(t, svc.Update(ctx, 4, "t", "d"), apperrors.ErrTodoNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 4), apperrors.ErrTodoNotFound)
}
