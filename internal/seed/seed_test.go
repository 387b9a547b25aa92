package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htmxtodo/internal/model"
	"htmxtodo/internal/repository"
	"htmxtodo/internal/testutil"
)

func TestRoles(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	repo := repository.NewPermissionRepository(gormDB)
	ctx := context.Background()

	ids, err := Roles(ctx, repo, DefaultRoles)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	for _, action := range model.TodoActions {
		ok, err := repo.HasPermission(ctx, ids[RoleAdmin], action)
		require.NoError(t, err)
		assert.True(t, ok, action)
	}

	ok, err := repo.HasPermission(ctx, ids[RoleMember], model.ActionTodoCreate)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasPermission(ctx, ids[RoleMember], model.ActionTodoDelete)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoles_Idempotent(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	repo := repository.NewPermissionRepository(gormDB)
	ctx := context.Background()

	first, err := Roles(ctx, repo, DefaultRoles)
	require.NoError(t, err)
	second, err := Roles(ctx, repo, DefaultRoles)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var grants int64
	require.NoError(t, gormDB.Model(&model.PermissionOnRole{}).Count(&grants).Error)
	assert.Equal(t, int64(len(model.TodoActions)+2), grants)
}
