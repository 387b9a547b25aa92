// Package seed creates the default roles and their permissions.
package seed

import (
	"context"
	"fmt"

	"htmxtodo/internal/model"
	"htmxtodo/internal/repository"
)

// Role names.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// DefaultRoles maps each role to the actions it is granted.
var DefaultRoles = map[string][]string{
	RoleAdmin:  model.TodoActions,
	RoleMember: {model.ActionTodoRead, model.ActionTodoCreate},
}

// Roles creates every role in roles and grants its actions. Running it again
// changes nothing. It returns the ID of each role by name.
func Roles(ctx context.Context, repo repository.PermissionRepository, roles map[string][]string) (map[string]uint, error) {
	ids := make(map[string]uint, len(roles))
	for name, actions := range roles {
		role, err := repo.EnsureRole(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("ensure role %s: %w", name, err)
		}
		for _, action := range actions {
			perm, err := repo.EnsurePermission(ctx, action)
			if err != nil {
				return nil, fmt.Errorf("ensure permission %s: %w", action, err)
			}
			if err := repo.Grant(ctx, role.ID, perm.ID); err != nil {
				return nil, fmt.Errorf("grant %s to %s: %w", action, name, err)
			}
		}
		ids[name] = role.ID
	}
	return ids, nil
}
