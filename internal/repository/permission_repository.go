package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"htmxtodo/internal/model"
)

// PermissionRepository answers role and permission questions.
type PermissionRepository interface {
	RoleExists(ctx context.Context, roleID uint) (bool, error)
	HasPermission(ctx context.Context, roleID uint, action string) (bool, error)
	EnsureRole(ctx context.Context, name string) (*model.Role, error)
	EnsurePermission(ctx context.Context, action string) (*model.Permission, error)
	Grant(ctx context.Context, roleID, permissionID uint) error
}

type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository.
func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

// RoleExists reports whether a role with the given ID exists.
func (r *permissionRepository) RoleExists(ctx context.Context, roleID uint) (bool, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Select("id").First(&role, roleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// HasPermission reports whether a permission_on_roles row joins roleID to a
// permission with the given action.
func (r *permissionRepository) HasPermission(ctx context.Context, roleID uint, action string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PermissionOnRole{}).
		Joins("JOIN permissions ON permissions.id = permission_on_roles.permission_id").
		Where("permission_on_roles.role_id = ? AND permissions.action = ?", roleID, action).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureRole finds the role by name or creates it.
func (r *permissionRepository) EnsureRole(ctx context.Context, name string) (*model.Role, error) {
	role := model.Role{Name: name}
	if err := r.db.WithContext(ctx).Where(model.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// EnsurePermission finds the permission by action or creates it.
func (r *permissionRepository) EnsurePermission(ctx context.Context, action string) (*model.Permission, error) {
	perm := model.Permission{Action: action}
	if err := r.db.WithContext(ctx).Where(model.Permission{Action: action}).FirstOrCreate(&perm).Error; err != nil {
		return nil, err
	}
	return &perm, nil
}

// Grant links a permission to a role. Granting twice is a no-op.
func (r *permissionRepository) Grant(ctx context.Context, roleID, permissionID uint) error {
	link := model.PermissionOnRole{RoleID: roleID, PermissionID: permissionID}
	return r.db.WithContext(ctx).
		Where(model.PermissionOnRole{RoleID: roleID, PermissionID: permissionID}).
		FirstOrCreate(&link).Error
}
