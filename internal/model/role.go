package model

// Role groups permissions. Users reference at most one role.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
}

// Permission names an action a role may perform, e.g. "todo:create".
type Permission struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Action string `json:"action" gorm:"uniqueIndex;size:100;not null"`
}

// PermissionOnRole joins roles and permissions. The existence of a row is
// what grants the permission.
type PermissionOnRole struct {
	RoleID       uint       `json:"role_id" gorm:"primaryKey"`
	PermissionID uint       `json:"permission_id" gorm:"primaryKey"`
	Role         Role       `json:"-" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	Permission   Permission `json:"-" gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the join table name stable across drivers.
func (PermissionOnRole) TableName() string {
	return "permission_on_roles"
}

// Actions checked by the todo routes.
const (
	ActionTodoRead   = "todo:read"
	ActionTodoCreate = "todo:create"
	ActionTodoUpdate = "todo:update"
	ActionTodoDelete = "todo:delete"
)

// TodoActions lists every todo action.
var TodoActions = []string{ActionTodoRead, ActionTodoCreate, ActionTodoUpdate, ActionTodoDelete}
