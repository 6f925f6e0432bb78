// Package authz is the single authorization decision table. Every
// role-gated operation consults Decide; handlers and services never
// re-derive role checks on their own.
package authz

import (
	"github.com/present-lee/module-6/internal/constants"
	apperrors "github.com/present-lee/module-6/internal/errors"
)

type Operation string

const (
	ViewBoard         Operation = "board:view"
	CreateCategory    Operation = "category:create"
	UpdateCategory    Operation = "category:update"
	ReorderCategories Operation = "category:reorder"
	DeleteCategory    Operation = "category:delete"
	CreateTask        Operation = "task:create"
	UpdateTask        Operation = "task:update"
	MoveTask          Operation = "task:move"
	DeleteTask        Operation = "task:delete"
	UpdateUserRole    Operation = "user:update-role"
	DeleteUser        Operation = "user:delete"
)

type rule struct {
	roles map[constants.UserRole]bool
	// ownerBypass lets the owner of the target resource act even when the
	// role alone would not be enough.
	ownerBypass bool
}

var anyRole = map[constants.UserRole]bool{
	constants.RoleAdmin:  true,
	constants.RoleMember: true,
	constants.RoleViewer: true,
}

var adminOrMember = map[constants.UserRole]bool{
	constants.RoleAdmin:  true,
	constants.RoleMember: true,
}

var adminOnly = map[constants.UserRole]bool{
	constants.RoleAdmin: true,
}

var rules = map[Operation]rule{
	ViewBoard:         {roles: anyRole},
	CreateCategory:    {roles: adminOrMember},
	UpdateCategory:    {roles: adminOrMember},
	ReorderCategories: {roles: adminOrMember},
	DeleteCategory:    {roles: adminOnly},
	CreateTask:        {roles: adminOrMember},
	UpdateTask:        {roles: adminOrMember},
	MoveTask:          {roles: adminOrMember},
	DeleteTask:        {roles: adminOrMember, ownerBypass: true},
	UpdateUserRole:    {roles: adminOnly},
	DeleteUser:        {roles: adminOnly},
}

// Decide returns nil when the actor's role (or, where the operation allows
// it, ownership of the target resource) permits op, ErrForbidden otherwise.
// Denial is always an explicit error, never a silent no-op.
func Decide(role constants.UserRole, op Operation, isOwner bool) error {
	r, ok := rules[op]
	if !ok {
		return apperrors.ErrForbidden
	}
	if r.roles[role] {
		return nil
	}
	if r.ownerBypass && isOwner {
		return nil
	}
	return apperrors.ErrForbidden
}
