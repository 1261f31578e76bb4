package authz

import (
	"recipe-sharing/internal/data/entity"
	"recipe-sharing/pkg/utils"
)

// Operation adalah satu protected action di service layer
type Operation string

const (
	OpRecipeUpdate Operation = "recipe:update"
	OpUserDelete   Operation = "user:delete"
	OpUserListAll  Operation = "user:list_all"
	OpReviewDelete Operation = "review:delete"
)

// policy maps each operation to its allowed role set. Membership is exact:
// there is no privilege hierarchy, an admin may NOT update recipes.
// Semua role check lewat table ini supaya aturannya tidak drift antar endpoint.
var policy = map[Operation][]entity.UserRole{
	OpRecipeUpdate: {entity.RoleChef},
	OpUserDelete:   {entity.RoleAdmin},
	OpUserListAll:  {entity.RoleAdmin},
	OpReviewDelete: {entity.RoleAdmin, entity.RoleChef, entity.RoleUser},
}

// Authorize checks the caller's role against the operation's allowed set.
// Unknown operations are denied. Called inside the service layer before any
// mutating repository call, so a denial has zero side effects.
func Authorize(op Operation, role entity.UserRole) error {
	for _, allowed := range policy[op] {
		if role == allowed {
			return nil
		}
	}

	return &utils.AccessDeniedError{
		Operation: string(op),
		Role:      string(role),
	}
}

// Allowed returns the role set for an operation (untuk logging/debugging)
func Allowed(op Operation) []entity.UserRole {
	roles := make([]entity.UserRole, len(policy[op]))
	copy(roles, policy[op])
	return roles
}
