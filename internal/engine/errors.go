package engine

import "errors"

// Role and product mutation failures. A failed mutation never changes
// stored state.
var (
	ErrEmptyName       = errors.New("role name is required")
	ErrDuplicateRole   = errors.New("role with this name already exists")
	ErrProtectedRole   = errors.New("base roles cannot be deleted")
	ErrRoleNotFound    = errors.New("role not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownAction   = errors.New("unknown action")
)
