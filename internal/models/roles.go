package models

// baseRoles is the template cloned into every new product.
var baseRoles = []Role{
	{ID: "studio", Name: "Studio"},
	{ID: "smm", Name: "SMM Manager"},
	{ID: "developer", Name: "Developer"},
	{ID: "designer", Name: "Designer"},
	{ID: "manager", Name: "Manager"},
}

// BaseRoles returns a fresh copy of the base role template with every
// percent set to 0.
func BaseRoles() []Role {
	roles := make([]Role, len(baseRoles))
	copy(roles, baseRoles)
	return roles
}

// IsBaseRole reports whether roleID is one of the fixed base role IDs.
// Base roles can never be removed from any product.
func IsBaseRole(roleID string) bool {
	for _, r := range baseRoles {
		if r.ID == roleID {
			return true
		}
	}
	return false
}
