// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of an authenticated principal.
type Role string

const (
	// RoleManager may mutate the catalog through the inventory surface.
	RoleManager Role = "manager"
	// RoleCustomer may browse, shop and check out but never touch inventory.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleCustomer:
		return true
	default:
		return false
	}
}

// Principal is an authenticated identity. The unauthenticated state is simply
// a nil *Principal and must be treated as having no manager access.
type Principal struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsManager reports whether the principal exists and carries the manager role.
func (p *Principal) IsManager() bool {
	return p != nil && p.Role == RoleManager
}

// Credential is a stored login secret for one principal. The password is only
// ever held as a bcrypt hash; plaintext comparison is not supported anywhere.
type Credential struct {
	Username     string
	PasswordHash string
	Role         Role
}
