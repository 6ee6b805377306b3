package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleBuyer can post and edit their own reviews.
	RoleBuyer Role = "buyer"
	// RoleSeller can list and manage their own products.
	RoleSeller Role = "seller"
	// RoleAdmin manages the category tree and moderates reviews.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleOrDefault returns the role parsed from s, falling back to RoleBuyer for an empty string.
func RoleOrDefault(s string) Role {
	if s == "" {
		return RoleBuyer
	}

	return Role(s)
}
