// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin is the only privileged role; it unlocks mutation
	// endpoints and elevated visibility.
	RoleAdmin Role = "admin"
	// RoleAuthor is a regular account with no special privileges.
	RoleAuthor Role = "author"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAuthor:
		return true
	default:
		return false
	}
}
