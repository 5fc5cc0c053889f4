// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the category of caller an account belongs to.
type Role string

const (
	// RoleStudent is an enrolled student with a linked Student profile.
	RoleStudent Role = "student"
	// RoleStaff is a teacher or office member with a linked Staff profile.
	RoleStaff Role = "staff"
	// RoleAdmin is a school administrator. Admins have no linked profile.
	RoleAdmin Role = "admin"
	// RoleLMSStudent is an external learner with access to the LMS only.
	RoleLMSStudent Role = "lms_student"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin, RoleLMSStudent:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
