// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role an account can have in the marketplace.
type Role string

const (
	// RoleCustomer rents items. It is the default role.
	RoleCustomer Role = "CUSTOMER"
	// RoleOwner lists items for rent.
	RoleOwner Role = "OWNER"
	// RoleBusiness is a rental company.
	RoleBusiness Role = "BUSINESS"
	// RoleAdmin manages accounts.
	RoleAdmin Role = "ADMIN"
	// RoleSuperAdmin manages accounts and admins.
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// AllRoles lists every role in display order.
var AllRoles = Roles{RoleCustomer, RoleOwner, RoleBusiness, RoleAdmin, RoleSuperAdmin}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return slices.Contains(AllRoles, r)
}

// RequiresBusinessInfo reports whether registration must carry business details.
func (r Role) RequiresBusinessInfo() bool {
	return r == RoleOwner || r == RoleBusiness
}

// IsAdmin reports whether the role may use the admin surface.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ParseRole converts a case-insensitive name into a Role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

