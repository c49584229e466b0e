package types

import "fmt"

// UserRole identifies which kind of participant a phone number was verified for
type UserRole string

const (
	UserRoleVolunteer   UserRole = "volunteer"
	UserRoleSurvivor    UserRole = "survivor"
	UserRoleCoordinator UserRole = "coordinator"
)

// AllUserRoles returns all valid user roles
func AllUserRoles() []UserRole {
	return []UserRole{
		UserRoleVolunteer,
		UserRoleSurvivor,
		UserRoleCoordinator,
	}
}

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleVolunteer,
		UserRoleSurvivor,
		UserRoleCoordinator:
		return true
	default:
		return false
	}
}

// String returns the string representation of the user role
func (r UserRole) String() string {
	return string(r)
}

// ParseUserRole parses a string into a UserRole
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid user role: %s", s)
	}
	return role, nil
}
