package entity

import "strings"

const (
	roleClient   = "client"
	roleFollower = "follower"
	roleAdmin    = "admin"
)

// UserRole is one of a closed set of role names.
type UserRole struct {
	value string
}

func NewUserRole(s string) (UserRole, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return UserRole{}, ErrEmptyRole
	}
	for _, r := range AvailableRoles() {
		if s == r {
			return UserRole{value: s}, nil
		}
	}
	return UserRole{}, ErrInvalidRole
}

// AvailableRoles lists every role name the system knows.
func AvailableRoles() []string {
	return []string{roleClient, roleFollower, roleAdmin}
}

func RoleClient() UserRole   { return UserRole{value: roleClient} }
func RoleFollower() UserRole { return UserRole{value: roleFollower} }
func RoleAdmin() UserRole    { return UserRole{value: roleAdmin} }

func (r UserRole) Value() string  { return r.value }
func (r UserRole) String() string { return r.value }

func (r UserRole) Equals(other UserRole) bool {
	return r.value == other.value
}

// IsSelfAssignable reports whether a user may pick this role when signing
// up. Admin is only granted through trusted paths.
func (r UserRole) IsSelfAssignable() bool {
	return r.value == roleClient || r.value == roleFollower
}
