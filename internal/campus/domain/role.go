package domain

import "fmt"

// Role is the closed set of user kinds. The zero value is not a valid role.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleStudent Role = "Student"
	RoleFaculty Role = "Faculty"
)

// AllRoles lists every role in declaration order.
var AllRoles = []Role{RoleAdmin, RoleStudent, RoleFaculty}

// ParseRole maps a role name onto the enum. Names are case sensitive.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStudent, RoleFaculty:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string { return string(r) }
