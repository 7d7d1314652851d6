package account

type Role string

const (
	RoleStudent Role = "student"
	RoleVendor  Role = "vendor"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanRegister reports whether accounts of this role are self-service.
// Admin access only comes from the static API key.
func (r Role) CanRegister() bool {
	return r == RoleStudent || r == RoleVendor
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
