package domain

// Authorization tiers. Exactly one role per identity.
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// ValidRole reports whether r is one of the known role values.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEmployee
}
