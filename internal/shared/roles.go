package shared

// Account roles recognised by the storefront.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether the value names a known role.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
