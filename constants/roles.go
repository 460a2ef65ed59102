package constants

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleRider = "rider"
)

// ValidRoles lists every role an admin may grant.
var ValidRoles = []string{RoleUser, RoleAdmin, RoleRider}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
