package entity

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleChef  UserRole = "chef"
	RoleUser  UserRole = "user"
)

// ValidRole reports whether the role belongs to the closed enumeration.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleChef, RoleUser:
		return true
	}
	return false
}

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Role         UserRole `db:"role"`
}

// FullName untuk display di auth response
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
