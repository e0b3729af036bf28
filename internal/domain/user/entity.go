package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Back-office operator - full access
	RoleStaff Role = "staff" // Waiter or casual - read-only access to own data
)

type User struct {
	ID              string
	Email           string
	DisplayName     string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if the user can manage datasets and invoices
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
