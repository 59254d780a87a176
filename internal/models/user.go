package models

// UserRole controls access to the coordinator screens.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents an application user.
type User struct {
	UserID       string   `json:"userID" db:"user_id"`
	Email        string   `json:"email" db:"email"`
	DisplayName  string   `json:"displayName" db:"display_name"`
	PasswordHash string   `json:"-" db:"password_hash"` // empty for OAuth-only users
	Role         UserRole `json:"role" db:"role"`
	GoogleID     *string  `json:"-" db:"google_id"`
	AuditFields
}
