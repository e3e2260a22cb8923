package domain

import "strings"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the two known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// MaxPasswordLength is bcrypt's input limit, in bytes.
const MaxPasswordLength = 72

// User models an identity stored in the user directory. PasswordHash never
// leaves the server.
type User struct {
	ID           string `json:"_id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	Phone        string `json:"celular,omitempty"`
	Username     string `json:"username,omitempty"`
	PasswordHash string `json:"-"`
	Role         string `json:"cargo"`
}

// ProfileUpdate carries the self-service profile fields. Empty fields are left
// untouched.
type ProfileUpdate struct {
	Name  string
	Email string
	Phone string
}

// Empty reports whether the update would not change anything.
func (p ProfileUpdate) Empty() bool {
	return p.Name == "" && p.Email == "" && p.Phone == ""
}

// NormalizeEmail lower-cases and trims an email address before it is stored
// or looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
