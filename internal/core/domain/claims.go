package domain

import "time"

// Claims is the verified payload of a session token.
type Claims struct {
	UserID    string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
