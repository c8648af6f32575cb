package domain

import "time"

// User represents a registered customer account.
// The password credential is stored as an opaque bcrypt hash; verification
// mechanics belong to the identity layer, not the booking core.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
