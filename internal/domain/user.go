package domain

import "time"

// User is the domain model for a registered account. Records are created at
// registration and are never updated or deleted afterwards.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
