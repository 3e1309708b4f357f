package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash of the
// plaintext password; Salt is the salt-bearing prefix of that hash, stored
// in its own column to match the reference schema. Rows are created once by
// registration and never mutated by this service.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
}
