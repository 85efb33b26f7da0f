package domain

import "time"

// User is the domain model for account holders whose credit score can be
// evaluated. PasswordHash always holds a bcrypt digest of the most recently
// set password; the plaintext is never persisted.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Age          int
	Salary       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
