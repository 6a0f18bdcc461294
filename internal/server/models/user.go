package models

import "time"

// User is a registered principal. PasswordHash is a salted bcrypt hash;
// the plaintext password is never stored.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
