package entity

import "time"

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never the plaintext credential.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	CreatedAt time.Time
}
