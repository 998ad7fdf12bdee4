package domain

import "time"

// User represents the authenticated owner of farms.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoginResult is the outcome of a successful credential exchange.
type LoginResult struct {
	Token string
	User  *User
}
