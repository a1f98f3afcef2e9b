package domain

import "time"

// Session is the decoded content of a session token. It is never persisted.
type Session struct {
	ID        string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
