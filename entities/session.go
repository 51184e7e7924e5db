package entities

import (
	"time"
)

type SessionField string

const (
	SessionID        SessionField = "session_id"
	SessionToken     SessionField = "token"
	SessionExpiresAt SessionField = "expires_at"
)

// Session is the struct to store server side sessions
type Session struct {
	ID        string    `bson:"session_id"`
	Token     string    `bson:"token"`
	ExpiresAt time.Time `bson:"expires_at"`
}
