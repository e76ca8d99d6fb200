// Package queue defines message payloads exchanged over the message broker.
package queue

// AuditQueueName is the durable queue carrying AuthEvent messages.
const AuditQueueName = "auth.events"

// Event types carried in AuthEvent.Type.
const (
	EventUserRegistered = "user.registered"
	EventUserLoggedIn   = "user.logged_in"
)

// AuthEvent is published after a successful registration or login.  It
// never carries the password or the issued token.
type AuthEvent struct {
	Type       string `json:"type"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	OccurredAt string `json:"occurred_at"`
}
