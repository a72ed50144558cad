// Package queue defines message payloads exchanged over the message broker.
package queue

// Session audit event types.
const (
	EventSessionCreated = "session.created"
	EventSessionRevoked = "session.revoked"
)

// SessionEvent is published when a session is created or revoked. It
// carries enough information for downstream consumers to build an audit
// trail without querying the primary database. It never contains the
// session secret or the token.
type SessionEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	LoginID   string `json:"login_id,omitempty"`
	At        string `json:"at"`
}
