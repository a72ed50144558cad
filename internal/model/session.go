package model

import "time"

// SessionTypeUser tags sessions created through interactive login.
const SessionTypeUser = "SESSION_TYPE_USER"

// Reasons recorded on a SessionExpiry.
const (
	ExpiryReasonLogOut      = "LOG_OUT"
	ExpiryReasonForceExpire = "FORCE_EXPIRE"
)

// SessionExpiry records the revocation of a session. Once attached to a
// session it is never cleared or modified; a session cannot be un-revoked.
//
// Fields:
//  ExpiredBy – id of the user that triggered the revocation.
//  ExpiredAt – when the revocation happened.
//  Reason    – one of the ExpiryReason constants.
type SessionExpiry struct {
	ExpiredBy string    // sessions.expired_by
	ExpiredAt time.Time // sessions.expired_at
	Reason    string    // sessions.expired_reason
}

// Session represents one successful login as stored in the `sessions`
// table. SecretHash holds a bcrypt digest of the session secret; the
// plaintext secret is revealed to the client exactly once at login and
// never persisted. A session is active iff Expired is nil and ExpireAt
// is still in the future. After creation the only permitted mutation is
// attaching an expiry record.
//
// Fields:
//  ID          – primary key identifier (UUID string).
//  UserID      – owning user.
//  SessionType – session category (SessionTypeUser).
//  SecretHash  – bcrypt digest of the session secret.
//  CreatedAt   – creation timestamp.
//  ExpireAt    – absolute expiry timestamp.
//  Expired     – revocation record (nil while active).
type Session struct {
	ID          string         // sessions.id
	UserID      string         // sessions.user_id
	SessionType string         // sessions.session_type
	SecretHash  string         // sessions.secret_hash
	CreatedAt   time.Time      // sessions.created_at
	ExpireAt    time.Time      // sessions.expire_at
	Expired     *SessionExpiry // sessions.expired_* (nullable)
}
