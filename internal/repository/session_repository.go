package repository

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/ausawards/admin-api/internal/model"
)

// SessionRepo persists sessions in the 'sessions' table. The expiry
// record is flattened into three nullable columns that are set together
// or not at all.
//
// Save is a whole-row upsert with no version checking: a revocation
// that lands between another writer's read and save is overwritten
// (last write wins). Refreshing a token never writes the session row,
// so in practice only concurrent sign-outs contend, and both record a
// LOG_OUT expiry.
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Save inserts or replaces a session row keyed by id.
func (r *SessionRepo) Save(ctx context.Context, s *model.Session) error {
	var (
		expiredBy     *string
		expiredAt     *time.Time
		expiredReason *string
	)
	if s.Expired != nil {
		expiredBy = &s.Expired.ExpiredBy
		expiredAt = &s.Expired.ExpiredAt
		expiredReason = &s.Expired.Reason
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, session_type, secret_hash, created_at, expire_at,
		                       expired_by, expired_at, expired_reason)
		 VALUES (?,?,?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   user_id=VALUES(user_id), session_type=VALUES(session_type),
		   secret_hash=VALUES(secret_hash), created_at=VALUES(created_at),
		   expire_at=VALUES(expire_at), expired_by=VALUES(expired_by),
		   expired_at=VALUES(expired_at), expired_reason=VALUES(expired_reason)`,
		s.ID, s.UserID, s.SessionType, s.SecretHash, s.CreatedAt.UTC(), s.ExpireAt.UTC(),
		expiredBy, expiredAt, expiredReason)
	if err != nil {
		log.Printf("sessions: failed to save session %s: %v", s.ID, err)
	}
	return err
}

// FindActiveByID fetches the session with the given id provided it has
// no expiry record and its expiry timestamp is strictly in the future.
// Returns (nil, nil) when no such session exists. The time comparison
// uses the application clock, not the database clock.
func (r *SessionRepo) FindActiveByID(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, session_type, secret_hash, created_at, expire_at
		 FROM sessions
		 WHERE id=? AND expire_at > ? AND expired_at IS NULL
		 LIMIT 1`,
		id, time.Now().UTC()).
		Scan(&s.ID, &s.UserID, &s.SessionType, &s.SecretHash, &s.CreatedAt, &s.ExpireAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("sessions: failed to load session %s: %v", id, err)
		return nil, err
	}
	return &s, nil
}
