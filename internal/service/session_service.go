package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ausawards/admin-api/internal/apperr"
	"github.com/ausawards/admin-api/internal/auth"
	"github.com/ausawards/admin-api/internal/model"
)

// IdentityStore is the slice of user persistence the session manager
// needs.
type IdentityStore interface {
	FindByLoginID(ctx context.Context, loginID string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// SessionStore persists session records keyed by id. Save has upsert
// semantics; FindActiveByID only returns sessions that are unrevoked
// and not yet time-expired.
type SessionStore interface {
	Save(ctx context.Context, s *model.Session) error
	FindActiveByID(ctx context.Context, id string) (*model.Session, error)
}

// RoleResolver maps role ids to the roles (and so permissions) they
// grant.
type RoleResolver interface {
	FindByIDs(ctx context.Context, ids []string) ([]model.Role, error)
}

// TokenIssuer signs an access token from current user, session and role
// state.
type TokenIssuer interface {
	Issue(user *model.User, session *model.Session, roles []model.Role) (string, error)
}

// LoginResult is returned from a successful CreateSession. SessionSecret
// is the one-time plaintext reveal; only its digest is stored. UserID is
// carried for audit events and is not part of the response body.
type LoginResult struct {
	SessionID     string
	SessionSecret string
	Token         string
	UserID        string
}

// SessionService orchestrates the session lifecycle: login, token
// refresh and sign-out. A session moves created -> active -> revoked
// and never back.
type SessionService struct {
	secretLength int
	lifetime     time.Duration

	hasher   auth.Hasher
	tokens   TokenIssuer
	users    IdentityStore
	roles    RoleResolver
	sessions SessionStore
}

func NewSessionService(secretLength int, lifetime time.Duration, hasher auth.Hasher,
	tokens TokenIssuer, users IdentityStore, roles RoleResolver, sessions SessionStore) *SessionService {
	return &SessionService{
		secretLength: secretLength,
		lifetime:     lifetime,
		hasher:       hasher,
		tokens:       tokens,
		users:        users,
		roles:        roles,
		sessions:     sessions,
	}
}

// CreateSession verifies the login credentials, persists a new session
// and issues an access token. An unknown login id and a wrong password
// produce the same failure so login ids cannot be enumerated.
func (s *SessionService) CreateSession(ctx context.Context, loginID, password string) (*LoginResult, error) {
	user, err := s.users.FindByLoginID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperr.ErrUnauthenticated
	}

	secret, err := auth.NewSessionSecret(s.secretLength)
	if err != nil {
		log.Printf("session: failed to generate session secret: %v", err)
		return nil, err
	}
	secretHash, err := s.hasher.Hash(secret)
	if err != nil {
		log.Printf("session: failed to hash session secret: %v", err)
		return nil, err
	}

	now := time.Now().UTC()
	session := &model.Session{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		SessionType: model.SessionTypeUser,
		SecretHash:  secretHash,
		CreatedAt:   now,
		ExpireAt:    now.Add(s.lifetime),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.issueToken(ctx, user, session)
	if err != nil {
		return nil, err
	}
	return &LoginResult{SessionID: session.ID, SessionSecret: secret, Token: token, UserID: user.ID}, nil
}

// RefreshToken issues a fresh access token for an active session after
// verifying the session secret. The session's own expiry is unaffected;
// refreshing never extends session lifetime.
func (s *SessionService) RefreshToken(ctx context.Context, sessionID, secret string) (string, error) {
	session, err := s.sessions.FindActiveByID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session == nil {
		log.Printf("session: could not locate active session %s", sessionID)
		return "", apperr.ErrUnauthenticated
	}
	if !s.hasher.Verify(secret, session.SecretHash) {
		log.Printf("session: invalid secret for session %s", sessionID)
		return "", apperr.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return "", err
	}
	if user == nil {
		// An active session pointing at a missing user is data
		// corruption, not a client mistake.
		log.Printf("session: user %s not found but session %s is active", session.UserID, session.ID)
		return "", fmt.Errorf("session %s references missing user %s", session.ID, session.UserID)
	}

	return s.issueToken(ctx, user, session)
}

// SignOut attaches an expiry record to an active session. Signing out a
// session that is already revoked or expired fails with
// ErrInvalidParameters: the caller's token was valid, but the session
// itself is gone.
func (s *SessionService) SignOut(ctx context.Context, sessionID string) error {
	session, err := s.sessions.FindActiveByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		log.Printf("session: sign-out requested for %s but no active session found", sessionID)
		return apperr.ErrInvalidParameters
	}

	session.Expired = &model.SessionExpiry{
		ExpiredBy: session.UserID,
		ExpiredAt: time.Now().UTC(),
		Reason:    model.ExpiryReasonLogOut,
	}
	return s.sessions.Save(ctx, session)
}

func (s *SessionService) issueToken(ctx context.Context, user *model.User, session *model.Session) (string, error) {
	roles, err := s.roles.FindByIDs(ctx, user.RoleIDs)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user, session, roles)
}
