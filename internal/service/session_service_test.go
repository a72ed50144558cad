package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ausawards/admin-api/internal/apperr"
	"github.com/ausawards/admin-api/internal/auth"
	"github.com/ausawards/admin-api/internal/model"
)

// ----- fakes -----

type fakeIdentityStore struct {
	users []*model.User
}

func (f *fakeIdentityStore) FindByLoginID(_ context.Context, loginID string) (*model.User, error) {
	for _, u := range f.users {
		if u.LoginID == loginID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeIdentityStore) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// fakeSessionStore honours the store contract: Save upserts by id and
// FindActiveByID filters out revoked and time-expired sessions with a
// strict comparison.
type fakeSessionStore struct {
	sessions  map[string]model.Session
	saveCalls int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]model.Session)}
}

func (f *fakeSessionStore) Save(_ context.Context, s *model.Session) error {
	f.saveCalls++
	f.sessions[s.ID] = *s
	return nil
}

func (f *fakeSessionStore) FindActiveByID(_ context.Context, id string) (*model.Session, error) {
	s, ok := f.sessions[id]
	if !ok || s.Expired != nil || !s.ExpireAt.After(time.Now().UTC()) {
		return nil, nil
	}
	out := s
	return &out, nil
}

type fakeRoleResolver struct {
	roles map[string]model.Role
}

func (f *fakeRoleResolver) FindByIDs(_ context.Context, ids []string) ([]model.Role, error) {
	var out []model.Role
	for _, id := range ids {
		if r, ok := f.roles[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// ----- fixtures -----

var testTokenSecret = base64.StdEncoding.EncodeToString([]byte("session-service-test-secret"))

func newTestService(t *testing.T) (*SessionService, *fakeSessionStore, *auth.TokenCodec) {
	t.Helper()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	pwHash, err := hasher.Hash("correct horse")
	if err != nil {
		t.Fatalf("hash fixture password: %v", err)
	}
	users := &fakeIdentityStore{users: []*model.User{{
		ID:           "u1",
		UserType:     model.UserTypeAdmin,
		LoginID:      "admin@example.com",
		PasswordHash: pwHash,
		RoleIDs:      []string{"r-admin"},
	}}}
	roles := &fakeRoleResolver{roles: map[string]model.Role{
		"r-admin": {ID: "r-admin", Name: "ADMIN", Permissions: []string{"createAward"}},
	}}
	sessions := newFakeSessionStore()
	codec := auth.NewTokenCodec(testTokenSecret, time.Minute)

	svc := NewSessionService(24, time.Hour, hasher, codec, users, roles, sessions)
	return svc, sessions, codec
}

// ----- tests -----

func TestCreateSessionThenRefresh(t *testing.T) {
	svc, sessions, codec := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateSession(ctx, "admin@example.com", "correct horse")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if res.SessionID == "" || res.Token == "" {
		t.Fatal("empty session id or token")
	}
	if len(res.SessionSecret) != 24 {
		t.Fatalf("secret length: got %d want 24", len(res.SessionSecret))
	}
	if stored := sessions.sessions[res.SessionID]; stored.SecretHash == res.SessionSecret {
		t.Fatal("session secret stored in plaintext")
	}

	token, err := svc.RefreshToken(ctx, res.SessionID, res.SessionSecret)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	claims, err := codec.Parse(token)
	if err != nil {
		t.Fatalf("Parse refreshed token: %v", err)
	}
	if claims.Subject != "u1" {
		t.Errorf("subject: got %q want u1", claims.Subject)
	}
	if claims.SessionID != res.SessionID {
		t.Errorf("sessionId: got %q want %q", claims.SessionID, res.SessionID)
	}
}

func TestCreateSessionBadCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	// Unknown login id and wrong password must be indistinguishable.
	if _, err := svc.CreateSession(ctx, "nobody@example.com", "whatever"); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("unknown login: got %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.CreateSession(ctx, "admin@example.com", "wrong password"); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("wrong password: got %v, want ErrUnauthenticated", err)
	}
}

func TestRefreshWrongSecretDoesNotMutate(t *testing.T) {
	svc, sessions, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateSession(ctx, "admin@example.com", "correct horse")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	before := sessions.sessions[res.SessionID]
	saves := sessions.saveCalls

	if _, err := svc.RefreshToken(ctx, res.SessionID, "not the secret"); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("RefreshToken: got %v, want ErrUnauthenticated", err)
	}
	if sessions.saveCalls != saves {
		t.Fatal("refresh with a wrong secret wrote to the session store")
	}
	if after := sessions.sessions[res.SessionID]; after != before {
		t.Fatal("refresh with a wrong secret mutated the session record")
	}
}

func TestRefreshUnknownOrExpiredSession(t *testing.T) {
	svc, sessions, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.RefreshToken(ctx, "no-such-session", "secret"); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("unknown session: got %v, want ErrUnauthenticated", err)
	}

	// A session past its expiry timestamp is no longer active.
	sessions.sessions["expired"] = model.Session{
		ID:       "expired",
		UserID:   "u1",
		ExpireAt: time.Now().UTC().Add(-time.Second),
	}
	if _, err := svc.RefreshToken(ctx, "expired", "secret"); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("expired session: got %v, want ErrUnauthenticated", err)
	}

	// Activity requires expire_at strictly in the future: a session
	// whose expiry equals the current instant is already inactive.
	sessions.sessions["boundary"] = model.Session{
		ID:       "boundary",
		UserID:   "u1",
		ExpireAt: time.Now().UTC(),
	}
	if _, err := svc.RefreshToken(ctx, "boundary", "secret"); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("boundary session: got %v, want ErrUnauthenticated", err)
	}
}

func TestRefreshMissingOwnerIsInternal(t *testing.T) {
	svc, sessions, _ := newTestService(t)
	ctx := context.Background()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	sessions.sessions["orphan"] = model.Session{
		ID:         "orphan",
		UserID:     "ghost",
		SecretHash: hash,
		ExpireAt:   time.Now().UTC().Add(time.Hour),
	}

	_, err = svc.RefreshToken(ctx, "orphan", "secret")
	if err == nil {
		t.Fatal("expected an error for an active session with no owning user")
	}
	if errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatal("data corruption must not surface as an authentication failure")
	}
}

func TestSignOutThenSignOutAgain(t *testing.T) {
	svc, sessions, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateSession(ctx, "admin@example.com", "correct horse")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if err := svc.SignOut(ctx, res.SessionID); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	stored := sessions.sessions[res.SessionID]
	if stored.Expired == nil {
		t.Fatal("sign-out did not attach an expiry record")
	}
	if stored.Expired.Reason != model.ExpiryReasonLogOut {
		t.Errorf("reason: got %q want %q", stored.Expired.Reason, model.ExpiryReasonLogOut)
	}
	if stored.Expired.ExpiredBy != "u1" {
		t.Errorf("expiredBy: got %q want u1", stored.Expired.ExpiredBy)
	}

	// The second sign-out finds no active session: a validation
	// failure, not an authentication failure and not a silent success.
	if err := svc.SignOut(ctx, res.SessionID); !errors.Is(err, apperr.ErrInvalidParameters) {
		t.Fatalf("second SignOut: got %v, want ErrInvalidParameters", err)
	}
}

func TestRefreshAfterSignOut(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateSession(ctx, "admin@example.com", "correct horse")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if err := svc.SignOut(ctx, res.SessionID); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if _, err := svc.RefreshToken(ctx, res.SessionID, res.SessionSecret); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("refresh after sign-out: got %v, want ErrUnauthenticated", err)
	}
}
