package auth

import (
	"encoding/base64"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ausawards/admin-api/internal/apperr"
	"github.com/ausawards/admin-api/internal/model"
)

// Claims is the payload carried by an access token. It is derived from
// the user, session and role state at issuance time and is never
// persisted; permission changes only reach a bearer once their current
// token expires and is refreshed. The json field names are part of the
// wire contract.
type Claims struct {
	Subject     string   `json:"sub"`
	LoginID     string   `json:"loginId"`
	SessionID   string   `json:"sessionId"`
	Permissions []string `json:"permissions"`
	IssuedAt    int64    `json:"iat"`
	ExpiresAt   int64    `json:"exp"`
}

// jwt.Claims implementation so the parser can validate the temporal claims.

func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c *Claims) GetIssuer() (string, error)              { return "", nil }
func (c *Claims) GetSubject() (string, error)             { return c.Subject, nil }
func (c *Claims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }

// HasPermission reports whether the permission set in the token
// contains name.
func (c *Claims) HasPermission(name string) bool {
	for _, p := range c.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// TokenCodec issues and verifies HS256 signed access tokens. The
// signing key is the base64-decoded configured secret; it is decoded
// once on first use and cached under a read-mostly lock so concurrent
// first callers cannot race to a corrupt entry.
type TokenCodec struct {
	secret   string // base64-encoded signing secret from configuration
	lifetime time.Duration

	mu  sync.RWMutex
	key []byte
}

func NewTokenCodec(secretB64 string, lifetime time.Duration) *TokenCodec {
	return &TokenCodec{secret: secretB64, lifetime: lifetime}
}

// signingKey returns the cached decoded key, computing it on first use.
// Read-lock on the common path; on miss take the write lock, recheck,
// decode once and store.
func (tc *TokenCodec) signingKey() ([]byte, error) {
	tc.mu.RLock()
	key := tc.key
	tc.mu.RUnlock()
	if key != nil {
		return key, nil
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.key != nil {
		return tc.key, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(tc.secret)
	if err != nil {
		log.Printf("token: failed to decode base64 signing secret: %v", err)
		return nil, err
	}
	tc.key = decoded
	return tc.key, nil
}

// Issue signs a token for user bound to session, flattening the
// permissions of the given roles into a deduplicated set. The window is
// [now, now+lifetime).
func (tc *TokenCodec) Issue(user *model.User, session *model.Session, roles []model.Role) (string, error) {
	seen := make(map[string]bool)
	perms := make([]string, 0)
	for _, r := range roles {
		for _, p := range r.Permissions {
			if !seen[p] {
				seen[p] = true
				perms = append(perms, p)
			}
		}
	}
	sort.Strings(perms)

	key, err := tc.signingKey()
	if err != nil {
		return "", err
	}

	iat := time.Now().UTC().Unix()
	claims := &Claims{
		Subject:     user.ID,
		LoginID:     user.LoginID,
		SessionID:   session.ID,
		Permissions: perms,
		IssuedAt:    iat,
		ExpiresAt:   iat + int64(tc.lifetime/time.Second),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		log.Printf("token: failed to sign token for user %s: %v", user.ID, err)
		return "", err
	}
	return signed, nil
}

// Parse verifies the signature, algorithm and validity window of a
// token string and returns its claims. Every failure mode collapses to
// apperr.ErrUnauthenticated so callers map it to a 401 uniformly.
func (tc *TokenCodec) Parse(token string) (*Claims, error) {
	key, err := tc.signingKey()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil || !tok.Valid {
		return nil, apperr.ErrUnauthenticated
	}
	return claims, nil
}
