package auth

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted one-way digests. It is used for
// both account passwords and session secrets.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// BcryptHasher implements Hasher with bcrypt at a configurable cost.
type BcryptHasher struct{ Cost int }

func NewBcryptHasher(cost int) *BcryptHasher { return &BcryptHasher{Cost: cost} }

// Hash returns a bcrypt digest of plain. A failure here is an internal
// error, never a validation outcome.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored digest.
func (h *BcryptHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
