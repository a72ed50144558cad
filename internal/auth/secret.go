package auth

import (
	"crypto/rand"
	"math/big"
)

// secretAlphabet is the character set session secrets are drawn from.
const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewSessionSecret returns a cryptographically random alphanumeric
// string of length n. The result is handed to the client exactly once;
// only its bcrypt digest is ever persisted.
func NewSessionSecret(n int) (string, error) {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(secretAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = secretAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
