package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Password hashing schemes. The default is the legacy deterministic SHA-256
// hex digest: same input, same output, no per-user salt. HASH_SCHEME=bcrypt
// switches new writes to a salted adaptive hash; verification keeps working
// for rows written under either scheme.
const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// NewHasher picks the hasher for the configured scheme. Unknown values fall
// back to sha256.
func NewHasher(scheme string) PasswordHasher {
	if strings.EqualFold(scheme, SchemeBcrypt) {
		return BcryptHasher{}
	}
	return SHA256Hasher{}
}

// CompareHash verifies plain against a stored digest, dispatching on the
// digest shape: bcrypt hashes carry the "$2" modular-crypt prefix, anything
// else is treated as a SHA-256 hex digest.
func CompareHash(stored, plain string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	sum := sha256.Sum256([]byte(plain))
	digest := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(digest), []byte(stored)) == 1
}
