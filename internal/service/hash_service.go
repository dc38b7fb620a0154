package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. Existing stored hashes depend on these values;
// changing them invalidates every credential in the database.
const (
	pbkdf2Iterations = 10000
	pbkdf2SaltLen    = 16
	pbkdf2KeyLen     = 32
)

// PBKDF2HashService implements ports.HashService using PBKDF2-SHA256.
type PBKDF2HashService struct{}

// NewPBKDF2HashService creates a new PBKDF2 hash service.
func NewPBKDF2HashService() *PBKDF2HashService {
	return &PBKDF2HashService{}
}

// Hash derives a key from the password with a fresh random salt.
// The stored form is a single base64 blob of salt followed by the
// derived key.
func (s *PBKDF2HashService) Hash(password string) (string, error) {
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)

	blob := make([]byte, 0, pbkdf2SaltLen+pbkdf2KeyLen)
	blob = append(blob, salt...)
	blob = append(blob, key...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Verify checks if a password matches the given encoded hash.
// A malformed hash counts as a mismatch rather than an error, so
// callers treat all failures as bad credentials.
func (s *PBKDF2HashService) Verify(password string, encodedHash string) (bool, error) {
	blob, err := base64.StdEncoding.DecodeString(encodedHash)
	if err != nil {
		return false, nil
	}
	if len(blob) != pbkdf2SaltLen+pbkdf2KeyLen {
		return false, nil
	}

	salt := blob[:pbkdf2SaltLen]
	stored := blob[pbkdf2SaltLen:]

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)

	return subtle.ConstantTimeCompare(stored, key) == 1, nil
}
