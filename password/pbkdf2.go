package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Fixed algorithm parameters. These are part of the stored-hash contract:
// verification recomputes the derived key with exactly these values.
const (
	// Iterations is the PBKDF2 iteration count.
	Iterations = 10000
	// KeyLength is the derived key size in bytes (512 bits).
	KeyLength = 64
	// SaltLength is the random salt size in bytes (256 bits).
	SaltLength = 32

	separator = ":"
)

// ErrMalformedHash is returned when a stored value cannot be parsed. It
// signals a contract violation by the credential store, not a wrong
// password.
var ErrMalformedHash = errors.New("malformed password hash")

// Hash derives a stored credential value from the raw password using a
// fresh random salt. Two calls with the same password produce different
// values; both verify.
func Hash(rawPassword string) (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := derive(rawPassword, salt)

	return hex.EncodeToString(salt) + separator + hex.EncodeToString(key), nil
}

// Verify recomputes the derived key from the raw password and the salt
// embedded in storedValue and compares it against the stored key in
// constant time.
func Verify(rawPassword, storedValue string) (bool, error) {
	saltHex, keyHex, found := strings.Cut(storedValue, separator)
	if !found {
		return false, fmt.Errorf("%w: missing separator", ErrMalformedHash)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return false, fmt.Errorf("%w: invalid salt encoding", ErrMalformedHash)
	}

	expected, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("%w: invalid key encoding", ErrMalformedHash)
	}
	if len(expected) != KeyLength {
		return false, fmt.Errorf("%w: unexpected key length %d", ErrMalformedHash, len(expected))
	}

	computed := derive(rawPassword, salt)

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

func derive(rawPassword string, salt []byte) []byte {
	return pbkdf2.Key([]byte(rawPassword), salt, Iterations, KeyLength, sha256.New)
}
