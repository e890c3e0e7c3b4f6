package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexkarpovs/lockbox/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// Rounds is the PBKDF2 iteration count used for both the master hash
	// and session-key derivation.
	Rounds = 100000

	// SaltSize is the random salt length in bytes.
	SaltSize = 16

	hashAlgoTag = "pbkdf2-sha256"
)

// HashMasterPassword hashes the master password with PBKDF2-HMAC-SHA256
// over a fresh random salt and returns the self-describing string
//
//	pbkdf2-sha256$<rounds>$<salt_b64>$<digest_b64>
//
// so the verifier carries its own algorithm, iteration count, and salt.
func HashMasterPassword(password string) string {
	salt := common.GenerateRandByteArray(SaltSize)
	digest := pbkdf2.Key([]byte(password), salt, Rounds, KeySize, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s",
		hashAlgoTag,
		Rounds,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
}

// VerifyMasterPassword recomputes the digest of password using the
// parameters embedded in hash and compares it in constant time.
// A mismatch is reported as (false, nil): a wrong password is a normal
// outcome, not an error. Errors are reserved for a malformed hash.
func VerifyMasterPassword(hash, password string) (bool, error) {
	rounds, salt, digest, err := parseMasterHash(hash)
	if err != nil {
		return false, err
	}
	candidate := pbkdf2.Key([]byte(password), salt, rounds, len(digest), sha256.New)
	return subtle.ConstantTimeCompare(candidate, digest) == 1, nil
}

// SaltFromHash extracts the salt embedded in a master hash produced by
// HashMasterPassword.
func SaltFromHash(hash string) ([]byte, error) {
	_, salt, _, err := parseMasterHash(hash)
	return salt, err
}

// DeriveKey derives the 32-byte session key from the master password and
// the salt stored in the master hash. The salt is domain-separated first
// so the derived key can never collide with the stored verification
// digest. Deterministic: the same password and salt always produce the
// same key.
func DeriveKey(password string, salt []byte) []byte {
	keySalt := sha256.Sum256(append(append([]byte{}, salt...), []byte("lockbox/enc/v1")...))
	return pbkdf2.Key([]byte(password), keySalt[:], Rounds, KeySize, sha256.New)
}

func parseMasterHash(hash string) (rounds int, salt, digest []byte, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 4 || parts[0] != hashAlgoTag {
		return 0, nil, nil, fmt.Errorf("malformed master hash")
	}
	rounds, err = strconv.Atoi(parts[1])
	if err != nil || rounds <= 0 {
		return 0, nil, nil, fmt.Errorf("malformed master hash: bad rounds %q", parts[1])
	}
	salt, err = base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return 0, nil, nil, fmt.Errorf("malformed master hash: bad salt: %w", err)
	}
	digest, err = base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return 0, nil, nil, fmt.Errorf("malformed master hash: bad digest: %w", err)
	}
	return rounds, salt, digest, nil
}
