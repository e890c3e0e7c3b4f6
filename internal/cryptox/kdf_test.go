package cryptox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashMasterPassword_Format(t *testing.T) {
	hash := HashMasterPassword("CorrectHorse99!")

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 4)
	assert.Equal(t, "pbkdf2-sha256", parts[0])
	assert.Equal(t, "100000", parts[1])
	assert.NotEmpty(t, parts[2])
	assert.NotEmpty(t, parts[3])
}

func TestHashMasterPassword_SaltIsRandom(t *testing.T) {
	h1 := HashMasterPassword("same password")
	h2 := HashMasterPassword("same password")
	assert.NotEqual(t, h1, h2, "a fresh salt must produce a different hash")
}

func TestVerifyMasterPassword(t *testing.T) {
	hash := HashMasterPassword("CorrectHorse99!")

	ok, err := VerifyMasterPassword(hash, "CorrectHorse99!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyMasterPassword(hash, "WrongHorse99!")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyMasterPassword_MalformedHash(t *testing.T) {
	tests := []string{
		"",
		"pbkdf2-sha256$100000$onlythree",
		"argon2id$100000$c2FsdA$ZGlnZXN0",
		"pbkdf2-sha256$zero$c2FsdA$ZGlnZXN0",
		"pbkdf2-sha256$100000$!!!$ZGlnZXN0",
		"pbkdf2-sha256$100000$c2FsdA$!!!",
	}
	for _, h := range tests {
		_, err := VerifyMasterPassword(h, "whatever")
		require.Error(t, err, "hash %q", h)
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	key1 := DeriveKey("CorrectHorse99!", salt)
	key2 := DeriveKey("CorrectHorse99!", salt)

	require.Len(t, key1, KeySize)
	assert.Equal(t, key1, key2, "same password and salt must derive the same key")
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	salt := []byte("0123456789abcdef")

	key1 := DeriveKey("CorrectHorse99!", salt)
	key2 := DeriveKey("OtherPassword11!", salt)
	key3 := DeriveKey("CorrectHorse99!", []byte("fedcba9876543210"))

	assert.NotEqual(t, key1, key2)
	assert.NotEqual(t, key1, key3)
}

func TestDeriveKey_NeverEqualsStoredDigest(t *testing.T) {
	hash := HashMasterPassword("CorrectHorse99!")
	salt, err := SaltFromHash(hash)
	require.NoError(t, err)

	key := DeriveKey("CorrectHorse99!", salt)
	digest := strings.Split(hash, "$")[3]
	assert.False(t, bytes.Contains([]byte(digest), key), "encryption key must not appear in the stored hash")
}

func TestSaltFromHash(t *testing.T) {
	hash := HashMasterPassword("CorrectHorse99!")

	salt, err := SaltFromHash(hash)
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)

	_, err = SaltFromHash("garbage")
	require.Error(t, err)
}
