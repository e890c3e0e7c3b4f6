// Package cryptox implements the Lockbox cipher engine: AES-256-CBC
// encryption of secret payloads and the PBKDF2 primitives used for
// master-password hashing and session-key derivation.
package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	"github.com/alexkarpovs/lockbox/internal/common"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// IVSize is the AES-CBC initialization vector length in bytes.
	IVSize = aes.BlockSize
)

// Encrypt encrypts plaintext under AES-256-CBC with PKCS#7 padding and a
// fresh random IV, and returns the self-contained blob IV || ciphertext.
//
// A new IV is generated on every call, so encrypting the same plaintext
// twice with the same key yields different blobs.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", common.ErrEncryption, KeySize, len(key))
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", common.ErrEncryption)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEncryption, err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)

	blob := make([]byte, IVSize+len(padded))
	copy(blob, common.GenerateRandByteArray(IVSize))
	cipher.NewCBCEncrypter(block, blob[:IVSize]).CryptBlocks(blob[IVSize:], padded)

	return blob, nil
}

// Decrypt splits the first IVSize bytes of blob as the IV, decrypts the
// remainder under AES-256-CBC, validates and strips the PKCS#7 padding,
// and returns the original plaintext.
//
// Every failure mode (short blob, wrong key length, truncated ciphertext,
// padding mismatch) surfaces as an error wrapping common.ErrDecryption;
// Decrypt never panics on malformed input.
func Decrypt(blob, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", common.ErrDecryption, KeySize, len(key))
	}
	if len(blob) < IVSize+aes.BlockSize {
		return nil, fmt.Errorf("%w: blob too short (%d bytes)", common.ErrDecryption, len(blob))
	}

	iv, ct := blob[:IVSize], blob[IVSize:]
	if len(ct)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", common.ErrDecryption)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecryption, err)
	}

	padded := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ct)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecryption, err)
	}
	return plaintext, nil
}

// EncryptToString encrypts plaintext and encodes the blob as standard
// base64 so it can live in a text-capable storage column. Encryption and
// encoding are a single operation from the caller's perspective.
func EncryptToString(plaintext, key []byte) (string, error) {
	blob, err := Encrypt(plaintext, key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptFromString decodes a base64 blob produced by EncryptToString and
// decrypts it. A malformed encoding is reported as a decryption failure.
func DecryptFromString(encoded string, key []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 blob: %v", common.ErrDecryption, err)
	}
	return Decrypt(blob, key)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(append([]byte{}, data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("invalid padding byte %d", n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}
	return data[:len(data)-n], nil
}
