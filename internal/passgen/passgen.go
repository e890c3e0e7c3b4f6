// Package passgen generates random passwords for new entries.
package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	lower       = "abcdefghijklmnopqrstuvwxyz"
	upper       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "@#$%&*"

	// DefaultLength is used when the caller does not care.
	DefaultLength = 16

	// MinLength guarantees room for one character of every class.
	MinLength = 4
)

var classes = []string{lower, upper, digits, punctuation}

// Generate returns a random password of the given length drawn from
// lowercase, uppercase, digit, and punctuation classes, with at least one
// character from each class. Randomness comes from crypto/rand.
func Generate(length int) (string, error) {
	if length < MinLength {
		return "", fmt.Errorf("password length must be at least %d", MinLength)
	}

	all := lower + upper + digits + punctuation

	out := make([]byte, length)
	for i := range out {
		c, err := randByte(all)
		if err != nil {
			return "", err
		}
		out[i] = c
	}

	// Overwrite one random position per class so every class is present.
	positions, err := distinctPositions(len(classes), length)
	if err != nil {
		return "", err
	}
	for i, class := range classes {
		c, err := randByte(class)
		if err != nil {
			return "", err
		}
		out[positions[i]] = c
	}

	return string(out), nil
}

func randByte(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("failed to read randomness: %w", err)
	}
	return charset[n.Int64()], nil
}

// distinctPositions picks count distinct indices in [0, length).
func distinctPositions(count, length int) ([]int, error) {
	perm := make([]int, length)
	for i := range perm {
		perm[i] = i
	}
	// Fisher–Yates over the index slice, driven by crypto/rand.
	for i := length - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return nil, fmt.Errorf("failed to read randomness: %w", err)
		}
		perm[i], perm[j.Int64()] = perm[j.Int64()], perm[i]
	}
	return perm[:count], nil
}
