// Package common defines shared sentinel errors and small byte-slice
// helpers used across Lockbox components. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Validation errors. Always recoverable, raised before any state change.
	ErrValidation      = errors.New("validation error")
	ErrWeakPassword    = errors.New("master password too weak")
	ErrUnknownCategory = errors.New("unknown category")

	// Cipher engine errors.
	ErrEncryption = errors.New("encryption error")
	ErrDecryption = errors.New("decryption error")

	// Authentication errors. A wrong password is a normal branch, not an
	// exceptional condition; ErrLockoutTriggered is terminal.
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrLockoutTriggered     = errors.New("lockout triggered, vault destroyed")
	ErrMasterExists         = errors.New("master password already set")
	ErrNoMasterCredential   = errors.New("master password not set")

	// Persistence-layer errors.
	ErrStorage  = errors.New("storage error")
	ErrNotFound = errors.New("not found")
)
