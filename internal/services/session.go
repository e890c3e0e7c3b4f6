// Package services contains the application services of Lockbox: the
// authentication manager with its lockout policy, and the entry service
// that encrypts and decrypts credential records.
package services

import (
	"github.com/alexkarpovs/lockbox/internal/common"
	"github.com/google/uuid"
)

// Session represents one unlocked vault session. It is created exactly
// once per successful unlock, owns the derived 32-byte key, and lends it
// by reference to encrypt/decrypt calls. Close wipes the key; nothing
// must hold a copy past that point.
type Session struct {
	id  string
	key []byte
}

func newSession(key []byte) *Session {
	return &Session{id: uuid.NewString(), key: key}
}

// ID is a random identifier used only for logging; it carries no secret.
func (s *Session) ID() string {
	return s.id
}

// Key returns the session key by reference. Callers must not retain it.
func (s *Session) Key() []byte {
	return s.key
}

// Active reports whether the session still holds a key.
func (s *Session) Active() bool {
	return s != nil && s.key != nil
}

// Close irrecoverably discards the session key by zeroing its memory.
// Safe to call more than once.
func (s *Session) Close() {
	if s == nil {
		return
	}
	common.WipeByteArray(s.key)
	s.key = nil
}

// rotate swaps in a new key, wiping the old one. Used after a
// master-password change so the open session keeps working.
func (s *Session) rotate(newKey []byte) {
	common.WipeByteArray(s.key)
	s.key = newKey
}
