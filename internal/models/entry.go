// Package models defines the persisted record types of the vault.
package models

// Entry is one stored credential record. EncryptedSecret is the base64
// encoding of IV || ciphertext produced by the cipher engine; the model
// never carries a plaintext secret.
type Entry struct {
	ID              int64
	Website         string
	Username        string
	EncryptedSecret string
	Description     string
	Category        string
}

// Item is the view of an entry handed to a display surface. Secret is
// either the fixed-length mask or the decrypted plaintext, depending on
// which listing produced it.
type Item struct {
	Website     string
	Username    string
	Secret      string
	Description string
	Category    string
}
