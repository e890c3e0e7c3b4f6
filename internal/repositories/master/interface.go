// Package master persists the singleton master-credential record.
package master

import "context"

// Repository stores the master-password hash. At most one hash exists;
// its absence signals first-run setup.
type Repository interface {
	// Get returns the stored hash, or "" when no credential exists.
	Get(ctx context.Context) (string, error)

	// Set stores hash, replacing any previous value.
	Set(ctx context.Context, hash string) error

	// Clear removes the credential.
	Clear(ctx context.Context) error
}
