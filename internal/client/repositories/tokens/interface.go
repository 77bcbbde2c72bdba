// Package tokens persists the session credential between console runs.
// It is the only client-owned storage: entity records are always re-fetched
// from the backend, never cached locally.
package tokens

import "context"

// Repository stores at most one current credential token.
type Repository interface {
	// Load returns the persisted token, or "" when none is stored.
	Load(ctx context.Context) (string, error)

	// Replace atomically swaps the stored token for the given one.
	Replace(ctx context.Context, token string) error

	// Clear removes any stored token.
	Clear(ctx context.Context) error
}
