// Package token owns the bearer credential's lifecycle. The Holder is the
// single source of truth for which credential, if any, outbound calls carry.
package token

// Store persists the credential in one backing location. An empty string
// means "no credential".
type Store interface {
	// Load returns the persisted credential, or "" when none is stored.
	Load() (string, error)
	// Save persists the credential, replacing any previous value.
	Save(value string) error
	// Clear removes the persisted credential. Clearing an empty store is a no-op.
	Clear() error
}
