// Package ports defines the core interfaces for the application.
package ports

// CacheStore defines the interface for the persisted path→fingerprint table.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Get returns the fingerprint recorded for path. ok is false when the
	// path has never been tracked.
	Get(path string) (fp uint64, ok bool)

	// Set records fp for path, overwriting any previous value for the
	// same path. A store never holds two entries for one path.
	Set(path string, fp uint64)

	// Len reports the number of tracked paths.
	Len() int

	// Dirty reports whether any entry changed since the store was loaded.
	Dirty() bool

	// Save serializes every entry back to the backing file, replacing its
	// previous contents.
	Save() error
}
