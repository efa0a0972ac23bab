package ports

// Fingerprinter computes the change-detection fingerprint of a file.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns the current fingerprint of the file at path.
	// It fails if the file cannot be inspected; a build cannot proceed
	// without knowing source state.
	Fingerprint(path string) (uint64, error)
}
