package domain

// CacheEntry is one record of the build cache: a tracked file path and the
// fingerprint observed for it during the last build pass.
//
// The fingerprint is the file's modification time in unix seconds in mtime
// mode, or the xxhash64 of its contents in hash mode. The two modes share the
// same persisted shape, so switching modes simply makes every entry read as
// changed once.
type CacheEntry struct {
	Path        string
	Fingerprint uint64
}
