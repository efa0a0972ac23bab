package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheCorrupted is returned when the persisted build cache exists
	// but contains a structurally invalid line. There is no line-level
	// recovery; the cache must be deleted or fixed before the next run.
	ErrCacheCorrupted = zerr.New("build cache is corrupted")

	// ErrCommandFailed is returned when an external compiler or linker
	// invocation exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrNoSourceDirs is returned when the project configuration names no
	// source directories.
	ErrNoSourceDirs = zerr.New("no source directories configured")

	// ErrUnknownStaleMode is returned when the configured staleness mode
	// is neither "mtime" nor "hash".
	ErrUnknownStaleMode = zerr.New("unknown staleness mode")
)
