package domain

import "path/filepath"

// StaleMode selects how a file's fingerprint is computed.
type StaleMode string

const (
	// StaleModTime fingerprints a file by its modification time.
	StaleModTime StaleMode = "mtime"
	// StaleHash fingerprints a file by the xxhash64 of its contents.
	StaleHash StaleMode = "hash"
)

// Project describes one C project to build. It is produced by the config
// loader and consumed by the build driver.
type Project struct {
	// Compiler is the compiler executable, e.g. "cc" or "gcc".
	Compiler string
	// SrcDirs are the directories scanned for sources and headers.
	// Scanning is non-recursive, matching one directory per entry.
	SrcDirs []string
	// SrcExt is the source file extension without the dot, e.g. "c".
	SrcExt string
	// HeaderExt is the header file extension without the dot, e.g. "h".
	HeaderExt string
	// BinDir is the directory object files are written to. It is created
	// if missing.
	BinDir string
	// Out is the path of the linked binary.
	Out string
	// CFlags are extra arguments passed to every compile invocation.
	CFlags []string
	// LDFlags are extra arguments passed to the link invocation.
	LDFlags []string
	// Stale selects the fingerprint mode.
	Stale StaleMode
	// CacheFile is the path of the persisted build cache.
	CacheFile string
	// RebuildAll forces recompilation of every source file.
	RebuildAll bool
}

// ObjectPath derives the object file path for a source file name: the same
// basename with a .o extension, under BinDir.
func (p *Project) ObjectPath(srcName string) string {
	base := srcName[:len(srcName)-len(filepath.Ext(srcName))]
	return filepath.Join(p.BinDir, base+".o")
}
