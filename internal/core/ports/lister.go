package ports

// DirEntry is one entry of a listed directory.
type DirEntry struct {
	Name  string
	IsDir bool
}

// Lister enumerates directory entries. Listing is non-recursive.
//
//go:generate go run go.uber.org/mock/mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type Lister interface {
	// List returns the entries of dir. It fails if the directory cannot
	// be opened.
	List(dir string) ([]DirEntry, error)
}
