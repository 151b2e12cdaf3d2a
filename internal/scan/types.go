package scan

import "github.com/n2code/docindex/internal/document"

type Kind int

const (
	OtherKind Kind = iota //devices, sockets, pipes, ...
	FileKind
	DirectoryKind
	SymlinkKind
)

// Entry is a single directory listing result.
type Entry struct {
	Name string
	Kind Kind
}

// Lister abstracts directory access so that traversal order can be controlled.
type Lister interface {
	// List yields the immediate entries of the directory in the order that shall be reflected in the index.
	List(directory string) ([]Entry, error)
	// Follow reports the kind of the target of the symbolic link at the given path.
	Follow(path string) (Kind, error)
	// Canonical yields a unique representation of the given directory, symbolic links resolved.
	Canonical(directory string) (string, error)
}

// Directory is a visited directory along with everything indexed below it.
type Directory struct {
	Name         string
	AbsolutePath string //system-native
	RelativePath string //slash-separated, empty for the root
	Items        []Item
}

// Item is either a subdirectory or a document.
type Item struct {
	Directory *Directory
	Document  *document.Document
}

// Filter decides which entries make it into the index.
type Filter struct {
	Extension      string   //suffix of qualifying documents, case-sensitive
	ReservedName   string   //name of the index file which must never be linked
	Exclude        []string //doublestar patterns matched against the slash-separated relative path
	FollowSymlinks bool
}
