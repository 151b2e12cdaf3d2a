package scan

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FilesystemLister reads directories from the local filesystem.
// Unless Sorted is set entries are reported in the order the operating system enumerates them.
type FilesystemLister struct {
	Sorted bool
}

func (l FilesystemLister) List(directory string) ([]Entry, error) {
	var dirEntries []fs.DirEntry
	var err error
	if l.Sorted {
		dirEntries, err = os.ReadDir(directory)
	} else {
		dirEntries, err = readDirUnsorted(directory)
	}
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		entries = append(entries, Entry{Name: dirEntry.Name(), Kind: kindOf(dirEntry.Type())})
	}
	return entries, nil
}

func (l FilesystemLister) Follow(path string) (Kind, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return OtherKind, err
	}
	return kindOf(stat.Mode().Type()), nil
}

func (l FilesystemLister) Canonical(directory string) (string, error) {
	return filepath.EvalSymlinks(directory)
}

func readDirUnsorted(directory string) ([]fs.DirEntry, error) {
	dir, err := os.Open(directory)
	if err != nil {
		return nil, err
	}
	defer dir.Close()
	return dir.ReadDir(-1)
}

func kindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsDir():
		return DirectoryKind
	case mode.IsRegular():
		return FileKind
	case mode&fs.ModeSymlink != 0:
		return SymlinkKind
	default:
		return OtherKind
	}
}
