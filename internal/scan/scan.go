package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/n2code/docindex/internal/document"
)

// Walker traverses a directory tree depth-first and collects all qualifying documents.
type Walker struct {
	Lister  Lister
	Filter  Filter
	Labeler document.Labeler
	// Skipped is notified about followed links which are left out because of a cycle. Optional.
	Skipped func(relativePath string, reason string)
}

// Walk scans the given root. Any listing error aborts the walk.
func (w *Walker) Walk(root string) (*Directory, error) {
	top := &Directory{Name: filepath.Base(root), AbsolutePath: root}
	visited := make(map[string]bool)
	if err := w.markVisited(top, visited); err != nil {
		return nil, err
	}
	if err := w.walkInto(top, visited); err != nil {
		return nil, err
	}
	return top, nil
}

func (w *Walker) markVisited(dir *Directory, visited map[string]bool) error {
	if !w.Filter.FollowSymlinks {
		return nil //without following links the directory tree cannot contain cycles
	}
	canonical, err := w.Lister.Canonical(dir.AbsolutePath)
	if err != nil {
		return fmt.Errorf("resolving directory %s failed: %w", dir.AbsolutePath, err)
	}
	if visited[canonical] {
		return errAlreadyVisited{canonical: canonical}
	}
	visited[canonical] = true
	return nil
}

type errAlreadyVisited struct {
	canonical string
}

func (e errAlreadyVisited) Error() string {
	return "directory already visited: " + e.canonical
}

func (w *Walker) walkInto(dir *Directory, visited map[string]bool) error {
	entries, err := w.Lister.List(dir.AbsolutePath)
	if err != nil {
		return fmt.Errorf("listing directory %s failed: %w", dir.AbsolutePath, err)
	}

	for _, entry := range entries {
		absolutePath := filepath.Join(dir.AbsolutePath, entry.Name)
		relativePath := path.Join(dir.RelativePath, entry.Name)

		kind := entry.Kind
		if kind == SymlinkKind {
			if !w.Filter.FollowSymlinks {
				continue
			}
			kind, err = w.Lister.Follow(absolutePath)
			if errors.Is(err, fs.ErrNotExist) {
				continue //dangling
			}
			if errors.Is(err, syscall.ELOOP) {
				w.skip(relativePath, "symbolic link loop")
				continue
			}
			if err != nil {
				return fmt.Errorf("following link %s failed: %w", absolutePath, err)
			}
		}

		if w.excluded(relativePath) {
			continue
		}

		switch kind {
		case DirectoryKind:
			sub := &Directory{Name: entry.Name, AbsolutePath: absolutePath, RelativePath: relativePath}
			if err := w.markVisited(sub, visited); err != nil {
				var again errAlreadyVisited
				if errors.As(err, &again) {
					w.skip(relativePath, "already indexed as "+again.canonical)
					continue
				}
				return err
			}
			dir.Items = append(dir.Items, Item{Directory: sub})
			if err := w.walkInto(sub, visited); err != nil {
				return err
			}
		case FileKind:
			if !document.IsDocument(entry.Name, w.Filter.Extension, w.Filter.ReservedName) {
				continue
			}
			label, err := w.Labeler.Label(entry.Name, absolutePath)
			if err != nil {
				return fmt.Errorf("labeling %s failed: %w", absolutePath, err)
			}
			dir.Items = append(dir.Items, Item{Document: &document.Document{
				Name:         entry.Name,
				Label:        label,
				Link:         document.LinkTarget(relativePath),
				AbsolutePath: absolutePath,
			}})
		}
	}
	return nil
}

func (w *Walker) skip(relativePath string, reason string) {
	if w.Skipped != nil {
		w.Skipped(relativePath, reason)
	}
}

func (w *Walker) excluded(relativePath string) bool {
	for _, pattern := range w.Filter.Exclude {
		if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
			return true
		}
	}
	return false
}

// Count yields the number of documents and subdirectories below the directory.
func (d *Directory) Count() (documents int, directories int) {
	for _, item := range d.Items {
		if item.Directory != nil {
			subDocuments, subDirectories := item.Directory.Count()
			documents += subDocuments
			directories += 1 + subDirectories
		} else {
			documents++
		}
	}
	return
}

// Visit calls the given functions for every item in traversal order (pre-order).
func (d *Directory) Visit(onDirectory func(*Directory), onDocument func(*document.Document)) {
	for _, item := range d.Items {
		if item.Directory != nil {
			onDirectory(item.Directory)
			item.Directory.Visit(onDirectory, onDocument)
		} else {
			onDocument(item.Document)
		}
	}
}
