package document

import (
	"path/filepath"
	"strings"
)

// IsDocument tells whether a filename qualifies for the index.
// The extension match is case-sensitive and the reserved name (the index itself) never qualifies.
func IsDocument(name string, extension string, reservedName string) bool {
	return strings.HasSuffix(name, extension) && name != reservedName
}

// DisplayName strips the document extension from the filename.
func DisplayName(name string, extension string) string {
	return strings.TrimSuffix(name, extension)
}

// LinkTarget turns a root-relative path into a portable link target.
// Backslashes are rewritten even on systems where they are no separator.
func LinkTarget(relativePath string) string {
	return strings.ReplaceAll(filepath.ToSlash(relativePath), `\`, "/")
}
