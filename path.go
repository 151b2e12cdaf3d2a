package docindex

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/n2code/docindex/internal"
)

const dot string = "."
const dirSeparator = string(filepath.Separator)
const dotDirSeparator = dot + dirSeparator
const doubleDot = dot + dot
const doubleDotDirSeparator = doubleDot + dirSeparator

func (ix *indexer) displayablePath(absolutePath string) string {
	return pleasantPath(filepath.Clean(absolutePath), mustGetwd())
}

func isChildOf(child string, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	internal.AssertNoError(err, "paths should both be absolute")
	return !(rel == dot || rel == doubleDot || strings.HasPrefix(rel, doubleDotDirSeparator))
}

// pleasantPath turns an absolute path into something easily understandable from the current context.
// Targets inside the working directory are emitted relative to it, with leading "./" to stress relativity.
// All other targets are reflected unchanged.
func pleasantPath(absolute string, wd string) string {
	if absolute == wd {
		return dot
	}
	if !isChildOf(absolute, wd) {
		return absolute
	}
	relative, _ := filepath.Rel(wd, absolute) //error impossible because both are rooted
	return dotDirSeparator + relative
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return wd
}

// mustAbsFilepath calls filepath.Abs and asserts that it is successful
func mustAbsFilepath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}
