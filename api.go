package docindex

import "context"

// Indexer lets you generate the index of a directory tree. Retrieve one using New.
type Indexer interface {

	// Build scans the root directory and composes the index text without writing anything.
	// The output file itself is never linked, neither are files of the same name in subdirectories.
	Build() (string, error)

	// Generate builds the index and overwrites the output file in the root directory.
	// It reports whether the content differs from what was there before.
	Generate() (changed bool, err error)

	// Check builds the index and compares it to the existing output file without writing anything.
	Check() (current bool, err error)

	// PrintTree prints all indexed directories and documents as a tree.
	PrintTree() error

	// Watch generates the index and regenerates it whenever something below the root changes.
	// It blocks until the context is done or an error occurs.
	Watch(ctx context.Context) error

	// OutputPath yields the absolute path of the output file.
	OutputPath() string
}
