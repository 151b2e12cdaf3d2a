package docindex

import (
	"io"
	"path/filepath"

	"github.com/n2code/docindex/internal/config"
	"github.com/n2code/docindex/internal/document"
	"github.com/n2code/docindex/internal/markdown"
	"github.com/n2code/docindex/internal/output"
	"github.com/n2code/docindex/internal/scan"
)

type VerbosityLevel int

// CreateConfig holds a set of common configuration switches that concern all calls to the docindex API.
// The zero value is a sensible default except for Settings which should start from config.Default().
type CreateConfig struct {
	Verbosity    VerbosityLevel
	Settings     config.Settings
	AllowEscapes bool      //use terminal escape sequences for formatting
	Out          io.Writer //defaults to standard output
	ErrOut       io.Writer //defaults to standard error
}

const (
	DefaultVerbosity VerbosityLevel = iota //normal level of information, all noteworthy facts without too much noise
	VerboseMode                            //exhaustive information about what is happening
	QuietMode                              //only output errors and information that was explicitly requested
)

// New creates an indexer for the given root directory.
// The root is not checked here, a missing or unreadable root surfaces as error of the first scan.
func New(root string, config CreateConfig) (Indexer, error) {
	if err := config.Settings.Validate(); err != nil {
		return nil, newCommandError("invalid settings", err)
	}
	return makeIndexer(mustAbsFilepath(root), config), nil
}

type indexer struct {
	root     string //absolute, system-native path
	settings config.Settings
	walker   scan.Walker
	header   markdown.Header
	printer  output.Printer
	written  *uint64 //digest of the content last written by this indexer, nil before the first write
}

func makeIndexer(root string, cfg CreateConfig) (instance *indexer) {
	instance = &indexer{
		root:     root,
		settings: cfg.Settings,
		header:   markdown.Header{Title: cfg.Settings.Title, Intro: cfg.Settings.Intro},
	}

	classes := []output.Class{output.Required, output.Error}
	switch cfg.Verbosity {
	case VerboseMode:
		classes = append(classes, output.Verbose)
		fallthrough
	case DefaultVerbosity:
		classes = append(classes, output.Normal)
	}
	instance.printer = output.NewPrinter(classes, cfg.AllowEscapes, cfg.Out, cfg.ErrOut)

	labeler := document.Labeler{Extension: cfg.Settings.Extension, StripIds: cfg.Settings.StripIds}
	if cfg.Settings.Labels == config.LabelsFromHeading {
		labeler.Mode = document.HeadingLabels
	}
	instance.walker = scan.Walker{
		Lister: scan.FilesystemLister{Sorted: cfg.Settings.Order != config.OrderByFilesystem},
		Filter: scan.Filter{
			Extension:      cfg.Settings.Extension,
			ReservedName:   cfg.Settings.Output,
			Exclude:        cfg.Settings.Exclude,
			FollowSymlinks: cfg.Settings.FollowSymlinks,
		},
		Labeler: labeler,
		Skipped: func(relativePath string, reason string) {
			instance.Print(output.Verbose, "Skipping %s (%s)\n", relativePath, reason)
		},
	}
	return
}

func (ix *indexer) Print(class output.Class, format string, values ...interface{}) {
	ix.printer.Out(class, format, values...)
}

func (ix *indexer) OutputPath() string {
	return filepath.Join(ix.root, ix.settings.Output)
}
