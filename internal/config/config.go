package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"

	"github.com/n2code/docindex/internal/document"
	"github.com/n2code/docindex/internal/markdown"
)

// DefaultFileName is looked up in the index root unless another settings file is given.
const DefaultFileName = ".docindex.toml"

const (
	OrderByName       = "name"
	OrderByFilesystem = "filesystem"

	LabelsFromFilename = "filename"
	LabelsFromHeading  = "heading"
)

// Settings control what gets indexed and how the index looks.
type Settings struct {
	Output         string   `toml:"output"`
	Title          string   `toml:"title"`
	Intro          string   `toml:"intro"`
	Extension      string   `toml:"extension"`
	Exclude        []string `toml:"exclude"`
	Order          string   `toml:"order"`
	FollowSymlinks bool     `toml:"follow_symlinks"`
	Labels         string   `toml:"labels"`
	StripIds       bool     `toml:"strip_ids"`
}

func Default() Settings {
	return Settings{
		Output:    "Index.md",
		Title:     markdown.DefaultTitle,
		Intro:     markdown.DefaultIntro,
		Extension: document.DefaultExtension,
		Order:     OrderByName,
		Labels:    LabelsFromFilename,
	}
}

// Load reads the settings file at the given path on top of the defaults.
// A missing file is not an error and yields the defaults. Unknown keys are rejected.
func Load(path string) (Settings, error) {
	settings := Default()
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("reading settings failed: %w", err)
	}
	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&settings); err != nil {
		return settings, fmt.Errorf("parsing settings file %s failed: %w", path, err)
	}
	return settings, nil
}

func (s Settings) Validate() error {
	if s.Output == "" {
		return fmt.Errorf("output file name is required")
	}
	if s.Output != filepath.Base(s.Output) || strings.ContainsAny(s.Output, `/\`) || s.Output == "." || s.Output == ".." {
		return fmt.Errorf("output must be a plain file name: %s", s.Output)
	}
	if !strings.HasPrefix(s.Extension, ".") || len(s.Extension) < 2 {
		return fmt.Errorf("extension must start with a dot: %q", s.Extension)
	}
	switch s.Order {
	case OrderByName, OrderByFilesystem:
	default:
		return fmt.Errorf("unknown order %q (expected %q or %q)", s.Order, OrderByName, OrderByFilesystem)
	}
	switch s.Labels {
	case LabelsFromFilename, LabelsFromHeading:
	default:
		return fmt.Errorf("unknown labels %q (expected %q or %q)", s.Labels, LabelsFromFilename, LabelsFromHeading)
	}
	for _, pattern := range s.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("bad exclude pattern: %s", pattern)
		}
	}
	return nil
}
