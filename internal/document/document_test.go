package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDocument(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "Notes.md", want: true},
		{name: "a.md", want: true},
		{name: "notes.txt", want: false},
		{name: "Readme", want: false},
		{name: "UPPER.MD", want: false},
		{name: "Index.md", want: false},
		{name: "index.md", want: true},
		{name: "archive.md.bak", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDocument(tt.name, DefaultExtension, "Index.md"))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Notes", DisplayName("Notes.md", DefaultExtension))
	assert.Equal(t, "v1.2 changes", DisplayName("v1.2 changes.md", DefaultExtension))
	assert.Equal(t, "double", DisplayName("double.md", DefaultExtension))
	assert.Equal(t, "", DisplayName(".md", DefaultExtension))
}

func TestLinkTarget(t *testing.T) {
	tests := []struct {
		relative string
		want     string
	}{
		{relative: "a.md", want: "a.md"},
		{relative: filepath.Join("sub", "b.md"), want: "sub/b.md"},
		{relative: `sub\deeper\c.md`, want: "sub/deeper/c.md"},
		{relative: `mixed/sub\d.md`, want: "mixed/sub/d.md"},
	}
	for _, tt := range tests {
		t.Run(tt.relative, func(t *testing.T) {
			assert.Equal(t, tt.want, LinkTarget(tt.relative))
		})
	}
}

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
		found  bool
	}{
		{name: "ATX", source: "# Getting Started\n\nText.\n", want: "Getting Started", found: true},
		{name: "Nested", source: "Intro line.\n\n### Deep *emphasis*\n\n# Later\n", want: "Deep emphasis", found: true},
		{name: "Setext", source: "Overview\n========\n", want: "Overview", found: true},
		{name: "None", source: "just text\n\n- a list\n", found: false},
		{name: "Empty", source: "", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			heading, found := FirstHeading([]byte(tt.source))
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, heading)
		})
	}
}

func TestStripStandardizedId(t *testing.T) {
	assert.Equal(t, "notes", StripStandardizedId("notes.md.23352M4R96Z.ndoc", DefaultExtension))
	assert.Equal(t, "report", StripStandardizedId("report.23352M4R96Z.ndoc", DefaultExtension))
	assert.Equal(t, "plain", StripStandardizedId("plain", DefaultExtension))
	assert.Equal(t, "no.id.here", StripStandardizedId("no.id.here", DefaultExtension))
	assert.Equal(t, ".23352M4R96Z.ndoc", StripStandardizedId(".23352M4R96Z.ndoc", DefaultExtension))
}

func TestLabeler(t *testing.T) {
	dir := t.TempDir()
	withHeading := filepath.Join(dir, "guide.md")
	require.NoError(t, os.WriteFile(withHeading, []byte("# The Guide\n\nbody\n"), 0644))
	withoutHeading := filepath.Join(dir, "plain.md")
	require.NoError(t, os.WriteFile(withoutHeading, []byte("no heading at all\n"), 0644))

	byName := Labeler{Extension: DefaultExtension}
	label, err := byName.Label("guide.md", withHeading)
	require.NoError(t, err)
	assert.Equal(t, "guide", label)

	byHeading := Labeler{Extension: DefaultExtension, Mode: HeadingLabels}
	label, err = byHeading.Label("guide.md", withHeading)
	require.NoError(t, err)
	assert.Equal(t, "The Guide", label)

	label, err = byHeading.Label("plain.md", withoutHeading)
	require.NoError(t, err)
	assert.Equal(t, "plain", label)

	_, err = byHeading.Label("gone.md", filepath.Join(dir, "gone.md"))
	assert.Error(t, err)
}
