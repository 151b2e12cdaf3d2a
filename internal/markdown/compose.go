// Package markdown renders the index document.
package markdown

import (
	"strings"

	"github.com/n2code/docindex/internal/document"
	"github.com/n2code/docindex/internal/scan"
)

const DefaultTitle = "Project Index"
const DefaultIntro = "Welcome! Click any link below to open the corresponding topic."

// Header is the fixed text preceding the generated link sections.
type Header struct {
	Title string
	Intro string
}

// Compose renders the complete index: root heading, introduction, and one section per visited directory.
// Every directory gets a second-level heading regardless of its depth.
func Compose(root *scan.Directory, header Header) string {
	var md strings.Builder
	md.WriteString("# " + header.Title + "\n\n")
	md.WriteString(header.Intro + "\n\n")
	root.Visit(func(dir *scan.Directory) {
		md.WriteString("\n## " + dir.Name + "\n")
	}, func(doc *document.Document) {
		md.WriteString(LinkLine(doc))
	})
	md.WriteString("\n")
	return md.String()
}

// LinkLine renders a single list item linking to the document.
func LinkLine(doc *document.Document) string {
	return "- [" + doc.Label + "](" + doc.Link + ")\n"
}
