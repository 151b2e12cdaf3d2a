package document

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/n2code/ndocid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//represents name.23456X777.ndoc or name.ext.23456X777.ndoc (extension already removed)
var standardizedNameRegex = regexp.MustCompile(`^(.*)\.([0-9A-Za-z]+)\.ndoc$`)

// Labeler derives the visible link text of a document.
type Labeler struct {
	Extension string
	Mode      LabelMode
	StripIds  bool
}

// Label computes the label of the given file. Reading the file is only necessary for heading labels.
func (l Labeler) Label(name string, absolutePath string) (string, error) {
	label := DisplayName(name, l.Extension)
	if l.Mode == HeadingLabels {
		content, err := os.ReadFile(absolutePath)
		if err != nil {
			return "", fmt.Errorf("reading document failed: %w", err)
		}
		if heading, found := FirstHeading(content); found {
			return heading, nil
		}
	}
	if l.StripIds {
		label = StripStandardizedId(label, l.Extension)
	}
	return label, nil
}

// StripStandardizedId removes the ID part of a standardized name (extension already removed),
// e.g. "notes.md.23352M4R96Z.ndoc" becomes "notes" for the extension ".md".
// Names which merely look similar but do not carry a decodable ID are returned unchanged.
func StripStandardizedId(label string, extension string) string {
	matches := standardizedNameRegex.FindStringSubmatch(label)
	if matches == nil || matches[1] == "" {
		return label
	}
	if _, err, _ := ndocid.Decode(matches[2]); err != nil {
		return label
	}
	if withoutDoubledExtension := strings.TrimSuffix(matches[1], extension); withoutDoubledExtension != "" {
		return withoutDoubledExtension
	}
	return matches[1]
}

// FirstHeading yields the text of the first heading of any level in the markdown source.
func FirstHeading(source []byte) (heading string, found bool) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			heading = strings.TrimSpace(string(h.Text(source)))
			if heading != "" {
				found = true
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return
}
