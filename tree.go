package docindex

import (
	"path/filepath"

	"github.com/n2code/docindex/internal/document"
	out "github.com/n2code/docindex/internal/output"
	"github.com/n2code/docindex/internal/scan"
)

func (ix *indexer) PrintTree() error {
	tree, err := ix.scan()
	if err != nil {
		return err
	}

	visual := out.NewVisualFileTree(ix.root + " [index root]")
	tree.Visit(func(dir *scan.Directory) {
		visual.InsertDir(dir.RelativePath)
	}, func(doc *document.Document) {
		suffix := ""
		if doc.Label != document.DisplayName(doc.Name, ix.settings.Extension) {
			suffix = ix.printer.Sprintf(" %s\"%s\"%s", out.Dim, doc.Label, out.Reset)
		}
		relative, _ := filepath.Rel(ix.root, doc.AbsolutePath) //error impossible because both are rooted
		visual.InsertPath(filepath.ToSlash(relative), "", suffix)
	})

	ix.Print(out.Required, "%s", visual.Render())
	if documents, _ := tree.Count(); documents == 0 {
		ix.Print(out.Normal, "No documents found.\n")
	}
	return nil
}
