package docindex

import (
	"github.com/n2code/docindex/internal/config"
	"github.com/n2code/docindex/internal/markdown"
	out "github.com/n2code/docindex/internal/output"
	"github.com/n2code/docindex/internal/persistency"
	"github.com/n2code/docindex/internal/scan"
)

// BuildIndex composes the index of the given root directory using the default settings.
func BuildIndex(root string) (string, error) {
	return makeIndexer(mustAbsFilepath(root), CreateConfig{Settings: config.Default(), Verbosity: QuietMode}).Build()
}

func (ix *indexer) scan() (*scan.Directory, error) {
	tree, err := ix.walker.Walk(ix.root)
	if err != nil {
		return nil, newCommandError("scanning failed", err)
	}
	if ix.printer.Enabled(out.Verbose) {
		documents, directories := tree.Count()
		ix.Print(out.Verbose, "Indexed %d %s in %d %s below %s\n",
			documents, out.Plural(documents, "document", "documents"),
			directories, out.Plural(directories, "directory", "directories"),
			ix.root)
	}
	return tree, nil
}

func (ix *indexer) Build() (string, error) {
	tree, err := ix.scan()
	if err != nil {
		return "", err
	}
	return markdown.Compose(tree, ix.header), nil
}

func (ix *indexer) Generate() (changed bool, err error) {
	return ix.generate(true)
}

// generate writes the index unless it is unchanged and rewriting is not enforced.
// Without enforcement the content is compared to what this indexer wrote last, falling back to the file.
func (ix *indexer) generate(alwaysWrite bool) (changed bool, err error) {
	content, err := ix.Build()
	if err != nil {
		return false, err
	}
	digest := persistency.Digest([]byte(content))
	target := ix.OutputPath()
	if !alwaysWrite && ix.written != nil && *ix.written == digest {
		ix.Print(out.Verbose, "%s is up to date\n", ix.displayablePath(target))
		return false, nil
	}
	unchanged, err := persistency.MatchesLocalFile(target, []byte(content))
	if err != nil {
		if !alwaysWrite {
			return false, newCommandError("reading previous index failed", err)
		}
		ix.Print(out.Verbose, "Previous %s not readable, overwriting it: %s\n", ix.displayablePath(target), err)
		unchanged = false
	}
	if unchanged && !alwaysWrite {
		ix.written = &digest
		ix.Print(out.Verbose, "%s is up to date\n", ix.displayablePath(target))
		return false, nil
	}
	if err := persistency.SaveToLocalFile(target, []byte(content)); err != nil {
		return false, newCommandError("writing index failed", err)
	}
	ix.written = &digest
	ix.Print(out.Normal, "%s%s has been generated successfully!%s\n", out.Green, ix.settings.Output, out.Reset)
	if unchanged {
		ix.Print(out.Verbose, "Content of %s did not change\n", ix.displayablePath(target))
	}
	return !unchanged, nil
}

func (ix *indexer) Check() (current bool, err error) {
	content, err := ix.Build()
	if err != nil {
		return false, err
	}
	target := ix.OutputPath()
	current, err = persistency.MatchesLocalFile(target, []byte(content))
	if err != nil {
		return false, newCommandError("reading index failed", err)
	}
	if current {
		ix.Print(out.Normal, "%s is up to date\n", ix.displayablePath(target))
	} else {
		ix.Print(out.Normal, "%s%s is out of date%s\n", out.Yellow, ix.displayablePath(target), out.Reset)
	}
	return current, nil
}
