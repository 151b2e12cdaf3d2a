package docindex

import (
	"context"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	out "github.com/n2code/docindex/internal/output"
	"github.com/n2code/docindex/internal/persistency"
	"github.com/n2code/docindex/internal/watch"
)

func (ix *indexer) Watch(ctx context.Context) error {
	if _, err := ix.generate(true); err != nil {
		return err
	}

	watcher, err := watch.New(watch.DefaultDebounce, ix.settings.FollowSymlinks, ix.isIrrelevantForWatch)
	if err != nil {
		return newCommandError("watch mode unavailable", err)
	}
	defer watcher.Close()
	if err := watcher.AddTree(ix.root); err != nil {
		return newCommandError("watch mode unavailable", err)
	}

	ix.Print(out.Normal, "Watching %s for changes (interrupt to stop)...\n", ix.displayablePath(ix.root))
	err = watcher.Run(ctx, func() error {
		_, err := ix.generate(false) //rewriting identical content would only cause churn
		return err
	})
	if err != nil {
		return newCommandError("watch mode aborted", err)
	}
	return nil
}

// isIrrelevantForWatch filters the index file, its work-in-progress copy, and excluded paths.
func (ix *indexer) isIrrelevantForWatch(absolute string) bool {
	target := ix.OutputPath()
	if absolute == target || absolute == target+persistency.WorkInProgressFileSuffix {
		return true
	}
	relative, err := filepath.Rel(ix.root, absolute)
	if err != nil {
		return false
	}
	relative = filepath.ToSlash(relative)
	for _, pattern := range ix.settings.Exclude {
		if matched, _ := doublestar.Match(pattern, relative); matched {
			return true
		}
	}
	return false
}
