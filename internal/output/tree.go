package output

import (
	"path"

	"github.com/disiqueira/gotree/v3"
)

// VisualFileTree collects slash-separated paths and renders them as a tree.
type VisualFileTree struct {
	tree gotree.Tree
	dirs map[string]gotree.Tree
}

func NewVisualFileTree(rootLabel string) VisualFileTree {
	return VisualFileTree{tree: gotree.New(rootLabel), dirs: make(map[string]gotree.Tree)}
}

func (t VisualFileTree) getDir(dirPath string) (dir gotree.Tree) {
	if dirPath == "." || dirPath == "" {
		return t.tree
	}
	dir = t.dirs[dirPath]
	if dir == nil {
		parentDir := t.getDir(path.Dir(dirPath))
		dir = parentDir.Add(path.Base(dirPath))
		t.dirs[dirPath] = dir
	}
	return
}

// InsertDir makes sure the directory shows up even if nothing is inserted below it.
func (t VisualFileTree) InsertDir(dirPath string) {
	t.getDir(dirPath)
}

func (t VisualFileTree) InsertPath(filePath string, nodePrefix string, nodeSuffix string) {
	dir := t.getDir(path.Dir(filePath))
	dir.Add(nodePrefix + path.Base(filePath) + nodeSuffix)
}

func (t VisualFileTree) Render() string {
	return t.tree.Print()
}
