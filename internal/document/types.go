package document

// DefaultExtension is the suffix of files recognized as documents.
const DefaultExtension = ".md"

// Document is a discovered file that gets linked from the index.
type Document struct {
	Name         string //pure filename without path information
	Label        string //visible link text
	Link         string //path relative to the index root, slash-separated regardless of OS
	AbsolutePath string //system-native
}

type LabelMode int

const (
	FilenameLabels LabelMode = iota //filename without the document extension
	HeadingLabels                   //first heading inside the document, filename as fallback
)
