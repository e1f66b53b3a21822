package storage

import (
	"os"

	"github.com/nikbrunner/bmlaunch/internal/importer"
	"github.com/nikbrunner/bmlaunch/internal/model"
)

// HTMLSource reads a Netscape bookmark export as produced by browsers.
type HTMLSource struct {
	path string
}

// NewHTMLSource creates an HTMLSource for the given file path.
func NewHTMLSource(path string) *HTMLSource {
	return &HTMLSource{path: path}
}

// Path returns the source file path.
func (s *HTMLSource) Path() string {
	return s.path
}

// Load parses the export. Folders become groups, flattened in the order
// they first appear.
func (s *HTMLSource) Load() ([]model.Bookmark, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, ioError(err)
	}
	defer file.Close()

	groups, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		return nil, parseError(err)
	}
	return model.Flatten(groups), nil
}
