package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/bmlaunch/internal/model"
)

// Source loads a bookmark collection. Sources only ever read.
type Source interface {
	Load() ([]model.Bookmark, error)
	Path() string
}

// JSONSource reads a JSON document mapping group names to bookmark arrays.
type JSONSource struct {
	path string
	opts Options
}

// NewJSONSource creates a JSONSource for the given file path.
func NewJSONSource(path string, opts Options) *JSONSource {
	return &JSONSource{path: path, opts: opts}
}

// Path returns the source file path.
func (s *JSONSource) Path() string {
	return s.path
}

// Load reads and parses the JSON file.
func (s *JSONSource) Load() ([]model.Bookmark, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, ioError(err)
	}
	return ParseJSON(data, s.opts)
}

// Open returns the source matching the file extension of path.
// Netscape HTML exports and bm SQLite databases are recognised;
// everything else is read as JSON.
func Open(path string, opts Options) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return NewHTMLSource(path)
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteSource(path, opts)
	default:
		return NewJSONSource(path, opts)
	}
}
