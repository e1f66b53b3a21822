package storage

import (
	"database/sql"
	"os"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/bmlaunch/internal/model"
)

// sqliteGroup names the single group a bm database is read as.
const sqliteGroup = "bookmarks"

// SQLiteSource reads bookmarks from a bm SQLite database.
// The database is opened read-only in spirit: only SELECTs run,
// with query_only enabled on the connection.
type SQLiteSource struct {
	path string
	opts Options
}

// NewSQLiteSource creates a SQLiteSource for the given database path.
func NewSQLiteSource(path string, opts Options) *SQLiteSource {
	return &SQLiteSource{path: path, opts: opts}
}

// Path returns the database file path.
func (s *SQLiteSource) Path() string {
	return s.path
}

// Load reads all bookmarks ordered by creation time.
func (s *SQLiteSource) Load() ([]model.Bookmark, error) {
	// sql.Open would happily create a missing database
	if _, err := os.Stat(s.path); err != nil {
		return nil, ioError(err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, ioError(err)
	}
	defer db.Close()

	// Pragmas are per connection
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, ioError(err)
		}
	}

	rows, err := db.Query(`
		SELECT title, url
		FROM bookmarks
		ORDER BY created_at, rowid
	`)
	if err != nil {
		return nil, parseError(err)
	}
	defer rows.Close()

	bookmarks := []model.Bookmark{}
	for i := 0; rows.Next(); i++ {
		var title, url sql.NullString
		if err := rows.Scan(&title, &url); err != nil {
			return nil, parseError(err)
		}

		b := model.NewBookmark(title.String, url.String)
		if !b.Valid() {
			field := "title"
			if b.Name != "" {
				field = "url"
			}
			if err := s.opts.reject(&SchemaError{Group: sqliteGroup, Index: i, Field: field, Reason: "empty"}); err != nil {
				return nil, err
			}
			continue
		}

		bookmarks = append(bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, parseError(err)
	}

	return bookmarks, nil
}
