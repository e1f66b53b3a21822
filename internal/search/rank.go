package search

import (
	"cmp"
	"slices"

	"github.com/nikbrunner/bmlaunch/internal/model"
)

// DisplayCap is the default maximum number of ranked results.
const DisplayCap = 10

// Result is a bookmark that matched a query.
type Result struct {
	Bookmark model.Bookmark
	Score    int
	Position int // index in the searched collection
}

// Rank scores every bookmark name against query, drops non-matches and
// returns the best matches first. Equal scores keep collection order.
// At most limit results are returned; limit <= 0 means DisplayCap.
// query must already be normalized (see NormalizeQuery).
func Rank(bookmarks []model.Bookmark, query string, scorer Scorer, limit int) []Result {
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DisplayCap
	}

	var results []Result
	for i, b := range bookmarks {
		if score := scorer.Score(b.Name, query); score > 0 {
			results = append(results, Result{Bookmark: b, Score: score, Position: i})
		}
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Position, b.Position)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Bookmarks returns the bookmarks of results in order.
func Bookmarks(results []Result) []model.Bookmark {
	bookmarks := make([]model.Bookmark, len(results))
	for i, r := range results {
		bookmarks[i] = r.Bookmark
	}
	return bookmarks
}
