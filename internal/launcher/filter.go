package launcher

import (
	"github.com/nikbrunner/bmlaunch/internal/logger"
	"github.com/nikbrunner/bmlaunch/internal/model"
	"github.com/nikbrunner/bmlaunch/internal/search"
)

// Params holds what Filter needs besides the bookmarks and the query.
type Params struct {
	Scorer           search.Scorer
	DefaultSearchURL string
	Limit            int // <= 0 means search.DisplayCap
}

// Filter turns a raw query into launcher items. It never returns an empty
// slice: without a query or without matches a single placeholder pointing
// at DefaultSearchURL is returned.
func Filter(bookmarks []model.Bookmark, rawQuery string, params Params) []Item {
	query := search.NormalizeQuery(rawQuery)
	if query == "" {
		logger.Debug("no query, showing placeholder")
		return []Item{EmptyItem(params.DefaultSearchURL)}
	}

	scorer := params.Scorer
	if scorer == nil {
		scorer = search.FuzzyScorer{}
	}

	results := search.Rank(bookmarks, query, scorer, params.Limit)
	logger.Debug("query %q: %d results from %d bookmarks", query, len(results), len(bookmarks))

	if len(results) == 0 {
		return []Item{NotFoundItem(query, params.DefaultSearchURL)}
	}

	items := make([]Item, len(results))
	for i, r := range results {
		items[i] = BookmarkItem(r.Bookmark)
	}
	return items
}
