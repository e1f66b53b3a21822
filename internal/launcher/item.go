package launcher

import (
	"fmt"

	"github.com/nikbrunner/bmlaunch/internal/model"
)

// Subtitles shown under item titles.
const (
	SubtitleBookmark    = "Open in browser →"
	SubtitlePlaceholder = "Open them →"
)

// Item is one entry of launcher output.
type Item struct {
	UID      string // empty for placeholders
	Title    string
	Subtitle string
	Arg      string // URL opened when the item is chosen
}

// IsPlaceholder reports whether the item stands in for missing results.
func (i Item) IsPlaceholder() bool {
	return i.UID == ""
}

// BookmarkItem returns the item for a matched bookmark.
func BookmarkItem(b model.Bookmark) Item {
	return Item{
		UID:      b.UID(),
		Title:    b.Name,
		Subtitle: SubtitleBookmark,
		Arg:      b.Link,
	}
}

// EmptyItem returns the item shown before anything has been typed.
func EmptyItem(defaultSearchURL string) Item {
	return Item{
		Title:    "Search for bookmarks",
		Subtitle: SubtitlePlaceholder,
		Arg:      defaultSearchURL,
	}
}

// NotFoundItem returns the item shown when query matched nothing.
func NotFoundItem(query, defaultSearchURL string) Item {
	return Item{
		Title:    fmt.Sprintf("nothing found for %s, try search on website", query),
		Subtitle: SubtitlePlaceholder,
		Arg:      defaultSearchURL,
	}
}
