package model

// Bookmark is a saved link with its display name.
// Bookmarks are plain values; two bookmarks are the same when both fields match.
type Bookmark struct {
	Name string `json:"title"`
	Link string `json:"href"`
}

// NewBookmark creates a Bookmark from a source entry's title and href.
func NewBookmark(name, link string) Bookmark {
	return Bookmark{Name: name, Link: link}
}

// Valid reports whether both fields are set.
func (b Bookmark) Valid() bool {
	return b.Name != "" && b.Link != ""
}
