package model

// Group is a named folder of bookmarks as it appears in a source document.
type Group struct {
	Name      string
	Bookmarks []Bookmark
}

// Flatten returns the bookmarks of all groups as one slice,
// in group order and then in bookmark order.
func Flatten(groups []Group) []Bookmark {
	n := 0
	for _, g := range groups {
		n += len(g.Bookmarks)
	}

	result := make([]Bookmark, 0, n)
	for _, g := range groups {
		result = append(result, g.Bookmarks...)
	}
	return result
}
