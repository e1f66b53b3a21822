package model

import "github.com/google/uuid"

// UID returns a stable identifier for the bookmark derived from its link.
// The same link always yields the same UUID (version 5, URL namespace).
func (b Bookmark) UID() string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(b.Link)).String()
}
