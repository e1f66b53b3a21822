package importer

import (
	"io"
	"strings"

	"github.com/nikbrunner/bmlaunch/internal/model"
	"golang.org/x/net/html"
)

// RootGroup names the group holding bookmarks that sit outside any folder.
const RootGroup = ""

// ParseHTMLBookmarks parses Netscape bookmark HTML into groups.
// Each folder becomes a group named by its path ("Development/React");
// groups are ordered by first appearance in the document.
func ParseHTMLBookmarks(r io.Reader) ([]model.Group, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var groups []model.Group
	positions := make(map[string]int)

	groupFor := func(path string) *model.Group {
		i, ok := positions[path]
		if !ok {
			groups = append(groups, model.Group{Name: path})
			i = len(groups) - 1
			positions[path] = i
		}
		return &groups[i]
	}

	// Track current folder stack for hierarchy
	var folderStack []string
	var pendingFolder *string // folder waiting to be pushed on next DL

	current := func() string {
		if len(folderStack) == 0 {
			return RootGroup
		}
		return folderStack[len(folderStack)-1]
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				name := getTextContent(n)
				if name != "" {
					path := name
					if parent := current(); parent != RootGroup {
						path = parent + "/" + name
					}
					groupFor(path)
					pendingFolder = &path
				}
				return

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					// Anchors without a URL are not bookmarks
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href
				}

				g := groupFor(current())
				g.Bookmarks = append(g.Bookmarks, model.NewBookmark(title, href))
				return

			case "dl":
				// A DL holds the contents of the folder declared just before it
				pushedFolder := false
				if pendingFolder != nil {
					folderStack = append(folderStack, *pendingFolder)
					pendingFolder = nil
					pushedFolder = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushedFolder && len(folderStack) > 0 {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return groups, nil
}

// getTextContent returns the trimmed text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
