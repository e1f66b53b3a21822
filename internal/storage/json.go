package storage

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/nikbrunner/bmlaunch/internal/model"
)

// ParseJSON parses a bookmarks document of the form
//
//	{"Group": [{"title": "...", "href": "..."}, ...], ...}
//
// and flattens it in document order: groups as they appear, then
// bookmarks within each group. Unknown entry fields are ignored.
func ParseJSON(data []byte, opts Options) ([]model.Bookmark, error) {
	groups, err := ParseJSONGroups(data, opts)
	if err != nil {
		return nil, err
	}
	return model.Flatten(groups), nil
}

// ParseJSONGroups parses the document like ParseJSON but keeps the grouping.
func ParseJSONGroups(data []byte, opts Options) ([]model.Group, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, parseError(err)
	}

	if kind(raw) != '{' {
		return nil, &SchemaError{Index: -1, Reason: "top level is not an object"}
	}

	// Go maps lose key order, the ordered map keeps it
	doc := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, parseError(err)
	}

	groups := make([]model.Group, 0, doc.Len())
	for pair := doc.Oldest(); pair != nil; pair = pair.Next() {
		group, ok, err := parseGroup(pair.Key, pair.Value, opts)
		if err != nil {
			return nil, err
		}
		if ok {
			groups = append(groups, group)
		}
	}

	return groups, nil
}

// parseGroup decodes one group's bookmark array.
// ok is false when the whole group was skipped.
func parseGroup(name string, value json.RawMessage, opts Options) (model.Group, bool, error) {
	group := model.Group{Name: name}

	if kind(value) != '[' {
		err := opts.reject(&SchemaError{Group: name, Index: -1, Reason: "group is not an array"})
		return group, false, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(value, &entries); err != nil {
		return group, false, parseError(err)
	}

	group.Bookmarks = make([]model.Bookmark, 0, len(entries))
	for i, entry := range entries {
		b, schemaErr := parseEntry(entry)
		if schemaErr != nil {
			schemaErr.Group = name
			schemaErr.Index = i
			if err := opts.reject(schemaErr); err != nil {
				return group, false, err
			}
			continue
		}
		group.Bookmarks = append(group.Bookmarks, b)
	}

	return group, true, nil
}

func parseEntry(entry json.RawMessage) (model.Bookmark, *SchemaError) {
	if kind(entry) != '{' {
		return model.Bookmark{}, &SchemaError{Reason: "entry is not an object"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil {
		return model.Bookmark{}, &SchemaError{Reason: err.Error()}
	}

	name, err := stringField(fields, "title")
	if err != nil {
		return model.Bookmark{}, err
	}
	link, err := stringField(fields, "href")
	if err != nil {
		return model.Bookmark{}, err
	}

	return model.NewBookmark(name, link), nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, *SchemaError) {
	raw, ok := fields[key]
	if !ok {
		return "", &SchemaError{Field: key, Reason: "missing"}
	}
	if kind(raw) != '"' {
		return "", &SchemaError{Field: key, Reason: "not a string"}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &SchemaError{Field: key, Reason: err.Error()}
	}
	if s == "" {
		return "", &SchemaError{Field: key, Reason: "empty"}
	}
	return s, nil
}

// kind returns the first significant byte of a JSON value,
// which identifies its type ('{', '[', '"', ...), or 0 for empty input.
func kind(raw []byte) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
