package output_test

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/golden"

	"github.com/nikbrunner/bmlaunch/internal/launcher"
	"github.com/nikbrunner/bmlaunch/internal/model"
	"github.com/nikbrunner/bmlaunch/internal/output"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func resultItems() []launcher.Item {
	return []launcher.Item{
		launcher.BookmarkItem(model.NewBookmark("GitHub", "https://github.com")),
		launcher.BookmarkItem(model.NewBookmark("GitLab", "https://gitlab.com")),
	}
}

func TestAlfred_Results(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, output.Alfred{}.Render(&buf, resultItems()))

	golden.Assert(t, buf.String(), "alfred_results.golden")
}

func TestAlfred_PlaceholderHasNoUID(t *testing.T) {
	items := []launcher.Item{launcher.NotFoundItem("<z>", "https://duckduckgo.com/?q=a&b=c")}

	var buf bytes.Buffer
	assert.NilError(t, output.Alfred{}.Render(&buf, items))

	// HTML-sensitive characters stay as typed
	golden.Assert(t, buf.String(), "alfred_placeholder.golden")
}

func TestAlfred_IsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, output.Alfred{}.Render(&buf, []launcher.Item{launcher.EmptyItem("https://duckduckgo.com")}))

	var decoded struct {
		Items []struct {
			Title string `json:"title"`
			Arg   string `json:"arg"`
		} `json:"items"`
	}
	assert.NilError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, len(decoded.Items), 1)
	assert.Equal(t, decoded.Items[0].Title, "Search for bookmarks")
	assert.Equal(t, decoded.Items[0].Arg, "https://duckduckgo.com")
}

func TestText_Render(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, output.Text{}.Render(&buf, resultItems()))

	want := "GitHub\n" +
		"   https://github.com  (Open in browser →)\n" +
		"GitLab\n" +
		"   https://gitlab.com  (Open in browser →)\n"
	assert.Equal(t, stripANSI(buf.String()), want)
}

func TestText_RenderNothing(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, output.Text{}.Render(&buf, nil))
	assert.Equal(t, buf.Len(), 0)
}
