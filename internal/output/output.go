// Package output writes launcher items in the formats launcher hosts and
// terminals understand.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/bmlaunch/internal/launcher"
)

// Renderer writes items to w.
type Renderer interface {
	Render(w io.Writer, items []launcher.Item) error
}

// Alfred renders the script filter JSON format.
type Alfred struct{}

type alfredItem struct {
	UID      string `json:"uid,omitempty"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg"`
	Valid    bool   `json:"valid"`
}

type alfredOutput struct {
	Items []alfredItem `json:"items"`
}

// Render implements Renderer.
func (Alfred) Render(w io.Writer, items []launcher.Item) error {
	out := alfredOutput{Items: make([]alfredItem, len(items))}
	for i, item := range items {
		out.Items[i] = alfredItem{
			UID:      item.UID,
			Title:    item.Title,
			Subtitle: item.Subtitle,
			Arg:      item.Arg,
			Valid:    true,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

// Text renders items as a plain list for terminals:
//
//	Title
//	   https://link  (Subtitle)
type Text struct{}

// Render implements Renderer.
func (Text) Render(w io.Writer, items []launcher.Item) error {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(titleStyle.Render(item.Title))
		b.WriteString("\n   ")
		b.WriteString(urlStyle.Render(item.Arg))
		b.WriteString("  ")
		b.WriteString(subtitleStyle.Render("(" + item.Subtitle + ")"))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
