package picker

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/bmlaunch/internal/launcher"
	"github.com/nikbrunner/bmlaunch/internal/model"
)

func testItems() []launcher.Item {
	return []launcher.Item{
		launcher.BookmarkItem(model.NewBookmark("GitHub", "https://github.com")),
		launcher.BookmarkItem(model.NewBookmark("GitLab", "https://gitlab.com")),
	}
}

func press(p Picker, msg tea.KeyMsg) (Picker, tea.Cmd) {
	newModel, cmd := p.Update(msg)
	return newModel.(Picker), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(testItems(), "git")

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.items) != 2 {
		t.Errorf("expected 2 items, got %d", len(p.items))
	}
}

func TestPicker_NavigateDown(t *testing.T) {
	p, _ := press(New(testItems(), "git"), runes("j"))

	if p.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", p.cursor)
	}
}

func TestPicker_NavigateUp(t *testing.T) {
	p := New(testItems(), "git")
	p.cursor = 1

	p, _ = press(p, runes("k"))

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
}

func TestPicker_BoundsCheck(t *testing.T) {
	p := New(testItems()[:1], "git")

	p, _ = press(p, runes("k"))
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}

	p, _ = press(p, runes("j"))
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 (only 1 item), got %d", p.cursor)
	}
}

func TestPicker_ArrowKeys(t *testing.T) {
	p := New(testItems(), "git")

	p, _ = press(p, tea.KeyMsg{Type: tea.KeyDown})
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1 after down arrow, got %d", p.cursor)
	}

	p, _ = press(p, tea.KeyMsg{Type: tea.KeyUp})
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 after up arrow, got %d", p.cursor)
	}
}

func TestPicker_SelectItem(t *testing.T) {
	p := New(testItems(), "git")
	p.cursor = 1

	p, cmd := press(p, tea.KeyMsg{Type: tea.KeyEnter})

	if !p.selected {
		t.Error("expected selected to be true after Enter")
	}
	if cmd == nil {
		t.Error("expected quit command after selection")
	}

	item, ok := p.Selected()
	if !ok {
		t.Fatal("expected a selected item")
	}
	if item.Arg != "https://gitlab.com" {
		t.Errorf("expected GitLab to be selected, got %q", item.Arg)
	}
}

func TestPicker_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}, runes("q")} {
		p, cmd := press(New(testItems(), "git"), msg)

		if !p.Cancelled() {
			t.Errorf("expected cancelled after %q", msg.String())
		}
		if cmd == nil {
			t.Errorf("expected quit command after %q", msg.String())
		}
		if _, ok := p.Selected(); ok {
			t.Errorf("expected no selection after %q", msg.String())
		}
	}
}

func TestPicker_Copy(t *testing.T) {
	var copied string
	p := New(testItems(), "git").WithCopier(func(s string) error {
		copied = s
		return nil
	})

	p, _ = press(p, runes("j"))
	p, cmd := press(p, runes("y"))

	if copied != "https://gitlab.com" {
		t.Errorf("expected GitLab URL on clipboard, got %q", copied)
	}
	if !p.Copied() {
		t.Error("expected Copied to be true")
	}
	if cmd == nil {
		t.Error("expected quit command after copy")
	}
	if _, ok := p.Selected(); ok {
		t.Error("copy should not count as opening")
	}
}

func TestPicker_CopyError(t *testing.T) {
	p := New(testItems(), "git").WithCopier(func(string) error {
		return errors.New("no clipboard utility")
	})

	p, _ = press(p, runes("y"))

	if p.Copied() {
		t.Error("expected Copied to be false")
	}
	if p.Err() == nil || !strings.Contains(p.Err().Error(), "no clipboard utility") {
		t.Errorf("expected clipboard error, got %v", p.Err())
	}
}

func TestPicker_View(t *testing.T) {
	p := New(testItems(), "git")
	view := p.View()

	for _, want := range []string{
		"Search: git (2 results)",
		"GitHub",
		"https://gitlab.com",
		"Enter: open",
		"y: copy URL",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestRun_SingleItemSkipsPicker(t *testing.T) {
	items := []launcher.Item{launcher.EmptyItem("https://duckduckgo.com")}

	p, err := Run(items, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, ok := p.Selected()
	if !ok {
		t.Fatal("expected the only item to be selected")
	}
	if item.Arg != "https://duckduckgo.com" {
		t.Errorf("expected default search URL, got %q", item.Arg)
	}
}
