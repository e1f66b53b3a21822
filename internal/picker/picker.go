package picker

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/bmlaunch/internal/launcher"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// KeyMap defines the picker key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns vim-style bindings with arrow key fallbacks.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("j/k", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "open"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy URL"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/Esc", "cancel"),
		),
	}
}

// Picker lets the user choose one of the ranked items.
// It only moves a cursor; the order of items is never changed.
type Picker struct {
	items     []launcher.Item
	query     string
	keys      KeyMap
	copyURL   func(string) error
	cursor    int
	selected  bool
	copied    bool
	cancelled bool
	err       error
	width     int
	height    int
}

// New creates a new Picker over the given items.
func New(items []launcher.Item, query string) Picker {
	return Picker{
		items:   items,
		query:   query,
		keys:    DefaultKeyMap(),
		copyURL: clipboard.WriteAll,
		width:   80,
		height:  24,
	}
}

// WithCopier replaces the clipboard writer used by the copy binding.
func (p Picker) WithCopier(fn func(string) error) Picker {
	p.copyURL = fn
	return p
}

// Run shows the picker and returns its final state.
// A single item is chosen without starting the program.
func Run(items []launcher.Item, query string, opts ...tea.ProgramOption) (Picker, error) {
	p := New(items, query)
	if len(items) == 1 {
		p.selected = true
		return p, nil
	}

	final, err := tea.NewProgram(p, opts...).Run()
	if err != nil {
		return p, err
	}
	return final.(Picker), nil
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			p.cancelled = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Select):
			if len(p.items) > 0 {
				p.selected = true
			}
			return p, tea.Quit

		case key.Matches(msg, p.keys.Copy):
			if p.cursor < len(p.items) {
				if err := p.copyURL(p.items[p.cursor].Arg); err != nil {
					p.err = fmt.Errorf("copy to clipboard: %w", err)
				} else {
					p.copied = true
				}
			}
			return p, tea.Quit

		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
			return p, nil

		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.items))))
	b.WriteString("\n\n")

	for i, item := range p.items {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(item.Title)))
		b.WriteString(fmt.Sprintf("   %s\n", urlStyle.Render(item.Arg)))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(p.helpLine()))

	return b.String()
}

func (p Picker) helpLine() string {
	bindings := []key.Binding{p.keys.Up, p.keys.Select, p.keys.Copy, p.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// Selected returns the chosen item, or false if nothing was chosen.
func (p Picker) Selected() (launcher.Item, bool) {
	if p.cancelled || !p.selected || p.cursor >= len(p.items) {
		return launcher.Item{}, false
	}
	return p.items[p.cursor], true
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}

// Copied returns true if the current item's URL went to the clipboard.
func (p Picker) Copied() bool {
	return p.copied
}

// Err returns the error of the last action, if any.
func (p Picker) Err() error {
	return p.err
}
