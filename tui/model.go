package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Alp4ka/gopaginator"
)

// KeyMap defines the model's key bindings.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns arrow/vim navigation with enter or space to select.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "focus left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "focus right"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is a Bubble Tea model over a Surface owned by a Paginator.
type Model struct {
	surface  *Surface
	keys     KeyMap
	help     lipgloss.Style
	quitting bool
}

// NewModel returns a model with DefaultKeyMap.
func NewModel(surface *Surface) *Model {
	return &Model{
		surface: surface,
		keys:    DefaultKeyMap(),
		help:    lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Left):
		m.surface.FocusPrev()
	case key.Matches(keyMsg, m.keys.Right):
		m.surface.FocusNext()
	case key.Matches(keyMsg, m.keys.Activate):
		m.surface.Activate()
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	help := m.help.Render(helpLine(m.keys.Left, m.keys.Right, m.keys.Activate, m.keys.Quit))

	return m.surface.View() + "\n\n" + help + "\n"
}

// Quitting reports whether the model received a quit key.
func (m *Model) Quitting() bool {
	return m.quitting
}

func helpLine(bindings ...key.Binding) string {
	var line string
	for i, b := range bindings {
		if i > 0 {
			line += " • "
		}
		line += b.Help().Key + " " + b.Help().Desc
	}

	return line
}

// Run starts an interactive program over a paginator rendering into surface
// and returns the page selected when the user quits.
func Run(p *gopaginator.Paginator, surface *Surface, opts ...tea.ProgramOption) (int, error) {
	if _, err := tea.NewProgram(NewModel(surface), opts...).Run(); err != nil {
		return 0, fmt.Errorf("cannot run pager program: %w", err)
	}

	return p.CurrentPage(), nil
}
