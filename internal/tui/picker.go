// Package tui holds the interactive sender picker used by `chatstat analyze -i`.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrPickerCancelled is returned when the user quits without choosing
var ErrPickerCancelled = errors.New("sender selection cancelled")

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Bold(true)

	styleSelected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	styleNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Bottom}, {k.Choose, k.Quit}}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "analyze")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type pickerModel struct {
	senders   []string
	cursor    int
	offset    int
	height    int
	chosen    string
	cancelled bool
	help      help.Model
}

func newPickerModel(senders []string) pickerModel {
	return pickerModel{senders: senders, height: 15, help: help.New()}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, blank line, help
		m.height = max(msg.Height-3, 1)
		m.help.Width = msg.Width
		m.clampOffset()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, keys.Choose):
			if len(m.senders) > 0 {
				m.chosen = m.senders[m.cursor]
			} else {
				m.cancelled = true
			}
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.senders)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Top):
			m.cursor = 0
		case key.Matches(msg, keys.Bottom):
			m.cursor = max(len(m.senders)-1, 0)
		}
		m.clampOffset()
	}
	return m, nil
}

// clampOffset keeps the cursor inside the visible window
func (m *pickerModel) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Show analysis for (%d)", len(m.senders))) + "\n\n")

	end := min(m.offset+m.height, len(m.senders))
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(styleSelected.Render("> "+m.senders[i]) + "\n")
		} else {
			b.WriteString(styleNormal.Render("  "+m.senders[i]) + "\n")
		}
	}

	b.WriteString("\n" + m.help.View(keys))
	return b.String()
}

// PickSender shows senders in a list and blocks until one is chosen
func PickSender(senders []string, opts ...tea.ProgramOption) (string, error) {
	if len(senders) == 0 {
		return "", fmt.Errorf("tui: no senders to choose from")
	}

	p := tea.NewProgram(newPickerModel(senders), opts...)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: %w", err)
	}

	fm := final.(pickerModel)
	if fm.cancelled || fm.chosen == "" {
		return "", ErrPickerCancelled
	}
	return fm.chosen, nil
}
