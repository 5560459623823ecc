package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flixhummel/mcduterm/internal/display"
	"github.com/flixhummel/mcduterm/internal/event"
	"github.com/flixhummel/mcduterm/internal/inputmode"
)

// LineMsg repaints one display row.
type LineMsg struct {
	Row   int
	Text  string
	Color display.Color
}

// FullMsg repaints the whole display.
type FullMsg struct {
	Lines [display.Rows]display.Line
}

// Model is the Bubble Tea front-end. It holds the rendered grid and posts
// input events onto the event loop; it never touches input state itself.
type Model struct {
	grid [display.Rows]display.Line

	keys keyMap
	help help.Model
	post func(event.Event)

	width  int
	height int
}

// NewModel creates a front-end that posts events through post.
func NewModel(post func(event.Event)) Model {
	return Model{
		keys: defaultKeyMap(),
		help: help.New(),
		post: post,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case LineMsg:
		if msg.Row >= 0 && msg.Row < display.Rows {
			m.grid[msg.Row] = display.Line{Text: msg.Text, Color: msg.Color}
		}
		return m, nil

	case FullMsg:
		m.grid = msg.Lines
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.CLR):
		m.post(event.CLREvent{})
		return m, nil

	case key.Matches(msg, m.keys.Exec):
		m.post(event.ConfirmEvent{})
		return m, nil

	case key.Matches(msg, m.keys.LSKLeft):
		if row := lskRow(msg.String()); row != 0 {
			m.post(event.LSKEvent{Side: inputmode.SideLeft, Row: row})
		}
		return m, nil

	case key.Matches(msg, m.keys.LSKRight):
		if row := lskRow(msg.String()); row != 0 {
			m.post(event.LSKEvent{Side: inputmode.SideRight, Row: row})
		}
		return m, nil
	}

	// Plain characters become keypad presses, upcased like the hardware
	// keyboard. The mode manager filters anything outside the keypad set.
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			m.post(event.KeyCharEvent{Char: unicode.ToUpper(r)})
		}
	} else if msg.Type == tea.KeySpace {
		m.post(event.KeyCharEvent{Char: ' '})
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	for i, line := range m.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(styleFor(line.Color).Render(display.Pad(line.Text)))
	}
	screen := ScreenStyle.Render(b.String())
	return screen + "\n" + HelpStyle.Render(m.help.View(m.keys))
}
