package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flixhummel/mcduterm/internal/display"
)

// Publisher forwards display rows to the Bubble Tea program as messages.
// Rows published before Attach are buffered so the initial page render is
// not lost while the program starts up.
type Publisher struct {
	mu      sync.Mutex
	program *tea.Program
	pending []tea.Msg
}

// NewPublisher creates an unattached publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Attach connects the running program and flushes buffered rows.
func (p *Publisher) Attach(program *tea.Program) {
	p.mu.Lock()
	p.program = program
	pending := p.pending
	p.pending = nil
	p.mu.Unlock()

	for _, msg := range pending {
		program.Send(msg)
	}
}

func (p *Publisher) send(msg tea.Msg) {
	p.mu.Lock()
	program := p.program
	if program == nil {
		p.pending = append(p.pending, msg)
	}
	p.mu.Unlock()
	if program != nil {
		program.Send(msg)
	}
}

// PublishLine implements display.Publisher.
func (p *Publisher) PublishLine(row int, text string, color display.Color) {
	p.send(LineMsg{Row: row, Text: text, Color: color})
}

// PublishFull implements display.Publisher.
func (p *Publisher) PublishFull(lines [display.Rows]display.Line) {
	p.send(FullMsg{Lines: lines})
}
