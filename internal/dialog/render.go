package dialog

import (
	"fmt"
	"strings"

	"github.com/flixhummel/mcduterm/internal/display"
)

// Fixed 14-line dialog layout. The dialog replaces page rendering wholesale,
// so it publishes the full grid in one call.
//
//	row 0      title
//	row 1      warning (Hard only, else blank)
//	row 2      separator
//	rows 3-9   up to 7 word-wrapped detail lines
//	row 10     separator
//	row 11     variant instruction line
//	row 12     options/status line
//	row 13     reserved blank, never touched while active
const (
	titleRow       = 0
	warningRow     = 1
	maxDetailRows  = 7
	firstDetail    = 3
	instructionRow = 11
	statusRow      = 12
)

var separator = strings.Repeat("-", display.Cols)

func (d *Dialog) render() {
	var lines [display.Rows]display.Line

	lines[titleRow] = display.Line{Text: display.Center(d.title), Color: display.ColorWhite}
	if d.dialogType == Hard && d.warning != "" {
		lines[warningRow] = display.Line{Text: display.Center(d.warning), Color: display.ColorAmber}
	} else {
		lines[warningRow] = display.Line{Text: display.Pad(""), Color: display.ColorWhite}
	}
	lines[2] = display.Line{Text: separator, Color: display.ColorGray}

	wrapped := wrapDetails(d.details, display.Cols)
	for i := 0; i < maxDetailRows; i++ {
		text := ""
		if i < len(wrapped) {
			text = wrapped[i]
		}
		lines[firstDetail+i] = display.Line{Text: display.Pad(text), Color: display.ColorWhite}
	}
	lines[10] = display.Line{Text: separator, Color: display.ColorGray}

	lines[instructionRow] = display.Line{Text: d.instruction(), Color: display.ColorCyan}
	lines[statusRow] = display.Line{Text: d.status(), Color: display.ColorAmber}
	lines[display.Rows-1] = display.Line{Text: display.Pad(""), Color: display.ColorWhite}

	d.pub.PublishFull(lines)
}

func (d *Dialog) instruction() string {
	switch d.dialogType {
	case Hard:
		return display.Center("PRESS EXEC TO CONFIRM")
	default:
		// Cancel on the left line-key, confirm on the right.
		return display.Compose("<CANCEL", "CONFIRM>")
	}
}

func (d *Dialog) status() string {
	if d.dialogType == Countdown {
		return display.Center(fmt.Sprintf("AUTO CONFIRM IN %dS", d.remaining))
	}
	return display.Pad("")
}

// publishStatus repaints only the status row, used for the wrong-key flash.
func (d *Dialog) publishStatus(text string, color display.Color) {
	d.pub.PublishLine(statusRow, display.Center(text), color)
}

// wrapDetails word-wraps each detail string at the column limit, breaking at
// the last space at or before the limit and hard-breaking only when a word
// exceeds a full line.
func wrapDetails(details []string, width int) []string {
	var out []string
	for _, detail := range details {
		out = append(out, wrapLine(detail, width)...)
	}
	return out
}

func wrapLine(s string, width int) []string {
	r := []rune(s)
	if len(r) == 0 {
		return []string{""}
	}
	var out []string
	for len(r) > width {
		cut := lastSpace(r[:width+1])
		if cut <= 0 {
			// No space to break at: hard break.
			out = append(out, string(r[:width]))
			r = r[width:]
			continue
		}
		out = append(out, string(r[:cut]))
		r = r[cut+1:]
	}
	out = append(out, string(r))
	return out
}

func lastSpace(r []rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == ' ' {
			return i
		}
	}
	return -1
}

