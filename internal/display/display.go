package display

// Screen geometry of the terminal. Fixed by the hardware.
const (
	// Rows is the number of display lines.
	Rows = 14

	// Cols is the number of character columns per line.
	Cols = 24

	// ScratchpadRow is the bottom line, owned by the scratchpad buffer.
	ScratchpadRow = 13

	// OverlayRow carries transient error/success messages.
	OverlayRow = 12
)

// Color is a display color supported by the terminal hardware.
type Color int

const (
	ColorWhite Color = iota
	ColorGreen
	ColorAmber
	ColorCyan
	ColorMagenta
	ColorGray
)

// String returns the color's name.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorGreen:
		return "green"
	case ColorAmber:
		return "amber"
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}

// Line is one display row: up to Cols characters in a single color.
type Line struct {
	Text  string
	Color Color
}

// Publisher delivers display output to the screen. Implementations must not
// call back into the input subsystem.
type Publisher interface {
	// PublishLine replaces a single row. Text longer than Cols is
	// truncated by the receiver.
	PublishLine(row int, text string, color Color)

	// PublishFull replaces the entire grid at once. Used by the modal
	// dialog, which owns all 14 lines while active.
	PublishFull(lines [Rows]Line)
}

// Pad returns s left-justified and space-padded to exactly Cols characters,
// truncating if necessary. Width is counted in runes; template text may
// carry characters outside ASCII.
func Pad(s string) string {
	r := []rune(s)
	if len(r) >= Cols {
		return string(r[:Cols])
	}
	b := make([]rune, Cols)
	copy(b, r)
	for i := len(r); i < Cols; i++ {
		b[i] = ' '
	}
	return string(b)
}

// Compose joins a left-justified and a right-justified string into one
// Cols-wide row, counted in runes. The right side wins the middle on
// overlap.
func Compose(left, right string) string {
	row := []rune(Pad(left))
	r := []rune(right)
	if len(r) > Cols {
		r = r[:Cols]
	}
	copy(row[Cols-len(r):], r)
	return string(row)
}

// Center returns s centered within Cols characters, counted in runes.
func Center(s string) string {
	r := []rune(s)
	if len(r) >= Cols {
		return string(r[:Cols])
	}
	left := (Cols - len(r)) / 2
	b := make([]rune, Cols)
	for i := range b {
		b[i] = ' '
	}
	copy(b[left:], r)
	return string(b)
}
