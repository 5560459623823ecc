package config

import "fmt"

// Registry represents an entire page template file: the set of pages the
// terminal can show, plus the id of the root page CLR navigation falls back
// to.
type Registry struct {
	Version  int              `yaml:"version"`
	RootPage string           `yaml:"root_page"`
	Pages    map[string]*Page `yaml:"pages"` // Keyed by page id
}

// Page is one screen of the terminal: a title line and up to six line pairs,
// each pair carrying a left and a right half-line.
type Page struct {
	Title string `yaml:"title"`
	// Parent is the page CLR navigates to when the scratchpad is empty.
	// Empty for the root page.
	Parent string  `yaml:"parent,omitempty"`
	Lines  [6]Line `yaml:"lines"`
}

// Line is one label/value row pair with a line-select key on each side.
type Line struct {
	Left  HalfLine `yaml:"left,omitempty"`
	Right HalfLine `yaml:"right,omitempty"`
}

// HalfLine is the configuration of one side of a line: what the LSK does
// (Button) and what is displayed (Display).
type HalfLine struct {
	Button  ButtonField  `yaml:"button,omitempty"`
	Display DisplayField `yaml:"display,omitempty"`
}

// ButtonType classifies what an LSK press does when the line carries a
// button field.
type ButtonType string

const (
	// ButtonNone means no button is configured.
	ButtonNone ButtonType = ""
	// ButtonNavigation switches to the target page.
	ButtonNavigation ButtonType = "navigation"
	// ButtonDatapoint triggers the target datapoint (metadata-driven).
	ButtonDatapoint ButtonType = "datapoint"
)

// ButtonField configures the action bound to an LSK.
type ButtonField struct {
	Type ButtonType `yaml:"type,omitempty"`
	// Target is a page id for navigation buttons and a datapoint address
	// for datapoint buttons.
	Target string `yaml:"target,omitempty"`
	// Confirm guards datapoint buttons behind a confirmation dialog.
	Confirm *ConfirmPolicy `yaml:"confirm,omitempty"`
}

// Actionable reports whether the button is complete enough to execute.
// Template editors are known to persist a button type without a target;
// such half-configured buttons are treated as absent.
func (b ButtonField) Actionable() bool {
	switch b.Type {
	case ButtonNone:
		return false
	case ButtonNavigation, ButtonDatapoint:
		return b.Target != ""
	default:
		return false
	}
}

// ConfirmType selects the confirmation dialog variant guarding an action.
type ConfirmType string

const (
	// ConfirmSoft is acknowledged by the confirm line-key or EXEC.
	ConfirmSoft ConfirmType = "soft"
	// ConfirmHard is acknowledged only by EXEC.
	ConfirmHard ConfirmType = "hard"
	// ConfirmCountdown auto-confirms after Seconds unless cancelled.
	ConfirmCountdown ConfirmType = "countdown"
)

// ConfirmPolicy makes an action require operator confirmation before it is
// committed. Attached to a button or an editable display field.
type ConfirmPolicy struct {
	Type  ConfirmType `yaml:"type"`
	Title string      `yaml:"title"`
	// Warning is the emphasized line shown by hard confirmations.
	Warning string   `yaml:"warning,omitempty"`
	Details []string `yaml:"details,omitempty"`
	// Seconds is the countdown length; only meaningful for countdown
	// confirmations.
	Seconds int `yaml:"seconds,omitempty"`
}

// validate checks a confirmation policy; nil policies are fine.
func (c *ConfirmPolicy) validate() error {
	if c == nil {
		return nil
	}
	switch c.Type {
	case ConfirmSoft, ConfirmHard:
	case ConfirmCountdown:
		if c.Seconds <= 0 {
			return fmt.Errorf("countdown confirmation needs seconds > 0")
		}
	default:
		return fmt.Errorf("unknown confirmation type %q", c.Type)
	}
	if c.Title == "" {
		return fmt.Errorf("confirmation needs a title")
	}
	return nil
}

// DisplayType classifies the display field of a half-line.
type DisplayType string

const (
	// DisplayNone shows nothing.
	DisplayNone DisplayType = ""
	// DisplayText shows a static label.
	DisplayText DisplayType = "text"
	// DisplayDatapoint shows a live datapoint value.
	DisplayDatapoint DisplayType = "datapoint"
)

// DisplayField configures what a half-line shows.
type DisplayField struct {
	Type DisplayType `yaml:"type,omitempty"`
	// Label is the small annotation line above the value.
	Label string `yaml:"label,omitempty"`
	// Source is the datapoint address for DisplayDatapoint fields.
	Source string `yaml:"source,omitempty"`
	// Rule optionally constrains typed entry for this field beyond the
	// datapoint metadata.
	Rule *FieldRule `yaml:"rule,omitempty"`
	// Confirm guards writes to this field behind a confirmation dialog.
	Confirm *ConfirmPolicy `yaml:"confirm,omitempty"`
}

// FieldRule is a per-field validation rule applied to typed entry. All
// constraints are optional; nil pointers mean "not constrained".
type FieldRule struct {
	// InputType selects the format check: numeric, time, date, text,
	// select. Empty defaults to text.
	InputType string `yaml:"input_type,omitempty"`

	Required  bool     `yaml:"required,omitempty"`
	Min       *float64 `yaml:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty"`
	Step      *float64 `yaml:"step,omitempty"`
	MinLength int      `yaml:"min_length,omitempty"`
	MaxLength int      `yaml:"max_length,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty"`
	Options   []string `yaml:"options,omitempty"`

	// Custom names a registered business-rule validator. A name with no
	// registered validator passes softly.
	Custom string `yaml:"custom,omitempty"`

	// Params carries validator-specific parameters, e.g. the reference
	// datapoint address a cross-reference rule compares against.
	Params map[string]string `yaml:"params,omitempty"`
}
