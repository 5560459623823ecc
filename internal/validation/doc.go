// Package validation implements the three-tier entry validation pipeline.
//
// Tier one is a format check keyed by the field's input type (numeric, time,
// date, text, select); it short-circuits on failure. Tier two checks range
// and structural constraints (required, min/max/step for numbers,
// length/pattern/options for text). Tier three runs only when the field
// names a registered business-rule validator; these validators receive an
// external value accessor so they can consult other remote values.
//
// Failure policy is asymmetric on purpose. A validator name with no
// registered validator passes softly: a missing rule must never block entry.
// A validator that returns an error or panics fails closed: a rule that
// exists but is broken must not silently admit values. The built-in example
// rules themselves fail open when their comparison data cannot be read — a
// transient lookup failure must not brick the terminal.
package validation
