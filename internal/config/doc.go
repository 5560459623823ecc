// Package config provides page template management for the MCDU terminal.
//
// A page template is a YAML file describing the screens the terminal can
// show: each page carries a title, an optional parent pointer for CLR
// navigation, and six line pairs. Each half-line binds a line-select key to
// an optional button action and an optional display field, which may carry a
// per-field validation rule for typed entry.
//
// # Template File Location
//
// The template file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/mcdu/pages.yaml or $HOME/.config/mcdu/pages.yaml
//   - macOS: $HOME/.config/mcdu/pages.yaml
//   - Windows: %LOCALAPPDATA%\mcdu\pages.yaml
//
// When no template exists, the built-in default template is used, matching
// the datapoints seeded by the bridge simulator.
//
// # Known Authoring Defect
//
// Some template editors persist a button type without a target. Such buttons
// are tolerated at load time and filtered at dispatch time via
// ButtonField.Actionable, so one half-configured line never takes down the
// whole terminal.
package config
