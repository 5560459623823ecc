// Package pages composes the 14-line display from page configuration and
// live datapoint values, and owns the current-page state used by CLR
// navigation.
//
// Rendering is deliberately mechanical: row 0 is the page title, rows 1-12
// hold six label/value line pairs (left field left-justified, right field
// right-justified), row 12 doubles as the transient overlay row, and row 13
// belongs to the scratchpad and is never touched here.
package pages
