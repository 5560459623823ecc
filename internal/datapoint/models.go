package datapoint

import (
	"fmt"
	"strconv"
)

// Type is the declared type of a datapoint. The set is closed: anything a
// bridge reports outside the known kinds maps to TypeUnsupported, and dispatch
// sites match the enum exhaustively instead of comparing type strings.
type Type int

const (
	// TypeUnsupported is any type the terminal cannot edit.
	TypeUnsupported Type = iota
	// TypeBoolean toggles on line-key press, ignoring the scratchpad.
	TypeBoolean
	// TypeNumber requires typed entry validated against min/max.
	TypeNumber
	// TypeString requires typed entry written as-is.
	TypeString
)

// ParseType maps a bridge-reported type name to the closed enum.
func ParseType(s string) Type {
	switch s {
	case "boolean":
		return TypeBoolean
	case "number":
		return TypeNumber
	case "string":
		return TypeString
	default:
		return TypeUnsupported
	}
}

// String returns the wire name of the type.
func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	default:
		return "unsupported"
	}
}

// Quality flags the trustworthiness of a reported value.
type Quality int

const (
	// QualityGood means the value is current and trusted.
	QualityGood Quality = iota
	// QualityUncertain means the value is stale or interpolated.
	QualityUncertain
	// QualityBad means the value could not be read.
	QualityBad
)

// String returns the wire name of the quality flag.
func (q Quality) String() string {
	switch q {
	case QualityGood:
		return "good"
	case QualityUncertain:
		return "uncertain"
	default:
		return "bad"
	}
}

// ParseQuality maps a wire quality name to the enum. Unknown names are bad.
func ParseQuality(s string) Quality {
	switch s {
	case "good":
		return QualityGood
	case "uncertain":
		return QualityUncertain
	default:
		return QualityBad
	}
}

// Metadata is the declared shape of a datapoint, read from the bridge's
// object cache. Min/Max are nil when the datapoint declares no limits.
type Metadata struct {
	Writable bool
	Type     Type
	Min      *float64
	Max      *float64
	Unit     string
	// States maps raw values to display labels for enumerated datapoints
	// (e.g. "0" -> "OFF"). Optional.
	States map[string]string
}

// Value is one datapoint value with its quality flag. Exactly one of the
// payload fields is meaningful, selected by Type.
type Value struct {
	Type    Type
	Bool    bool
	Number  float64
	Text    string
	Quality Quality
}

// BoolValue builds a good-quality boolean value.
func BoolValue(b bool) Value {
	return Value{Type: TypeBoolean, Bool: b, Quality: QualityGood}
}

// NumberValue builds a good-quality numeric value.
func NumberValue(n float64) Value {
	return Value{Type: TypeNumber, Number: n, Quality: QualityGood}
}

// StringValue builds a good-quality string value.
func StringValue(s string) Value {
	return Value{Type: TypeString, Text: s, Quality: QualityGood}
}

// DisplayForm renders the value the way the page renderer shows it. Numbers
// use the shortest representation that round-trips; booleans render as the
// metadata's enumerated state labels when present, else ON/OFF.
func (v Value) DisplayForm(meta Metadata) string {
	if v.Quality == QualityBad {
		return "----"
	}
	switch v.Type {
	case TypeBoolean:
		key := "0"
		if v.Bool {
			key = "1"
		}
		if label, ok := meta.States[key]; ok {
			return label
		}
		if v.Bool {
			return "ON"
		}
		return "OFF"
	case TypeNumber:
		s := strconv.FormatFloat(v.Number, 'f', -1, 64)
		if meta.Unit != "" {
			return s + " " + meta.Unit
		}
		return s
	case TypeString:
		return v.Text
	default:
		return fmt.Sprintf("?%s?", v.Type)
	}
}
