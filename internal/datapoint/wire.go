package datapoint

import (
	"fmt"

	"github.com/flixhummel/mcduterm/internal/protocol"
)

// EncodeValue converts a value to its wire form.
func EncodeValue(v Value) *protocol.WireValue {
	w := &protocol.WireValue{
		Type:    v.Type.String(),
		Quality: v.Quality.String(),
	}
	switch v.Type {
	case TypeBoolean:
		b := v.Bool
		w.Bool = &b
	case TypeNumber:
		n := v.Number
		w.Number = &n
	case TypeString:
		t := v.Text
		w.Text = &t
	}
	return w
}

// DecodeValue converts a wire value back to a value. A payload field
// missing for its declared type is a protocol error.
func DecodeValue(w *protocol.WireValue) (Value, error) {
	if w == nil {
		return Value{}, fmt.Errorf("missing value payload")
	}
	v := Value{
		Type:    ParseType(w.Type),
		Quality: ParseQuality(w.Quality),
	}
	switch v.Type {
	case TypeBoolean:
		if w.Bool == nil {
			return Value{}, fmt.Errorf("boolean value without bool payload")
		}
		v.Bool = *w.Bool
	case TypeNumber:
		if w.Number == nil {
			return Value{}, fmt.Errorf("number value without number payload")
		}
		v.Number = *w.Number
	case TypeString:
		if w.Text == nil {
			return Value{}, fmt.Errorf("string value without text payload")
		}
		v.Text = *w.Text
	}
	return v, nil
}

// EncodeMeta converts metadata to its wire form.
func EncodeMeta(m Metadata) *protocol.WireMeta {
	return &protocol.WireMeta{
		Writable: m.Writable,
		Type:     m.Type.String(),
		Min:      m.Min,
		Max:      m.Max,
		Unit:     m.Unit,
		States:   m.States,
	}
}

// DecodeMeta converts wire metadata back to metadata.
func DecodeMeta(w *protocol.WireMeta) (Metadata, error) {
	if w == nil {
		return Metadata{}, fmt.Errorf("missing meta payload")
	}
	return Metadata{
		Writable: w.Writable,
		Type:     ParseType(w.Type),
		Min:      w.Min,
		Max:      w.Max,
		Unit:     w.Unit,
		States:   w.States,
	}, nil
}
