package validation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/flixhummel/mcduterm/internal/config"
	"github.com/flixhummel/mcduterm/internal/datapoint"
	"github.com/flixhummel/mcduterm/internal/logging"
)

// Built-in example business rules. Each one fails open when its comparison
// data cannot be read: a transient lookup failure must not lock the user out
// of the field.

func registerBuiltins(e *Engine) {
	e.Register("aboveReference", validateAboveReference)
	e.Register("futureTime", validateFutureTime)
	e.Register("requiresEnabled", validateRequiresEnabled)
}

// validateAboveReference is a cross-reference rule: the numeric entry must
// be at least params["margin"] above the value of the datapoint at
// params["ref"].
func validateAboveReference(ctx context.Context, field config.FieldRule, value string, acc Accessor) (Result, error) {
	ref := field.Params["ref"]
	if ref == "" {
		return Result{}, fmt.Errorf("aboveReference: missing ref param")
	}

	v, ok := ParseNumeric(value)
	if !ok {
		return invalid("INVALID FORMAT"), nil
	}

	refValue, err := acc.Lookup(ctx, ref)
	if err != nil || refValue.Quality == datapoint.QualityBad {
		logging.Warn("Reference value unavailable, passing open",
			zap.String("ref", ref),
			zap.Error(err),
		)
		return valid(), nil
	}
	if refValue.Type != datapoint.TypeNumber {
		return valid(), nil
	}

	margin := 0.0
	if m := field.Params["margin"]; m != "" {
		if parsed, ok := ParseNumeric(m); ok {
			margin = parsed
		}
	}

	if v < refValue.Number+margin {
		return invalid(fmt.Sprintf("MINIMUM %g", refValue.Number+margin)), nil
	}
	return valid(), nil
}

// validateFutureTime is a temporal rule: an HH:MM entry must lie after the
// current time of day published by the remote clock datapoint
// (params["clock"], default "system.clock.time").
func validateFutureTime(ctx context.Context, field config.FieldRule, value string, acc Accessor) (Result, error) {
	if !TimeFormatOK(value) {
		return invalid("INVALID TIME"), nil
	}

	clockAddr := field.Params["clock"]
	if clockAddr == "" {
		clockAddr = "system.clock.time"
	}

	now, err := acc.Lookup(ctx, clockAddr)
	if err != nil || now.Quality == datapoint.QualityBad || now.Type != datapoint.TypeString {
		logging.Warn("Remote clock unavailable, passing open",
			zap.String("clock", clockAddr),
			zap.Error(err),
		)
		return valid(), nil
	}
	if !TimeFormatOK(now.Text) {
		return valid(), nil
	}

	// Zero-padded HH:MM compares correctly as a string.
	if value <= now.Text {
		return invalid("TIME NOT AHEAD"), nil
	}
	return valid(), nil
}

// validateRequiresEnabled is a guarded-precondition rule: entry is accepted
// only while the boolean guard datapoint at params["guard"] is true.
func validateRequiresEnabled(ctx context.Context, field config.FieldRule, value string, acc Accessor) (Result, error) {
	guard := field.Params["guard"]
	if guard == "" {
		return Result{}, fmt.Errorf("requiresEnabled: missing guard param")
	}

	state, err := acc.Lookup(ctx, guard)
	if err != nil || state.Quality == datapoint.QualityBad {
		logging.Warn("Guard value unavailable, passing open",
			zap.String("guard", guard),
			zap.Error(err),
		)
		return valid(), nil
	}
	if state.Type != datapoint.TypeBoolean {
		return valid(), nil
	}

	if !state.Bool {
		return invalid("NOT ENABLED"), nil
	}
	return valid(), nil
}
