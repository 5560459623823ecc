package validation

import (
	"context"
	"fmt"
	"math"
	"regexp"

	"go.uber.org/zap"

	"github.com/flixhummel/mcduterm/internal/config"
	"github.com/flixhummel/mcduterm/internal/datapoint"
	"github.com/flixhummel/mcduterm/internal/logging"
)

// Accessor lets business-rule validators read other remote values.
type Accessor interface {
	Lookup(ctx context.Context, addr string) (datapoint.Value, error)
}

// Result is a validation verdict with a short user-facing message on
// failure.
type Result struct {
	Valid   bool
	Message string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(message string) Result {
	return Result{Valid: false, Message: message}
}

// ValidatorFunc is a registered business-rule validator. It may consult
// other remote values via the accessor. Returning an error (as opposed to an
// invalid Result) marks the validator itself as faulty.
type ValidatorFunc func(ctx context.Context, field config.FieldRule, value string, acc Accessor) (Result, error)

// Engine runs the three-tier pipeline. Stateless apart from the validator
// registry, which is populated at construction time.
type Engine struct {
	validators map[string]ValidatorFunc
}

// NewEngine creates an engine with the built-in example validators
// registered.
func NewEngine() *Engine {
	e := &Engine{validators: make(map[string]ValidatorFunc)}
	registerBuiltins(e)
	return e
}

// Register installs a named business-rule validator. Existing names are
// replaced.
func (e *Engine) Register(name string, fn ValidatorFunc) {
	e.validators[name] = fn
}

// Validate runs the pipeline: format, then constraints, then the named
// custom validator if one is registered. It never panics; a faulty custom
// validator fails closed with a generic message.
func (e *Engine) Validate(ctx context.Context, value string, field config.FieldRule, acc Accessor) Result {
	if r := checkFormat(value, field); !r.Valid {
		return r
	}
	if r := checkConstraints(value, field); !r.Valid {
		return r
	}

	if field.Custom == "" {
		return valid()
	}
	fn, ok := e.validators[field.Custom]
	if !ok {
		// Soft pass: a rule nobody registered must not block entry.
		logging.Warn("Custom validator not registered",
			zap.String("validator", field.Custom),
		)
		return valid()
	}
	return e.runCustom(ctx, fn, field, value, acc)
}

// runCustom invokes a business-rule validator, converting errors and panics
// into a closed failure.
func (e *Engine) runCustom(ctx context.Context, fn ValidatorFunc, field config.FieldRule, value string, acc Accessor) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("Custom validator panicked",
				zap.String("validator", field.Custom),
				zap.Any("panic", r),
			)
			result = invalid("VALIDATION ERROR")
		}
	}()

	result, err := fn(ctx, field, value, acc)
	if err != nil {
		logging.Error("Custom validator failed",
			zap.String("validator", field.Custom),
			zap.Error(err),
		)
		return invalid("VALIDATION ERROR")
	}
	return result
}

// checkFormat is tier one: input-type keyed format validation. Unknown and
// empty input types default to text. Empty values pass here; required-ness
// is a tier-two concern.
func checkFormat(value string, field config.FieldRule) Result {
	if value == "" {
		return valid()
	}
	switch field.InputType {
	case "numeric":
		if !NumericFormatOK(value) {
			return invalid("INVALID FORMAT")
		}
	case "time":
		if !TimeFormatOK(value) {
			return invalid("INVALID TIME")
		}
	case "date":
		if !DateFormatOK(value) {
			return invalid("INVALID DATE")
		}
	case "select":
		// Select fields carry free text matched against options in
		// tier two.
		if !TextFormatOK(value) {
			return invalid("INVALID FORMAT")
		}
	default:
		if !TextFormatOK(value) {
			return invalid("INVALID FORMAT")
		}
	}
	return valid()
}

// checkConstraints is tier two: range and structural constraints.
func checkConstraints(value string, field config.FieldRule) Result {
	if value == "" {
		if field.Required {
			return invalid("ENTRY REQUIRED")
		}
		return valid()
	}

	if field.InputType == "numeric" {
		v, ok := ParseNumeric(value)
		if !ok {
			return invalid("INVALID FORMAT")
		}
		if field.Min != nil && v < *field.Min {
			return invalid(fmt.Sprintf("MINIMUM %g", *field.Min))
		}
		if field.Max != nil && v > *field.Max {
			return invalid(fmt.Sprintf("MAXIMUM %g", *field.Max))
		}
		if field.Step != nil && *field.Step > 0 {
			base := 0.0
			if field.Min != nil {
				base = *field.Min
			}
			tol := math.Min(*field.Step*0.01, 0.001)
			rem := math.Abs(math.Mod(v-base, *field.Step))
			if rem > tol && (*field.Step-rem) > tol {
				return invalid(fmt.Sprintf("STEP %g", *field.Step))
			}
		}
	} else {
		if field.MinLength > 0 && len(value) < field.MinLength {
			return invalid(fmt.Sprintf("MINIMUM %d CHARS", field.MinLength))
		}
		if field.MaxLength > 0 && len(value) > field.MaxLength {
			return invalid(fmt.Sprintf("MAXIMUM %d CHARS", field.MaxLength))
		}
		if field.Pattern != "" {
			re, err := regexp.Compile(field.Pattern)
			if err == nil && !re.MatchString(value) {
				return invalid("INVALID ENTRY")
			}
		}
	}

	if len(field.Options) > 0 {
		for _, opt := range field.Options {
			if value == opt {
				return valid()
			}
		}
		return invalid("INVALID OPTION")
	}
	return valid()
}
