package scratchpad

import (
	"fmt"
	"math"
	"regexp"

	"github.com/flixhummel/mcduterm/internal/config"
	"github.com/flixhummel/mcduterm/internal/validation"
)

// Validate runs the stateless per-field entry check against the current
// buffer content. It never mutates the buffer; callers decide whether to
// annotate with SetValid.
func (b *Buffer) Validate(rule config.FieldRule) (bool, string) {
	return CheckEntry(b.content, rule)
}

// CheckEntry validates a candidate entry against a field rule. It returns
// validity plus a short fixed-vocabulary message for failures.
func CheckEntry(content string, rule config.FieldRule) (bool, string) {
	if content == "" {
		if rule.Required {
			return false, "ENTRY REQUIRED"
		}
		return true, ""
	}

	switch rule.InputType {
	case "numeric":
		return checkNumericEntry(content, rule)
	case "time":
		if !validation.TimeFormatOK(content) {
			return false, "INVALID TIME"
		}
	case "date":
		if !validation.DateFormatOK(content) {
			return false, "INVALID DATE"
		}
	default:
		if ok, msg := checkTextEntry(content, rule); !ok {
			return false, msg
		}
	}

	if len(rule.Options) > 0 {
		for _, opt := range rule.Options {
			if content == opt {
				return true, ""
			}
		}
		return false, "INVALID OPTION"
	}
	return true, ""
}

func checkNumericEntry(content string, rule config.FieldRule) (bool, string) {
	// A lone minus sign is a valid in-progress entry, not a malformed
	// number; rejecting it would flag every negative entry mid-typing.
	if content == "-" {
		return true, ""
	}

	v, ok := validation.ParseNumeric(content)
	if !ok {
		return false, "INVALID FORMAT"
	}

	if rule.Min != nil && v < *rule.Min {
		return false, fmt.Sprintf("MINIMUM %g", *rule.Min)
	}
	if rule.Max != nil && v > *rule.Max {
		return false, fmt.Sprintf("MAXIMUM %g", *rule.Max)
	}

	if rule.Step != nil && *rule.Step > 0 {
		base := 0.0
		if rule.Min != nil {
			base = *rule.Min
		}
		// Floating point keeps exact multiples from landing exactly on
		// the step grid; tolerance is min(1% of step, 0.001).
		tol := math.Min(*rule.Step*0.01, 0.001)
		rem := math.Abs(math.Mod(v-base, *rule.Step))
		if rem > tol && (*rule.Step-rem) > tol {
			return false, fmt.Sprintf("STEP %g", *rule.Step)
		}
	}
	return true, ""
}

func checkTextEntry(content string, rule config.FieldRule) (bool, string) {
	if !validation.TextFormatOK(content) {
		return false, "INVALID FORMAT"
	}
	if rule.MinLength > 0 && len(content) < rule.MinLength {
		return false, fmt.Sprintf("MINIMUM %d CHARS", rule.MinLength)
	}
	if rule.MaxLength > 0 && len(content) > rule.MaxLength {
		return false, fmt.Sprintf("MAXIMUM %d CHARS", rule.MaxLength)
	}
	if rule.Pattern != "" {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			// A broken pattern in the template must not reject
			// user entry.
			return true, ""
		}
		if !re.MatchString(content) {
			return false, "INVALID ENTRY"
		}
	}
	return true, ""
}
