package validation

import (
	"strconv"
	"strings"
	"time"
)

// Format validators. These are the first tier of the validation pipeline and
// are also reused by the scratchpad's per-field check, so the two components
// reject exactly the same malformed entries.

// NumericFormatOK reports whether s is a well-formed decimal number entry.
//
// The accepted grammar is stricter than strconv.ParseFloat: entries that
// parse but read ambiguously on a 24-column display are rejected.
// Explicitly rejected: multiple decimal points, scientific notation,
// leading-zero integers ("007"), bare "." and one-sided decimals
// (".5", "5.").
func NumericFormatOK(s string) bool {
	if s == "" {
		return false
	}
	body := s
	if strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+") {
		body = body[1:]
	}
	if body == "" {
		return false
	}

	intPart := body
	fracPart := ""
	if i := strings.IndexByte(body, '.'); i >= 0 {
		intPart = body[:i]
		fracPart = body[i+1:]
		// A second point or a one-sided decimal is malformed.
		if strings.IndexByte(fracPart, '.') >= 0 || intPart == "" || fracPart == "" {
			return false
		}
	}

	for _, part := range []string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return false
			}
		}
	}

	// Ambiguous leading zeros: "007", "01.5". A single "0" integer part
	// is fine.
	if len(intPart) > 1 && intPart[0] == '0' {
		return false
	}
	return true
}

// ParseNumeric parses a numeric entry under the strict format rules.
func ParseNumeric(s string) (float64, bool) {
	if !NumericFormatOK(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TimeFormatOK reports whether s is a strict zero-padded HH:MM time with
// hours 00-23 and minutes 00-59.
func TimeFormatOK(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh <= 23 && mm <= 59
}

// DateFormatOK reports whether s is a calendar-correct DD.MM.YYYY date.
// Correctness is checked by round-tripping through time.Parse, which rejects
// normalized dates like 31.02.
func DateFormatOK(s string) bool {
	if len(s) != 10 || s[2] != '.' || s[5] != '.' {
		return false
	}
	t, err := time.Parse("02.01.2006", s)
	if err != nil {
		return false
	}
	return t.Format("02.01.2006") == s
}

// TextFormatOK reports whether s is free of raw control characters.
func TextFormatOK(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
