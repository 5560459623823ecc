package validation

import "testing"

// TestNumericFormatOK tests the strict numeric grammar
func TestNumericFormatOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"Valid: integer", "22", true},
		{"Valid: decimal", "22.5", true},
		{"Valid: zero", "0", true},
		{"Valid: zero decimal", "0.5", true},
		{"Valid: negative", "-12", true},
		{"Valid: explicit plus", "+3", true},
		{"Invalid: empty", "", false},
		{"Invalid: lone minus", "-", false},
		{"Invalid: two points", "1.2.3", false},
		{"Invalid: scientific", "1e3", false},
		{"Invalid: uppercase scientific", "1E3", false},
		{"Invalid: leading zeros", "007", false},
		{"Invalid: leading zero decimal", "01.5", false},
		{"Invalid: bare point", ".", false},
		{"Invalid: right-sided decimal", ".5", false},
		{"Invalid: left-sided decimal", "5.", false},
		{"Invalid: letters", "12A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericFormatOK(tt.in); got != tt.want {
				t.Errorf("NumericFormatOK(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestTimeFormatOK tests the strict zero-padded HH:MM check
func TestTimeFormatOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"Valid: midnight", "00:00", true},
		{"Valid: noon", "12:00", true},
		{"Valid: last minute", "23:59", true},
		{"Invalid: hour 24", "24:00", false},
		{"Invalid: minute 60", "00:60", false},
		{"Invalid: unpadded hour", "9:30", false},
		{"Invalid: wrong separator", "09.30", false},
		{"Invalid: trailing text", "09:30X", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeFormatOK(tt.in); got != tt.want {
				t.Errorf("TimeFormatOK(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestDateFormatOK tests calendar-correct DD.MM.YYYY parsing
func TestDateFormatOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"Valid: ordinary date", "15.06.2026", true},
		{"Valid: leap day", "29.02.2024", true},
		{"Invalid: leap day off-year", "29.02.2023", false},
		{"Invalid: 31 February", "31.02.2026", false},
		{"Invalid: 31 April", "31.04.2026", false},
		{"Invalid: month 13", "01.13.2026", false},
		{"Invalid: unpadded", "1.6.2026", false},
		{"Invalid: ISO order", "2026.06.15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateFormatOK(tt.in); got != tt.want {
				t.Errorf("DateFormatOK(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestTextFormatOK tests control character rejection
func TestTextFormatOK(t *testing.T) {
	if !TextFormatOK("PLAIN TEXT 123") {
		t.Error("plain text rejected")
	}
	if TextFormatOK("BAD\x07BELL") {
		t.Error("control character accepted")
	}
	if TextFormatOK("TAB\tHERE") {
		t.Error("tab accepted")
	}
}
