package dialog

import (
	"strings"
	"testing"
	"time"

	"github.com/flixhummel/mcduterm/internal/display"
	"github.com/flixhummel/mcduterm/internal/timing"
)

// TestWrapLine tests word wrapping at the column limit
func TestWrapLine(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "SHORT LINE", 24, []string{"SHORT LINE"}},
		{"empty", "", 24, []string{""}},
		{
			"breaks at last space",
			"THIS DETAIL LINE IS TOO LONG",
			24,
			[]string{"THIS DETAIL LINE IS TOO", "LONG"},
		},
		{
			"break exactly at limit",
			"ABCDEFGHIJ KLMNOPQRSTUVW X",
			24,
			[]string{"ABCDEFGHIJ KLMNOPQRSTUVW", "X"},
		},
		{
			"hard break without spaces",
			strings.Repeat("A", 30),
			24,
			[]string{strings.Repeat("A", 24), strings.Repeat("A", 6)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLine(tt.in, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
				if len(got[i]) > tt.width {
					t.Errorf("line %d exceeds width: %q", i, got[i])
				}
			}
		})
	}
}

// TestRenderLayout tests the fixed 14-line layout
func TestRenderLayout(t *testing.T) {
	clock := timing.NewManualClock(time.Unix(0, 0))
	pub := &fakePublisher{}
	d := New(clock, pub, nil)

	details := []string{
		"FIRST DETAIL",
		"A SECOND DETAIL LINE THAT NEEDS WRAPPING HERE",
	}
	d.ShowHard("CONFIRM WIPE", "IRREVERSIBLE", details, nil)

	if pub.fulls != 1 {
		t.Fatalf("PublishFull calls = %d, want 1", pub.fulls)
	}

	if got := strings.TrimSpace(pub.lines[0].Text); got != "CONFIRM WIPE" {
		t.Errorf("title = %q", pub.lines[0].Text)
	}
	if got := strings.TrimSpace(pub.lines[1].Text); got != "IRREVERSIBLE" {
		t.Errorf("warning = %q", pub.lines[1].Text)
	}
	for _, row := range []int{2, 10} {
		if pub.lines[row].Text != strings.Repeat("-", display.Cols) {
			t.Errorf("row %d = %q, want separator", row, pub.lines[row].Text)
		}
	}
	if got := strings.TrimSpace(pub.lines[3].Text); got != "FIRST DETAIL" {
		t.Errorf("first detail = %q", pub.lines[3].Text)
	}
	// The long detail wraps onto rows 4 and 5.
	if strings.TrimSpace(pub.lines[5].Text) == "" {
		t.Error("wrapped continuation row empty")
	}
	if !strings.Contains(pub.lines[11].Text, "EXEC") {
		t.Errorf("instruction = %q", pub.lines[11].Text)
	}
	if strings.TrimSpace(pub.lines[13].Text) != "" {
		t.Errorf("reserved bottom row not blank: %q", pub.lines[13].Text)
	}
}

// TestRenderSoftInstruction tests the line-key instruction row of soft
// dialogs
func TestRenderSoftInstruction(t *testing.T) {
	clock := timing.NewManualClock(time.Unix(0, 0))
	pub := &fakePublisher{}
	d := New(clock, pub, nil)

	d.ShowSoft("APPLY", nil, nil)
	instr := pub.lines[11].Text
	if !strings.HasPrefix(instr, "<CANCEL") {
		t.Errorf("instruction = %q, want <CANCEL on the left", instr)
	}
	if !strings.HasSuffix(instr, "CONFIRM>") {
		t.Errorf("instruction = %q, want CONFIRM> on the right", instr)
	}
	// Warning row is blank outside the Hard variant.
	if strings.TrimSpace(pub.lines[1].Text) != "" {
		t.Errorf("warning row = %q, want blank", pub.lines[1].Text)
	}
}

// TestRenderCountdownStatus tests the remaining-seconds status row
func TestRenderCountdownStatus(t *testing.T) {
	clock := timing.NewManualClock(time.Unix(0, 0))
	pub := &fakePublisher{}
	d := New(clock, pub, nil)

	d.ShowCountdown("REBOOT", nil, 5, nil)
	if !strings.Contains(pub.lines[12].Text, "AUTO CONFIRM IN 5S") {
		t.Errorf("status = %q", pub.lines[12].Text)
	}

	clock.Advance(time.Second)
	if !strings.Contains(pub.lines[12].Text, "AUTO CONFIRM IN 4S") {
		t.Errorf("status after tick = %q", pub.lines[12].Text)
	}
}
