package model

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		def  Status
		want Status
	}{
		{"blank falls back to default", "", StatusActive, StatusActive},
		{"blank falls back to completed default", "", StatusCompleted, StatusCompleted},
		{"builtin passes through", "Active", StatusCompleted, StatusActive},
		{"custom label passes through verbatim", "No Show", StatusActive, Status("No Show")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeStatus(tc.raw, tc.def); got != tc.want {
				t.Errorf("NormalizeStatus(%q, %q) = %q, want %q", tc.raw, tc.def, got, tc.want)
			}
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if StatusActive.IsTerminal() {
		t.Error("Active must not be terminal")
	}
	if !StatusCompleted.IsTerminal() {
		t.Error("Completed must be terminal")
	}
	if !Status("Cancelled").IsTerminal() {
		t.Error("custom labels are terminal")
	}
}

func TestValidBookingDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2026-08-31", true},
		{"2026-02-30", false},
		{"31-08-2026", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidBookingDate(tc.in); got != tc.want {
			t.Errorf("ValidBookingDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidClockTime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"09:30:00", true},
		{"23:59:59", true},
		{"24:00:00", false},
		{"9:30", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidClockTime(tc.in); got != tc.want {
			t.Errorf("ValidClockTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
