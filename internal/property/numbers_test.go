package property

import (
	"errors"
	"testing"
)

func TestParseFloatTolerant(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"2.5", 2.5, false},
		{"2,5", 2.5, false},
		{"-12.0", -12.0, false},
		{"-12,0", -12.0, false},
		{"  40  ", 40, false},
		{"0", 0, false},
		{"1e3", 1000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1,2,3", 0, true},
		{"1.2,3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseFloatTolerant(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrParseFailed) {
					t.Errorf("parseFloatTolerant(%q) error = %v, want ErrParseFailed", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFloatTolerant(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseFloatTolerant(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseIntTolerant(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"40", 40, false},
		{"-3", -3, false},
		{" 7 ", 7, false},
		{"40.0", 40, false},
		{"40,0", 40, false},
		{"2.6", 3, false}, // rounds, not truncates
		{"", 0, true},
		{"Idle", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseIntTolerant(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrParseFailed) {
					t.Errorf("parseIntTolerant(%q) error = %v, want ErrParseFailed", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseIntTolerant(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseIntTolerant(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	if got := formatFloat(2.5); got != "2.5" {
		t.Errorf("formatFloat(2.5) = %q, want %q", got, "2.5")
	}
	if got := formatFloat(-12); got != "-12" {
		t.Errorf("formatFloat(-12) = %q, want %q", got, "-12")
	}
}
