package http

import (
	"testing"

	"bemviver/internal/core"
)

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  caminhada  ", "caminhada"},
		{"linha\x00suja\x07", "linhasuja"},
		{"acentuação ok", "acentuação ok"},
		{"", ""},
	}
	for _, c := range cases {
		if got := sanitizeInput(c.in); got != c.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"68.5", 68.5, false},
		{"68,5", 68.5, false},
		{"70", 70, false},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := parseDecimal(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseDecimal(%q) expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDecimal(%q) unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseDecimal(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDateOr(t *testing.T) {
	fallback := core.NewDate(2024, 6, 10)

	if got := parseDateOr("2024-06-12", fallback); got.ISO() != "2024-06-12" {
		t.Errorf("valid date: got %s", got.ISO())
	}
	if got := parseDateOr("12/06/2024", fallback); got.ISO() != "2024-06-10" {
		t.Errorf("invalid date should fall back: got %s", got.ISO())
	}
	if got := parseDateOr("", fallback); got.ISO() != "2024-06-10" {
		t.Errorf("empty date should fall back: got %s", got.ISO())
	}
}
