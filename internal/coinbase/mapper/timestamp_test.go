package mapper

import (
	"math"
	"testing"
	"time"
)

// go test -v --run TestParseExchangeTime
func TestParseExchangeTime(t *testing.T) {
	et, ok := parseExchangeTime("2024-01-01T00:00:00.123456Z")
	if !ok {
		t.Fatal("expected valid timestamp")
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 123_000_000, time.UTC)
	if !et.ts.Equal(want) {
		t.Errorf("expected %v, got %v", want, et.ts)
	}
	if et.micro != 456 {
		t.Errorf("expected micro remainder 456, got %d", et.micro)
	}
}

// go test -v --run TestParseExchangeTimeInvalid
func TestParseExchangeTimeInvalid(t *testing.T) {
	// Pre-epoch times are the known exchange defect.
	if _, ok := parseExchangeTime("0001-01-01T00:00:00.000000Z"); ok {
		t.Error("expected epoch-origin time to be invalid")
	}
	if _, ok := parseExchangeTime(""); ok {
		t.Error("expected empty string to be invalid")
	}
	if _, ok := parseExchangeTime("not-a-time"); ok {
		t.Error("expected garbage to be invalid")
	}
}

// go test -v --run TestMicroRemainder
func TestMicroRemainder(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"2024-01-01T00:00:00.123456Z", 456},
		{"2024-01-01T00:00:00.123Z", 0},
		{"2024-01-01T00:00:00.1234Z", 400},
		{"2024-01-01T00:00:00.123456789Z", 456}, // nanoseconds beyond micros are cut
		{"2024-01-01T00:00:00Z", 0},
		{"2024-01-01T00:00:00.000001Z", 1},
	}
	for _, c := range cases {
		if got := microRemainder(c.in); got != c.want {
			t.Errorf("microRemainder(%q) = %d, expected %d", c.in, got, c.want)
		}
	}
}

// go test -v --run TestToFloat
func TestToFloat(t *testing.T) {
	if v := toFloat("50000.00"); v != 50000.0 {
		t.Errorf("expected 50000.0, got %v", v)
	}
	if v := toFloat("garbage"); !math.IsNaN(v) {
		t.Errorf("expected NaN for malformed input, got %v", v)
	}
}
