package dates_test

import (
	"testing"
	"time"

	"github.com/dalemusser/classboard/internal/app/system/dates"
)

func TestParse_BareDate(t *testing.T) {
	got, err := dates.Parse("2099-12-31")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("bare date: got %v, want midnight UTC %v", got, want)
	}
}

func TestParse_DateTime(t *testing.T) {
	got, err := dates.Parse("2099-12-31T10:00:00")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := time.Date(2099, 12, 31, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("date-time: got %v, want %v", got, want)
	}
}

func TestParse_DateTimeWithOffset(t *testing.T) {
	got, err := dates.Parse("2026-06-01T08:30:00+02:00")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := time.Date(2026, 6, 1, 6, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("offset date-time: got %v, want %v", got, want)
	}
}

func TestParse_MinutePrecision(t *testing.T) {
	got, err := dates.Parse("2026-06-01T08:30")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Minute() != 30 || got.Second() != 0 {
		t.Errorf("minute-precision: got %v", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "tomorrow", "2026-13-40", "12/31/2099", "2026-06-01 08:30:00Z junk"} {
		if _, err := dates.Parse(s); err == nil {
			t.Errorf("Parse(%q): expected error, got none", s)
		}
	}
}

func TestFormat_UTC(t *testing.T) {
	loc := time.FixedZone("plus2", 2*60*60)
	in := time.Date(2026, 6, 1, 8, 30, 0, 0, loc)

	got := dates.Format(in)
	if got != "2026-06-01T06:30:00Z" {
		t.Errorf("Format: got %q, want %q", got, "2026-06-01T06:30:00Z")
	}
}

func TestFormatPtr_Nil(t *testing.T) {
	if got := dates.FormatPtr(nil); got != nil {
		t.Errorf("FormatPtr(nil): got %q, want nil", *got)
	}

	in := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	got := dates.FormatPtr(&in)
	if got == nil || *got != "2026-01-02T00:00:00Z" {
		t.Errorf("FormatPtr: got %v", got)
	}
}
