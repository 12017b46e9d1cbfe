package config

import (
	"testing"
	"time"
)

var rangeNow = time.Date(2026, 8, 21, 15, 30, 0, 0, time.UTC)

func TestParseRange_Defaults(t *testing.T) {
	r, err := ParseRange("", "", rangeNow)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}

	wantStop := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)
	if !r.Stop.Equal(wantStop) {
		t.Errorf("Stop = %v, want today midnight UTC %v", r.Stop, wantStop)
	}
	if !r.Start.Equal(wantStop.AddDate(0, 0, -7)) {
		t.Errorf("Start = %v, want 7 days before stop", r.Start)
	}
}

func TestParseRange_ExplicitDates(t *testing.T) {
	r, err := ParseRange("2026-08-14", "2026-08-21", rangeNow)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if !r.Start.Equal(time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Start = %v", r.Start)
	}
	if !r.Stop.Equal(time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Stop = %v", r.Stop)
	}
}

func TestParseRange_RFC3339(t *testing.T) {
	r, err := ParseRange("2026-08-14T06:00:00Z", "2026-08-15T06:00:00Z", rangeNow)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if r.Stop.Sub(r.Start) != 24*time.Hour {
		t.Errorf("window = %v, want 24h", r.Stop.Sub(r.Start))
	}
}

func TestParseRange_TooWide(t *testing.T) {
	if _, err := ParseRange("2026-08-01", "2026-08-21", rangeNow); err == nil {
		t.Error("expected error for range wider than 7 days")
	}
}

func TestParseRange_StartNotBeforeStop(t *testing.T) {
	if _, err := ParseRange("2026-08-21", "2026-08-14", rangeNow); err == nil {
		t.Error("expected error for inverted range")
	}
	if _, err := ParseRange("2026-08-21", "2026-08-21", rangeNow); err == nil {
		t.Error("expected error for empty range")
	}
}

func TestParseRange_BadFormat(t *testing.T) {
	if _, err := ParseRange("21/08/2026", "", rangeNow); err == nil {
		t.Error("expected error for unsupported date format")
	}
}
