package main

import (
	"testing"
)

func mustParse(t *testing.T, raw string) parsedInstant {
	t.Helper()
	p, err := parseTemporal(raw)
	if err != nil {
		t.Fatalf("parseTemporal(%q) failed: %v", raw, err)
	}
	return p
}

func TestParseTemporal_Floating(t *testing.T) {
	cases := map[string]bool{
		"2025-03-08T14:00":          true,
		"2025-03-08T14:00:00":       true,
		"2025-03-08T14:00:00.500":   true,
		"2025-03-08T14:00:00Z":      false,
		"2025-03-08T14:00:00-05:00": false,
	}

	for raw, wantFloating := range cases {
		p := mustParse(t, raw)
		if p.floating != wantFloating {
			t.Fatalf("parseTemporal(%q) floating = %v, want %v", raw, p.floating, wantFloating)
		}
	}
}

func TestParseTemporal_FloatingAnchorsWallClock(t *testing.T) {
	p := mustParse(t, "2025-03-08T14:30:15")
	at := p.at.UTC()
	if at.Year() != 2025 || at.Month() != 3 || at.Day() != 8 || at.Hour() != 14 || at.Minute() != 30 || at.Second() != 15 {
		t.Fatalf("floating wall clock not preserved: got %v", at)
	}
}

func TestParseTemporal_Invalid(t *testing.T) {
	for _, raw := range []string{"", "not a date", "tomorrow-ish maybe"} {
		if _, err := parseTemporal(raw); err == nil {
			t.Fatalf("parseTemporal(%q) should have failed", raw)
		}
	}
}

// A floating timestamp must render the same digits no matter which
// timezone the event declares.
func TestFormatRange_FloatingRoundTrip(t *testing.T) {
	start := mustParse(t, "2025-03-08T14:00:00")

	for _, tz := range []string{"", "UTC", "America/New_York", "Asia/Tokyo"} {
		label := formatRange(start, nil, tz, false)
		if label.Time != "2:00 PM" {
			t.Fatalf("tz %q: time = %q, want %q", tz, label.Time, "2:00 PM")
		}
		if label.Date != "Mar 8, 2025" {
			t.Fatalf("tz %q: date = %q, want %q", tz, label.Date, "Mar 8, 2025")
		}
	}
}

func TestFormatRange_ZonedProjection(t *testing.T) {
	start := mustParse(t, "2025-03-08T14:00:00Z")

	label := formatRange(start, nil, "America/New_York", false)
	if label.Time != "9:00 AM" {
		t.Fatalf("time = %q, want %q", label.Time, "9:00 AM")
	}
	if label.Date != "Mar 8, 2025" {
		t.Fatalf("date = %q, want %q", label.Date, "Mar 8, 2025")
	}
}

func TestFormatRange_SameDayCollapse(t *testing.T) {
	start := mustParse(t, "2025-06-21T18:00:00")
	end := mustParse(t, "2025-06-21T21:30:00")

	label := formatRange(start, &end, "", false)
	if label.Time != "6:00 PM – 9:30 PM" {
		t.Fatalf("time = %q", label.Time)
	}
	if label.Date != "Jun 21, 2025" {
		t.Fatalf("date = %q", label.Date)
	}
}

// Two instants on different UTC dates can still be the same day once
// projected into the event's zone. The test must pass post-projection.
func TestFormatRange_SameDayAfterProjection(t *testing.T) {
	start := mustParse(t, "2025-01-01T23:00:00Z")
	end := mustParse(t, "2025-01-02T01:00:00Z")

	label := formatRange(start, &end, "America/Chicago", false)
	if label.Time != "5:00 PM – 7:00 PM" {
		t.Fatalf("time = %q", label.Time)
	}
	if label.Date != "Jan 1, 2025" {
		t.Fatalf("date = %q, want single date", label.Date)
	}
}

func TestFormatRange_MultiDay(t *testing.T) {
	start := mustParse(t, "2025-06-21T18:00:00")
	end := mustParse(t, "2025-06-22T01:00:00")

	label := formatRange(start, &end, "", false)
	if label.Time != "6:00 PM – 1:00 AM" {
		t.Fatalf("time = %q", label.Time)
	}
	if label.Date != "Jun 21, 2025 – Jun 22, 2025" {
		t.Fatalf("date = %q", label.Date)
	}
}

func TestFormatRange_AllDay(t *testing.T) {
	start := mustParse(t, "2025-07-04T00:00:00")

	first := formatRange(start, nil, "America/New_York", true)
	second := formatRange(start, nil, "America/New_York", true)

	if first.Date != "Friday, July 4, 2025 (all day)" {
		t.Fatalf("date = %q", first.Date)
	}
	if first.Time != "" {
		t.Fatalf("all-day label should have no time, got %q", first.Time)
	}
	if first != second {
		t.Fatalf("all-day formatting not deterministic: %v vs %v", first, second)
	}
}

func TestFormatRange_AllDayMultiDay(t *testing.T) {
	start := mustParse(t, "2025-07-04T00:00:00")
	end := mustParse(t, "2025-07-06T00:00:00")

	label := formatRange(start, &end, "", true)
	want := "Friday, July 4, 2025 – Sunday, July 6, 2025 (all day)"
	if label.Date != want {
		t.Fatalf("date = %q, want %q", label.Date, want)
	}
}

func TestFormatRange_SoftFailure(t *testing.T) {
	label := formatRange(parsedInstant{}, nil, "America/New_York", false)
	if label.Time != "" || label.Date != "" {
		t.Fatalf("invalid start should yield empty label, got %+v", label)
	}
	if got := formatRangeDisplay(parsedInstant{}, nil, "", false); got != "" {
		t.Fatalf("invalid start should yield empty display, got %q", got)
	}
}

func TestFormatRangeDisplay(t *testing.T) {
	start := mustParse(t, "2025-06-21T18:00:00")
	sameDayEnd := mustParse(t, "2025-06-21T21:30:00")
	nextDayEnd := mustParse(t, "2025-06-22T01:00:00")

	if got := formatRangeDisplay(start, nil, "", false); got != "Jun 21, 2025, 6:00 PM" {
		t.Fatalf("no end: %q", got)
	}
	if got := formatRangeDisplay(start, &sameDayEnd, "", false); got != "Jun 21, 2025, 6:00 PM – 9:30 PM" {
		t.Fatalf("same day: %q", got)
	}
	if got := formatRangeDisplay(start, &nextDayEnd, "", false); got != "Jun 21, 2025, 6:00 PM – Jun 22, 2025, 1:00 AM" {
		t.Fatalf("multi day: %q", got)
	}
}

func TestFormatRange_UnknownTimezoneFallsBack(t *testing.T) {
	start := mustParse(t, "2025-03-08T14:00:00")

	// Floating wins over any declared zone, including a bogus one.
	label := formatRange(start, nil, "Mars/Olympus_Mons", false)
	if label.Time != "2:00 PM" {
		t.Fatalf("time = %q", label.Time)
	}
}

func TestFormatEventWhen_ComputedWins(t *testing.T) {
	ev := Event{
		StartISO: "2025-01-05T15:00:00",
		Start:    "Jan 5, 3:00 PM",
	}

	got := formatEventWhen(ev)
	if got != "Jan 5, 2025, 3:00 PM" {
		t.Fatalf("when = %q, want computed label", got)
	}
}

// A timezone bug upstream shifts the computed times away from what the
// host typed; the literal text must win.
func TestFormatEventWhen_MismatchPrefersTypedText(t *testing.T) {
	ev := Event{
		StartISO: "2025-01-05T17:00:00",
		Start:    "Jan 5, 3:00 PM",
	}

	got := formatEventWhen(ev)
	if got != "Jan 5, 3:00 PM" {
		t.Fatalf("when = %q, want typed fallback", got)
	}
}

func TestFormatEventWhen_NoStructuredFields(t *testing.T) {
	ev := Event{
		Start: "Sometime in June",
		End:   "whenever",
	}

	if got := formatEventWhen(ev); got != "Sometime in June – whenever" {
		t.Fatalf("when = %q", got)
	}
}
