package main

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Resolution of the "When" line. Events carry up to four date/time fields
// that may disagree with each other: ISO timestamps (with or without an
// offset), free-text labels typed by the host, a timezone name, and an
// all-day flag. The functions here turn that into one display string.

var errInvalidTemporalValue = errors.New("invalid temporal value")

// Wall-clock timestamp with no trailing zone designator:
// YYYY-MM-DDTHH:MM[:SS[.fff]]
var floatingLocalRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2})(?::(\d{2}))?(?:\.(\d{1,3}))?$`)

type parsedInstant struct {
	at       time.Time
	floating bool
}

// parseTemporal parses an ISO-ish string. A timestamp without an offset is
// "floating": its wall-clock digits are anchored as UTC so that a later
// UTC render reproduces them verbatim for every viewer. This is an
// anchoring trick, not a timezone claim. Anything else goes through the
// general parser and keeps its real zone.
func parseTemporal(raw string) (parsedInstant, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return parsedInstant{}, errInvalidTemporalValue
	}
	if m := floatingLocalRe.FindStringSubmatch(raw); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		sec := 0
		if m[6] != "" {
			sec, _ = strconv.Atoi(m[6])
		}
		nsec := 0
		if m[7] != "" {
			frac := m[7]
			for len(frac) < 3 {
				frac += "0"
			}
			ms, _ := strconv.Atoi(frac)
			nsec = ms * int(time.Millisecond)
		}
		at := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, time.UTC)
		return parsedInstant{at: at, floating: true}, nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return parsedInstant{}, fmt.Errorf("%w: %q", errInvalidTemporalValue, raw)
	}
	return parsedInstant{at: t}, nil
}

type rangeLabel struct {
	Time string `json:"time,omitempty"`
	Date string `json:"date,omitempty"`
}

const (
	clockLayout     = "3:04 PM"
	shortDateLayout = "Jan 2, 2006"
	longDateLayout  = "Monday, January 2, 2006"
	rangeSep        = " – "
	allDaySuffix    = " (all day)"
)

// effectiveLocation picks the zone a range is rendered in. Floating
// endpoints force UTC so the stored wall-clock digits survive; otherwise
// the event's declared timezone wins, then the server default.
func effectiveLocation(start parsedInstant, end *parsedInstant, timezone string) *time.Location {
	if start.floating || (end != nil && end.floating) {
		return time.UTC
	}
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err == nil {
			return loc
		}
		log.Printf("[when] unknown timezone %q, using server default", timezone)
	}
	return time.Local
}

// sameCalendarDay must be decided after projecting into the effective zone;
// two instants on different UTC dates can share a date once rendered.
func sameCalendarDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// formatRange produces the split time/date fields for an event range.
// It never fails: a missing or invalid start yields the zero label.
func formatRange(start parsedInstant, end *parsedInstant, timezone string, allDay bool) rangeLabel {
	if start.at.IsZero() {
		return rangeLabel{}
	}
	if end != nil && end.at.IsZero() {
		end = nil
	}
	loc := effectiveLocation(start, end, timezone)
	s := start.at.In(loc)

	if allDay {
		date := s.Format(longDateLayout)
		if end != nil && !sameCalendarDay(start.at, end.at, loc) {
			date += rangeSep + end.at.In(loc).Format(longDateLayout)
		}
		return rangeLabel{Date: date + allDaySuffix}
	}

	label := rangeLabel{
		Time: s.Format(clockLayout),
		Date: s.Format(shortDateLayout),
	}
	if end == nil {
		return label
	}
	e := end.at.In(loc)
	label.Time += rangeSep + e.Format(clockLayout)
	if !sameCalendarDay(start.at, end.at, loc) {
		label.Date += rangeSep + e.Format(shortDateLayout)
	}
	return label
}

// formatRangeDisplay composes the same inputs into a single self-contained
// line. Multi-day timed ranges repeat the date on both endpoints so the
// line reads correctly without the split fields.
func formatRangeDisplay(start parsedInstant, end *parsedInstant, timezone string, allDay bool) string {
	if start.at.IsZero() {
		return ""
	}
	if end != nil && end.at.IsZero() {
		end = nil
	}
	loc := effectiveLocation(start, end, timezone)
	s := start.at.In(loc)

	if allDay {
		date := s.Format(longDateLayout)
		if end != nil && !sameCalendarDay(start.at, end.at, loc) {
			date += rangeSep + end.at.In(loc).Format(longDateLayout)
		}
		return date + allDaySuffix
	}

	if end == nil {
		return s.Format(shortDateLayout) + ", " + s.Format(clockLayout)
	}
	e := end.at.In(loc)
	if sameCalendarDay(start.at, end.at, loc) {
		return s.Format(shortDateLayout) + ", " + s.Format(clockLayout) + rangeSep + e.Format(clockLayout)
	}
	return s.Format(shortDateLayout) + ", " + s.Format(clockLayout) +
		rangeSep + e.Format(shortDateLayout) + ", " + e.Format(clockLayout)
}

// computedWhen builds the display line from the structured timestamps.
// Empty string means the ISO fields were absent or unusable.
func computedWhen(ev Event) string {
	start, err := parseTemporal(ev.StartISO)
	if err != nil {
		return ""
	}
	var end *parsedInstant
	if strings.TrimSpace(ev.EndISO) != "" {
		if e, err := parseTemporal(ev.EndISO); err == nil {
			end = &e
		}
	}
	return formatRangeDisplay(start, end, ev.Timezone, ev.AllDay)
}

// formatEventLabel is the split-field variant used by invite rendering.
func formatEventLabel(ev Event) rangeLabel {
	start, err := parseTemporal(ev.StartISO)
	if err != nil {
		return rangeLabel{}
	}
	var end *parsedInstant
	if strings.TrimSpace(ev.EndISO) != "" {
		if e, err := parseTemporal(ev.EndISO); err == nil {
			end = &e
		}
	}
	return formatRange(start, end, ev.Timezone, ev.AllDay)
}

// formatEventWhen resolves the final "When" line: compute from timestamps,
// build the literal-text fallback, then let reconciliation decide which
// one the viewer sees.
func formatEventWhen(ev Event) string {
	computed := computedWhen(ev)
	fallback := buildFallbackRange(ev.Start, ev.End)
	return reconcileWhen(computed, fallback, ev.Start, ev.End)
}
