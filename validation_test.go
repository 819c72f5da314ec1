package main

import (
	"strings"
	"testing"
)

func TestValidateEvent(t *testing.T) {
	base := Event{
		Title:    "Game Night",
		StartISO: "2025-06-21T18:00:00",
	}

	if ok, msg := ValidateEvent(base); !ok {
		t.Fatalf("valid event rejected: %s", msg)
	}

	cases := []struct {
		name   string
		mutate func(ev *Event)
	}{
		{"missing title", func(ev *Event) { ev.Title = "  " }},
		{"title too long", func(ev *Event) { ev.Title = strings.Repeat("x", 121) }},
		{"no start at all", func(ev *Event) { ev.StartISO = ""; ev.Start = "" }},
		{"bad start iso", func(ev *Event) { ev.StartISO = "not a date" }},
		{"bad end iso", func(ev *Event) { ev.EndISO = "whenever" }},
		{"bad timezone", func(ev *Event) { ev.Timezone = "Mars/Olympus_Mons" }},
	}

	for _, tc := range cases {
		ev := base
		tc.mutate(&ev)
		if ok, _ := ValidateEvent(ev); ok {
			t.Fatalf("%s: event should have been rejected", tc.name)
		}
	}

	// A label-only event is fine; the fallback builder handles it.
	labelOnly := Event{Title: "Picnic", Start: "Saturday around noon"}
	if ok, msg := ValidateEvent(labelOnly); !ok {
		t.Fatalf("label-only event rejected: %s", msg)
	}
}

func TestValidateRSVP(t *testing.T) {
	base := RSVP{Name: "Ada", Status: "yes", PartySize: 2}
	if ok, msg := ValidateRSVP(base); !ok {
		t.Fatalf("valid rsvp rejected: %s", msg)
	}

	cases := []struct {
		name   string
		mutate func(r *RSVP)
	}{
		{"missing name", func(r *RSVP) { r.Name = "" }},
		{"bad status", func(r *RSVP) { r.Status = "perhaps" }},
		{"party size negative", func(r *RSVP) { r.PartySize = -1 }},
		{"party size huge", func(r *RSVP) { r.PartySize = 500 }},
	}

	for _, tc := range cases {
		r := base
		tc.mutate(&r)
		if ok, _ := ValidateRSVP(r); ok {
			t.Fatalf("%s: rsvp should have been rejected", tc.name)
		}
	}
}
