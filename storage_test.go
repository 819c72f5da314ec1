package main

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempStorage(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	EVENTS_FILE_PATH = filepath.Join(dir, "events.json")
	RSVPS_FILE_PATH = filepath.Join(dir, "rsvps.json")
	TEMPLATES_FILE_PATH = filepath.Join(dir, "templates.json")

	eventsMutex.Lock()
	events = map[string]Event{}
	eventsMutex.Unlock()
	rsvpsMutex.Lock()
	rsvps = map[string][]RSVP{}
	rsvpsMutex.Unlock()
}

func TestEventsRoundTrip(t *testing.T) {
	useTempStorage(t)

	ev := Event{
		ID:         "ev-1",
		ShareToken: "abc123",
		HostKey:    "key-1",
		Title:      "Housewarming",
		StartISO:   "2025-06-21T18:00:00",
		Start:      "June 21, 6:00 PM",
		Created:    100,
	}
	putEvent(ev)
	if err := saveEvents(); err != nil {
		t.Fatalf("saveEvents failed: %v", err)
	}

	eventsMutex.Lock()
	events = map[string]Event{}
	eventsMutex.Unlock()

	loadEvents()

	loaded, ok := getEvent("ev-1")
	if !ok {
		t.Fatalf("event not found after reload")
	}
	if loaded != ev {
		t.Fatalf("round trip mismatch: got %+v, want %+v", loaded, ev)
	}

	if _, ok := findEventByToken("abc123"); !ok {
		t.Fatalf("findEventByToken failed after reload")
	}
	if list := eventsForHostKey("key-1"); len(list) != 1 {
		t.Fatalf("eventsForHostKey returned %d events, want 1", len(list))
	}
}

func TestRSVPsRoundTripAndSummary(t *testing.T) {
	useTempStorage(t)

	addRSVP(RSVP{ID: "r1", EventID: "ev-1", Name: "Ada", Status: "yes", PartySize: 2, Created: 1})
	addRSVP(RSVP{ID: "r2", EventID: "ev-1", Name: "Bob", Status: "no", Created: 2})
	addRSVP(RSVP{ID: "r3", EventID: "ev-1", Name: "Cal", Status: "maybe", Created: 3})
	addRSVP(RSVP{ID: "r4", EventID: "ev-2", Name: "Dee", Status: "yes", PartySize: 1, Created: 4})

	if err := saveRSVPs(); err != nil {
		t.Fatalf("saveRSVPs failed: %v", err)
	}

	rsvpsMutex.Lock()
	rsvps = map[string][]RSVP{}
	rsvpsMutex.Unlock()

	loadRSVPs()

	if got := len(rsvpsForEvent("ev-1")); got != 3 {
		t.Fatalf("rsvpsForEvent(ev-1) returned %d, want 3", got)
	}

	sum := summarizeRSVPs("ev-1")
	if sum.Yes != 1 || sum.No != 1 || sum.Maybe != 1 || sum.Guests != 2 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	dropRSVPsForEvent("ev-1")
	if got := len(rsvpsForEvent("ev-1")); got != 0 {
		t.Fatalf("rsvps remain after drop: %d", got)
	}
}

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := atomicWrite(path, []byte(`{"ok":true}`), 0644); err != nil {
		t.Fatalf("atomicWrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestLoadEventsKeepsMemoryOnBadFile(t *testing.T) {
	useTempStorage(t)

	putEvent(Event{ID: "ev-1", Title: "Kept"})
	if err := os.WriteFile(EVENTS_FILE_PATH, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loadEvents()

	if _, ok := getEvent("ev-1"); !ok {
		t.Fatalf("in-memory events lost on unmarshal failure")
	}
}
