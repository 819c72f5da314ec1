package main

import (
	"encoding/json"
	"log"
	"os"
	"sort"
	"sync"
	"time"
)

var (
	events      = map[string]Event{}
	eventsMutex sync.RWMutex

	rsvps      = map[string][]RSVP{}
	rsvpsMutex sync.RWMutex

	templates      = make([]Template, 0)
	templatesMutex sync.RWMutex
)

// File operations
func loadEvents() {
	eventsMutex.Lock()
	defer eventsMutex.Unlock()

	if _, err := os.Stat(EVENTS_FILE_PATH); os.IsNotExist(err) {
		events = map[string]Event{}
		return
	}

	data, err := os.ReadFile(EVENTS_FILE_PATH)
	if err != nil {
		log.Printf("[storage] error reading events file (keeping in-memory events): %v", err)
		return
	}
	if len(data) == 0 {
		log.Printf("[storage] events file read returned 0 bytes; preserving existing in-memory events (%d)", len(events))
		return
	}

	var loaded []Event
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("[storage] error unmarshaling events (keeping existing %d events): %v", len(events), err)
		return
	}
	events = make(map[string]Event, len(loaded))
	for _, ev := range loaded {
		events[ev.ID] = ev
	}
}

func saveEvents() error {
	eventsMutex.RLock()
	list := make([]Event, 0, len(events))
	for _, ev := range events {
		list = append(list, ev)
	}
	eventsMutex.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].Created < list[j].Created })

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(EVENTS_FILE_PATH, data, 0644)
}

func putEvent(ev Event) {
	eventsMutex.Lock()
	events[ev.ID] = ev
	eventsMutex.Unlock()
}

func getEvent(id string) (Event, bool) {
	eventsMutex.RLock()
	defer eventsMutex.RUnlock()
	ev, ok := events[id]
	return ev, ok
}

func removeEvent(id string) {
	eventsMutex.Lock()
	delete(events, id)
	eventsMutex.Unlock()
}

func findEventByToken(token string) (Event, bool) {
	eventsMutex.RLock()
	defer eventsMutex.RUnlock()
	for _, ev := range events {
		if ev.ShareToken == token {
			return ev, true
		}
	}
	return Event{}, false
}

func eventsForHostKey(hostKey string) []Event {
	eventsMutex.RLock()
	defer eventsMutex.RUnlock()
	list := make([]Event, 0)
	for _, ev := range events {
		if ev.HostKey == hostKey {
			list = append(list, ev)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Created < list[j].Created })
	return list
}

func snapshotEvents() []Event {
	eventsMutex.RLock()
	defer eventsMutex.RUnlock()
	list := make([]Event, 0, len(events))
	for _, ev := range events {
		list = append(list, ev)
	}
	return list
}

func loadRSVPs() {
	rsvpsMutex.Lock()
	defer rsvpsMutex.Unlock()

	if _, err := os.Stat(RSVPS_FILE_PATH); os.IsNotExist(err) {
		rsvps = map[string][]RSVP{}
		return
	}

	data, err := os.ReadFile(RSVPS_FILE_PATH)
	if err != nil {
		log.Printf("[storage] error reading rsvps file (keeping in-memory rsvps): %v", err)
		return
	}
	if len(data) == 0 {
		return
	}

	var loaded []RSVP
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("[storage] error unmarshaling rsvps: %v", err)
		return
	}
	rsvps = map[string][]RSVP{}
	for _, r := range loaded {
		rsvps[r.EventID] = append(rsvps[r.EventID], r)
	}
}

func saveRSVPs() error {
	rsvpsMutex.RLock()
	list := make([]RSVP, 0)
	for _, group := range rsvps {
		list = append(list, group...)
	}
	rsvpsMutex.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].Created < list[j].Created })

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(RSVPS_FILE_PATH, data, 0644)
}

func addRSVP(r RSVP) {
	rsvpsMutex.Lock()
	rsvps[r.EventID] = append(rsvps[r.EventID], r)
	rsvpsMutex.Unlock()
}

func rsvpsForEvent(eventID string) []RSVP {
	rsvpsMutex.RLock()
	defer rsvpsMutex.RUnlock()
	group := rsvps[eventID]
	out := make([]RSVP, len(group))
	copy(out, group)
	return out
}

func dropRSVPsForEvent(eventID string) {
	rsvpsMutex.Lock()
	delete(rsvps, eventID)
	rsvpsMutex.Unlock()
}

func summarizeRSVPs(eventID string) RSVPSummary {
	rsvpsMutex.RLock()
	defer rsvpsMutex.RUnlock()
	var sum RSVPSummary
	for _, r := range rsvps[eventID] {
		switch r.Status {
		case "yes":
			sum.Yes++
			sum.Guests += r.PartySize
		case "no":
			sum.No++
		case "maybe":
			sum.Maybe++
		}
	}
	return sum
}

func loadTemplates() {
	templatesMutex.Lock()
	defer templatesMutex.Unlock()

	data, err := os.ReadFile(TEMPLATES_FILE_PATH)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[storage] error reading templates file: %v", err)
		}
		return
	}

	var loaded []Template
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("[storage] error unmarshaling templates (keeping existing %d): %v", len(templates), err)
		return
	}
	templates = loaded
}

func getAllTemplates() []Template {
	templatesMutex.RLock()
	defer templatesMutex.RUnlock()
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// watchTemplatesFile picks up catalog edits without a restart. The double
// sleep lets a slow writer finish before we re-read.
func watchTemplatesFile() {
	var lastMtime time.Time
	if stat, err := os.Stat(TEMPLATES_FILE_PATH); err == nil {
		lastMtime = stat.ModTime()
	}

	for {
		time.Sleep(500 * time.Millisecond)
		if stat, err := os.Stat(TEMPLATES_FILE_PATH); err == nil {
			if stat.ModTime().After(lastMtime) {
				time.Sleep(500 * time.Millisecond)
				loadTemplates()
				lastMtime = stat.ModTime()
			}
		}
	}
}
