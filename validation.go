package main

import (
	"strings"
	"time"
)

var rsvpStatuses = []string{"yes", "no", "maybe"}

func ValidateEventTitle(title string) (bool, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, "Title is required"
	}
	if len(title) > eventLimits["title_length"] {
		return false, "Title exceeds maximum length"
	}
	return true, ""
}

func ValidateTimezone(tz string) (bool, string) {
	if tz == "" {
		return true, ""
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return false, "Unknown timezone"
	}
	return true, ""
}

// ValidateEvent checks an incoming event record. An event needs at least
// one usable start field; everything else is optional.
func ValidateEvent(ev Event) (bool, string) {
	if ok, msg := ValidateEventTitle(ev.Title); !ok {
		return false, msg
	}
	if len(ev.HostName) > eventLimits["host_name_length"] {
		return false, "Host name exceeds maximum length"
	}
	if len(ev.Description) > eventLimits["description_length"] {
		return false, "Description exceeds maximum length"
	}
	if len(ev.Location) > eventLimits["location_length"] {
		return false, "Location exceeds maximum length"
	}
	if len(ev.Start) > eventLimits["label_length"] || len(ev.End) > eventLimits["label_length"] {
		return false, "Date label exceeds maximum length"
	}
	if ok, msg := ValidateTimezone(ev.Timezone); !ok {
		return false, msg
	}
	if strings.TrimSpace(ev.StartISO) == "" && strings.TrimSpace(ev.Start) == "" {
		return false, "Event needs a start date"
	}
	if strings.TrimSpace(ev.StartISO) != "" {
		if _, err := parseTemporal(ev.StartISO); err != nil {
			return false, "Start date is not a recognizable date"
		}
	}
	if strings.TrimSpace(ev.EndISO) != "" {
		if _, err := parseTemporal(ev.EndISO); err != nil {
			return false, "End date is not a recognizable date"
		}
	}
	return true, ""
}

func ValidateRSVP(r RSVP) (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "Name is required"
	}
	if len(r.Name) > eventLimits["rsvp_name_length"] {
		return false, "Name exceeds maximum length"
	}
	if len(r.Note) > eventLimits["rsvp_note_length"] {
		return false, "Note exceeds maximum length"
	}
	valid := false
	for _, s := range rsvpStatuses {
		if r.Status == s {
			valid = true
			break
		}
	}
	if !valid {
		return false, "Status must be yes, no or maybe"
	}
	if r.PartySize < 0 || r.PartySize > eventLimits["max_party_size"] {
		return false, "Party size out of range"
	}
	return true, ""
}
