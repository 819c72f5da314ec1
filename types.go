package main

// Event is the persisted invitation record. StartISO/EndISO are the
// machine-generated timestamps; Start/End hold whatever the host actually
// typed and double as both a parse fallback and the reconciliation ground
// truth for the "when" line.
type Event struct {
	ID          string `json:"id"`
	ShareToken  string `json:"share_token"`
	HostKey     string `json:"host_key"`
	Title       string `json:"title"`
	HostName    string `json:"host_name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Template    string `json:"template,omitempty"`
	StartISO    string `json:"start_iso,omitempty"`
	EndISO      string `json:"end_iso,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	AllDay      bool   `json:"all_day,omitempty"`
	Created     int64  `json:"created"`
	Updated     int64  `json:"updated,omitempty"`
}

// NetEvent is the outward-facing view of an Event. The host key never
// leaves the server, and the schedule/address display fields are resolved
// at response time rather than stored.
type NetEvent struct {
	ID          string       `json:"id"`
	ShareToken  string       `json:"share_token"`
	Title       string       `json:"title"`
	HostName    string       `json:"host_name"`
	Description string       `json:"description,omitempty"`
	Location    string       `json:"location,omitempty"`
	Template    string       `json:"template,omitempty"`
	StartISO    string       `json:"start_iso,omitempty"`
	EndISO      string       `json:"end_iso,omitempty"`
	Start       string       `json:"start,omitempty"`
	End         string       `json:"end,omitempty"`
	Timezone    string       `json:"timezone,omitempty"`
	AllDay      bool         `json:"all_day,omitempty"`
	When        string       `json:"when,omitempty"`
	WhenLabel   rangeLabel   `json:"when_label"`
	Where       AddressParts `json:"where"`
	Created     int64        `json:"created"`
}

func (ev Event) ToNet() NetEvent {
	return NetEvent{
		ID:          ev.ID,
		ShareToken:  ev.ShareToken,
		Title:       ev.Title,
		HostName:    ev.HostName,
		Description: ev.Description,
		Location:    ev.Location,
		Template:    ev.Template,
		StartISO:    ev.StartISO,
		EndISO:      ev.EndISO,
		Start:       ev.Start,
		End:         ev.End,
		Timezone:    ev.Timezone,
		AllDay:      ev.AllDay,
		When:        formatEventWhen(ev),
		WhenLabel:   formatEventLabel(ev),
		Where:       splitAddress(ev.Location),
		Created:     ev.Created,
	}
}

type RSVP struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	PartySize int    `json:"party_size"`
	Note      string `json:"note,omitempty"`
	Created   int64  `json:"created"`
}

type RSVPSummary struct {
	Yes    int `json:"yes"`
	No     int `json:"no"`
	Maybe  int `json:"maybe"`
	Guests int `json:"guests"`
}

type Template struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Preview  string `json:"preview,omitempty"`
	Premium  bool   `json:"premium,omitempty"`
}
