package main

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type eventRequest struct {
	Title       string `json:"title"`
	HostName    string `json:"host_name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Template    string `json:"template"`
	StartISO    string `json:"start_iso"`
	EndISO      string `json:"end_iso"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Timezone    string `json:"timezone"`
	AllDay      bool   `json:"all_day"`
}

func createEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ev := Event{
		Title:       strings.TrimSpace(req.Title),
		HostName:    strings.TrimSpace(req.HostName),
		Description: req.Description,
		Location:    strings.TrimSpace(req.Location),
		Template:    req.Template,
		StartISO:    strings.TrimSpace(req.StartISO),
		EndISO:      strings.TrimSpace(req.EndISO),
		Start:       strings.TrimSpace(req.Start),
		End:         strings.TrimSpace(req.End),
		Timezone:    strings.TrimSpace(req.Timezone),
		AllDay:      req.AllDay,
	}

	if ok, msg := ValidateEvent(ev); !ok {
		c.JSON(400, gin.H{"error": msg})
		return
	}

	ev.ID = uuid.NewString()
	ev.ShareToken = generateShareToken()
	ev.HostKey = uuid.NewString()
	ev.Created = time.Now().UnixMilli()

	putEvent(ev)
	if err := saveEvents(); err != nil {
		c.JSON(500, gin.H{"error": "Failed to persist event"})
		return
	}

	c.JSON(200, gin.H{
		"event":    ev.ToNet(),
		"host_key": ev.HostKey,
	})
}

// eventForHost looks up an event and checks the caller's host key.
func eventForHost(c *gin.Context) (Event, bool) {
	ev, ok := getEvent(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"error": "Event not found"})
		return Event{}, false
	}
	key := hostKeyFromRequest(c)
	if key == "" || key != ev.HostKey {
		c.JSON(401, gin.H{"error": "Invalid host key"})
		return Event{}, false
	}
	return ev, true
}

func listEvents(c *gin.Context) {
	key := hostKeyFromRequest(c)
	if key == "" {
		c.JSON(401, gin.H{"error": "Host key required"})
		return
	}

	list := eventsForHostKey(key)
	out := make([]NetEvent, 0, len(list))
	for _, ev := range list {
		out = append(out, ev.ToNet())
	}
	c.JSON(200, out)
}

func getEventHandler(c *gin.Context) {
	ev, ok := eventForHost(c)
	if !ok {
		return
	}
	c.JSON(200, gin.H{
		"event":        ev.ToNet(),
		"rsvps":        rsvpsForEvent(ev.ID),
		"rsvp_summary": summarizeRSVPs(ev.ID),
	})
}

type eventPatch struct {
	Title       *string `json:"title"`
	HostName    *string `json:"host_name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Template    *string `json:"template"`
	StartISO    *string `json:"start_iso"`
	EndISO      *string `json:"end_iso"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Timezone    *string `json:"timezone"`
	AllDay      *bool   `json:"all_day"`
}

func updateEvent(c *gin.Context) {
	ev, ok := eventForHost(c)
	if !ok {
		return
	}

	var patch eventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if patch.Title != nil {
		ev.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.HostName != nil {
		ev.HostName = strings.TrimSpace(*patch.HostName)
	}
	if patch.Description != nil {
		ev.Description = *patch.Description
	}
	if patch.Location != nil {
		ev.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.Template != nil {
		ev.Template = *patch.Template
	}
	if patch.StartISO != nil {
		ev.StartISO = strings.TrimSpace(*patch.StartISO)
	}
	if patch.EndISO != nil {
		ev.EndISO = strings.TrimSpace(*patch.EndISO)
	}
	if patch.Start != nil {
		ev.Start = strings.TrimSpace(*patch.Start)
	}
	if patch.End != nil {
		ev.End = strings.TrimSpace(*patch.End)
	}
	if patch.Timezone != nil {
		ev.Timezone = strings.TrimSpace(*patch.Timezone)
	}
	if patch.AllDay != nil {
		ev.AllDay = *patch.AllDay
	}

	if ok, msg := ValidateEvent(ev); !ok {
		c.JSON(400, gin.H{"error": msg})
		return
	}

	ev.Updated = time.Now().UnixMilli()
	putEvent(ev)
	if err := saveEvents(); err != nil {
		c.JSON(500, gin.H{"error": "Failed to persist event"})
		return
	}

	c.JSON(200, gin.H{"event": ev.ToNet()})
}

func deleteEvent(c *gin.Context) {
	ev, ok := eventForHost(c)
	if !ok {
		return
	}

	removeEvent(ev.ID)
	dropRSVPsForEvent(ev.ID)
	if err := saveEvents(); err != nil {
		c.JSON(500, gin.H{"error": "Failed to persist events"})
		return
	}
	if err := saveRSVPs(); err != nil {
		c.JSON(500, gin.H{"error": "Failed to persist rsvps"})
		return
	}

	c.JSON(200, gin.H{"message": "Event deleted"})
}
