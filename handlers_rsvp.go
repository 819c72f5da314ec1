package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

var webhookClient = resty.New().SetTimeout(5 * time.Second)

type rsvpRequest struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	PartySize int    `json:"party_size"`
	Note      string `json:"note"`
}

func createRSVP(c *gin.Context) {
	ev, ok := findEventByToken(c.Param("token"))
	if !ok {
		c.JSON(404, gin.H{"error": "Invite not found"})
		return
	}

	var req rsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	r := RSVP{
		EventID:   ev.ID,
		Name:      strings.TrimSpace(req.Name),
		Status:    strings.ToLower(strings.TrimSpace(req.Status)),
		PartySize: req.PartySize,
		Note:      strings.TrimSpace(req.Note),
	}
	if r.PartySize == 0 && r.Status == "yes" {
		r.PartySize = 1
	}

	if ok, msg := ValidateRSVP(r); !ok {
		c.JSON(400, gin.H{"error": msg})
		return
	}

	r.ID = uuid.NewString()
	r.Created = time.Now().UnixMilli()

	addRSVP(r)
	if err := saveRSVPs(); err != nil {
		c.JSON(500, gin.H{"error": "Failed to persist rsvp"})
		return
	}

	notifyRSVPWebhook(ev, r)

	c.JSON(200, gin.H{
		"rsvp":         r,
		"rsvp_summary": summarizeRSVPs(ev.ID),
	})
}

func listRSVPs(c *gin.Context) {
	ev, ok := eventForHost(c)
	if !ok {
		return
	}
	c.JSON(200, gin.H{
		"rsvps":        rsvpsForEvent(ev.ID),
		"rsvp_summary": summarizeRSVPs(ev.ID),
	})
}

// notifyRSVPWebhook tells the host's configured endpoint about a new
// response. Fire and forget; a dead webhook must never block a guest.
func notifyRSVPWebhook(ev Event, r RSVP) {
	if RSVP_WEBHOOK_URL == "" {
		return
	}

	payload := map[string]any{
		"type":       "rsvp",
		"event_id":   ev.ID,
		"title":      ev.Title,
		"when":       formatEventWhen(ev),
		"name":       r.Name,
		"status":     r.Status,
		"party_size": r.PartySize,
		"note":       r.Note,
	}

	go func() {
		resp, err := webhookClient.R().
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Post(RSVP_WEBHOOK_URL)
		if err != nil {
			log.Printf("[rsvp] webhook delivery failed: %v", err)
			return
		}
		if resp.IsError() {
			log.Printf("[rsvp] webhook returned status %d", resp.StatusCode())
		}
	}()
}
