package main

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// startReminderCron schedules the daily sweep that pings the reminder
// webhook for events starting inside the configured window.
func startReminderCron() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc(REMINDER_CRON_SPEC, runReminderSweep); err != nil {
		log.Printf("[reminders] invalid cron spec %q: %v", REMINDER_CRON_SPEC, err)
		return c
	}
	c.Start()
	log.Printf("[reminders] sweep scheduled (%s)", REMINDER_CRON_SPEC)
	return c
}

func runReminderSweep() {
	if REMINDER_WEBHOOK_URL == "" {
		return
	}

	now := time.Now()
	window := time.Duration(REMINDER_WINDOW_HOURS) * time.Hour
	sent := 0

	for _, ev := range snapshotEvents() {
		start, err := parseTemporal(ev.StartISO)
		if err != nil {
			continue
		}
		at := start.at
		if start.floating {
			// Floating wall-clock digits are anchored as UTC; reinterpret
			// them in the server zone to decide whether the event is near.
			at = time.Date(at.Year(), at.Month(), at.Day(), at.Hour(), at.Minute(), at.Second(), 0, time.Local)
		}
		if at.After(now) && at.Before(now.Add(window)) {
			sendReminder(ev)
			sent++
		}
	}

	if sent > 0 {
		log.Printf("[reminders] sent %d reminders", sent)
	}
}

func sendReminder(ev Event) {
	payload := map[string]any{
		"type":         "reminder",
		"event_id":     ev.ID,
		"title":        ev.Title,
		"when":         formatEventWhen(ev),
		"where":        ev.Location,
		"rsvp_summary": summarizeRSVPs(ev.ID),
	}

	resp, err := webhookClient.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(REMINDER_WEBHOOK_URL)
	if err != nil {
		log.Printf("[reminders] webhook delivery failed for %s: %v", ev.ID, err)
		return
	}
	if resp.IsError() {
		log.Printf("[reminders] webhook returned status %d for %s", resp.StatusCode(), ev.ID)
	}
}
