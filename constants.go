package main

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var (
	EVENTS_FILE_PATH      string
	RSVPS_FILE_PATH       string
	TEMPLATES_FILE_PATH   string
	RSVP_WEBHOOK_URL      string
	REMINDER_WEBHOOK_URL  string
	REMINDER_CRON_SPEC    string
	REMINDER_WINDOW_HOURS int
	ADMIN_TOKEN           string
	LISTEN_ADDR           string
)

var eventLimits = map[string]int{
	"title_length":       120,
	"host_name_length":   80,
	"description_length": 2000,
	"location_length":    300,
	"label_length":       120,
	"rsvp_name_length":   80,
	"rsvp_note_length":   500,
	"max_party_size":     50,
}

func mustEnv(key string, def string) string {
	val := os.Getenv(key)
	if val == "" {
		if def != "" {
			return def
		}
		log.Printf("[config] WARNING: %s not set", key)
	}
	return val
}

func intEnv(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[config] invalid int for %s=%s (using default %d)", key, raw, def)
		return def
	}
	return v
}

func loadConfigFromEnv() {
	EVENTS_FILE_PATH = mustEnv("EVENTS_FILE_PATH", "./events.json")
	RSVPS_FILE_PATH = mustEnv("RSVPS_FILE_PATH", "./rsvps.json")
	TEMPLATES_FILE_PATH = mustEnv("TEMPLATES_FILE_PATH", "./templates.json")

	// External services
	RSVP_WEBHOOK_URL = mustEnv("RSVP_WEBHOOK_URL", "")
	REMINDER_WEBHOOK_URL = mustEnv("REMINDER_WEBHOOK_URL", "")

	REMINDER_CRON_SPEC = mustEnv("REMINDER_CRON_SPEC", "0 8 * * *")
	REMINDER_WINDOW_HOURS = intEnv("REMINDER_WINDOW_HOURS", 24)

	ADMIN_TOKEN = mustEnv("ADMIN_TOKEN", "")
	LISTEN_ADDR = mustEnv("LISTEN_ADDR", ":8080")
}

var envOnce sync.Once

func loadEnvFile() {
	// Prefer workspace root .env (one directory up) then fall back to local .env.
	// Root file holds authoritative configuration; local .env may override selectively.
	parent := "../.env"
	local := ".env"
	if _, err := os.Stat(parent); err == nil {
		if err := godotenv.Overload(parent); err != nil {
			log.Printf("[env] failed to load parent .env: %v", err)
		} else {
			log.Printf("[env] loaded parent .env (%s)", parent)
		}
	}
	if _, err := os.Stat(local); err == nil {
		if err := godotenv.Overload(local); err != nil {
			log.Printf("[env] failed to load local .env overrides: %v", err)
		} else {
			log.Printf("[env] loaded local .env overrides (%s)", local)
		}
	}
	// Reload config variables after populating environment
	loadConfigFromEnv()
}
