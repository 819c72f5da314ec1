package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	// Ensure environment variables are loaded before any handlers/config usage
	envOnce.Do(loadEnvFile)

	// Initialize start time
	startTime = time.Now()

	// Load initial data
	loadEvents()
	loadRSVPs()
	loadTemplates()

	go watchTemplatesFile()
	startReminderCron()

	gin.SetMode(gin.ReleaseMode)
	r := newRouter()

	log.Printf("[main] listening on %s", LISTEN_ADDR)
	if err := r.Run(LISTEN_ADDR); err != nil {
		log.Fatalf("[main] server exited: %v", err)
	}
}

func newRouter() *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())

	// Host endpoints
	r.POST("/events", createEvent)
	r.GET("/events", listEvents)
	r.GET("/events/:id", getEventHandler)
	r.PATCH("/events/:id", updateEvent)
	r.DELETE("/events/:id", deleteEvent)
	r.GET("/events/:id/rsvps", listRSVPs)

	// Guest endpoints
	r.GET("/invite/:token", getInvite)
	r.POST("/invite/:token/rsvp", createRSVP)

	// Catalog endpoints
	r.GET("/templates", getTemplates)
	r.GET("/reload_templates", reloadTemplatesEndpoint)
	r.GET("/limits", getLimits)

	r.GET("/status", getStatus)

	return r
}
