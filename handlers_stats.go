package main

import (
	"time"

	"github.com/gin-gonic/gin"
)

var startTime time.Time

func getStatus(c *gin.Context) {
	// Calculate uptime
	uptime := time.Since(startTime).Seconds()

	eventsMutex.RLock()
	eventsCount := len(events)
	eventsMutex.RUnlock()

	rsvpsMutex.RLock()
	rsvpsCount := 0
	for _, group := range rsvps {
		rsvpsCount += len(group)
	}
	rsvpsMutex.RUnlock()

	templatesMutex.RLock()
	templatesCount := len(templates)
	templatesMutex.RUnlock()

	c.JSON(200, gin.H{
		"status":    "ok",
		"uptime":    uptime,
		"events":    eventsCount,
		"rsvps":     rsvpsCount,
		"templates": templatesCount,
		"version":   "1.0.0",
	})
}
