package main

import (
	"github.com/gin-gonic/gin"
)

// getInvite serves the public invite payload for a share token. The
// "when" and "where" fields are resolved here so guests always see the
// reconciled schedule line, never the raw field soup.
func getInvite(c *gin.Context) {
	token := c.Param("token")
	ev, ok := findEventByToken(token)
	if !ok {
		c.JSON(404, gin.H{"error": "Invite not found"})
		return
	}

	c.JSON(200, gin.H{
		"event":        ev.ToNet(),
		"rsvp_summary": summarizeRSVPs(ev.ID),
	})
}
