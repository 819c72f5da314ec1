package main

import (
	"github.com/gin-gonic/gin"
)

func getTemplates(c *gin.Context) {
	c.JSON(200, getAllTemplates())
}

func reloadTemplatesEndpoint(c *gin.Context) {
	if !isAdminRequest(c) {
		c.JSON(403, gin.H{"error": "Insufficient permissions"})
		return
	}

	loadTemplates()
	c.JSON(200, gin.H{"message": "Templates reloaded successfully"})
}

func getLimits(c *gin.Context) {
	c.JSON(200, eventLimits)
}
