package main

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Helper functions
func generateShareToken() string {
	bytes := make([]byte, 6)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func corsMiddleware() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "PUT", "OPTIONS"}
	config.AllowHeaders = []string{"Content-Type", "Authorization"}
	return cors.New(config)
}

func hostKeyFromRequest(c *gin.Context) string {
	key := c.GetHeader("Authorization")
	key = strings.TrimPrefix(key, "Bearer ")
	if key == "" {
		key = c.Query("host_key")
	}
	return strings.TrimSpace(key)
}

func isAdminRequest(c *gin.Context) bool {
	if ADMIN_TOKEN == "" {
		return false
	}
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	return token == ADMIN_TOKEN
}
