package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "ChequeSaathi API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Index lists the API's top-level endpoints.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "ChequeSaathi API v1.0",
		"endpoints": gin.H{
			"health":       "/health",
			"auth":         "/api/auth",
			"customers":    "/api/customers",
			"cheques":      "/api/cheques",
			"transactions": "/api/transactions",
			"dashboard":    "/api/dashboard",
			"activity":     "/ws/activity",
		},
	})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Route not found"})
}
