package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler is the liveness probe.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "VoyageMind API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
