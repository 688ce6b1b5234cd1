package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness endpoints.
type HealthHandler struct {
	env     string
	started time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env, started: time.Now()}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"message":     "PetNutriCare Backend API is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.env,
		"uptime":      time.Since(h.started).Seconds(),
	})
}
