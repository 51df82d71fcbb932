package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/awaissaddiqui/Flask-Server/internal/domain/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	classifier service.Classifier
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(classifier service.Classifier) *HealthHandler {
	return &HealthHandler{classifier: classifier}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	components := make(map[string]string)
	healthy := true

	if h.classifier != nil && h.classifier.Classes() > 0 {
		components["model"] = "ok"
		components["model_classes"] = strconv.Itoa(h.classifier.Classes())
	} else {
		components["model"] = "not loaded"
		healthy = false
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.classifier == nil || h.classifier.Classes() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model not loaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
