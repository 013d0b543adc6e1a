package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"adminkit/internal/shared/utils"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now().UTC()}
}

// Healthcheck handles GET /api/healthcheck.
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
