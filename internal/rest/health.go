package rest

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthCheck pings one backing dependency.
type HealthCheck func(ctx context.Context) error

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string            `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string            `json:"timestamp"` // RFC 3339
	Checks    map[string]string `json:"checks"`
}

type HealthHandler struct {
	Checks  map[string]HealthCheck
	Timeout time.Duration
}

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		Checks:  checks,
		Timeout: 5 * time.Second,
	}
}

// Health returns 200 when every dependency answers, 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	names := make([]string, 0, len(h.Checks))
	for name := range h.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]string, len(names)),
	}
	code := http.StatusOK
	for _, name := range names {
		if err := h.Checks[name](ctx); err != nil {
			logrus.Warnf("health check %s failed: %v", name, err)
			resp.Checks[name] = "unhealthy: " + err.Error()
			resp.Status = "unhealthy"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "healthy"
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.JSON(code, resp)
}
