package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Pinger is anything that can report whether its backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	DB      Pinger
	Redis   *redis.Client // optional
	Backend string
	Env     string
}

// NewHealthHandler creates a new HealthHandler. rdb may be nil.
func NewHealthHandler(db Pinger, rdb *redis.Client, backend, env string) *HealthHandler {
	return &HealthHandler{DB: db, Redis: rdb, Backend: backend, Env: env}
}

// ReadinessResponse reports the state of each dependency.
type ReadinessResponse struct {
	Status       string            `json:"status"`
	Env          string            `json:"env,omitempty"`
	Backend      string            `json:"backend"`
	Dependencies map[string]string `json:"dependencies"`
}

// Liveness only says the process is serving.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// Readiness pings the database and, when configured, Redis. A Redis outage
// only degrades readiness since the cache is optional.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	deps := map[string]string{}
	status := "ok"

	if err := h.DB.Ping(ctx); err != nil {
		deps["database"] = "down"
		status = "error"
	} else {
		deps["database"] = "ok"
	}

	if h.Redis != nil {
		if err := h.Redis.Ping(ctx).Err(); err != nil {
			deps["redis"] = "down"
			if status == "ok" {
				status = "degraded"
			}
		} else {
			deps["redis"] = "ok"
		}
	}

	code := http.StatusOK
	if status == "error" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, ReadinessResponse{
		Status:       status,
		Env:          h.Env,
		Backend:      h.Backend,
		Dependencies: deps,
	})
}
