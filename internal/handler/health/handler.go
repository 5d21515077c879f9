package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Checker reports whether the database of an execution context is usable.
type Checker interface {
	Ready() error
}

// Handler manages health check endpoints
type Handler struct {
	checker Checker
}

// NewHandler creates a new health check handler. A nil checker is always ready.
func NewHandler(checker Checker) *Handler {
	return &Handler{checker: checker}
}

// Register mounts /health and /ready on r.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}

// Health is the liveness probe endpoint
// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready is the readiness probe endpoint. It fails while the database is
// missing or unreadable, with the same message lookups would report.
// GET /ready
func (h *Handler) Ready(c *gin.Context) {
	if h.checker != nil {
		if err := h.checker.Ready(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
