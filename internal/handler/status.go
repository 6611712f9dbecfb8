package handler

import (
	"net/http"
	"strconv"

	"modbot/internal/incidents"
	"modbot/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusHandler exposes the moderation state over the admin API: open
// incidents from the in-memory registry and resolved decisions from the audit
// store.
type StatusHandler interface {
	GetOpenIncidents(c *gin.Context)
	GetRecentDecisions(c *gin.Context)
}

type statusHandler struct {
	registry     *incidents.Registry
	decisionRepo repository.DecisionRepository
	logger       *zap.Logger
}

// NewStatusHandler creates a new status handler. The decision repository may
// be nil when the bot runs without a database.
func NewStatusHandler(registry *incidents.Registry, decisionRepo repository.DecisionRepository, logger *zap.Logger) StatusHandler {
	return &statusHandler{
		registry:     registry,
		decisionRepo: decisionRepo,
		logger:       logger,
	}
}

// GetOpenIncidents handles GET /api/incidents/open
func (h *statusHandler) GetOpenIncidents(c *gin.Context) {
	open := h.registry.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"count":     len(open),
		"incidents": open,
	})
}

// GetRecentDecisions handles GET /api/decisions
func (h *statusHandler) GetRecentDecisions(c *gin.Context) {
	if h.decisionRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "decision audit store is not configured"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer up to 500"})
			return
		}
		limit = parsed
	}

	records, err := h.decisionRepo.ListRecent(limit)
	if err != nil {
		h.logger.Error("Failed to load recent decisions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load decisions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"decisions": records})
}
