// Package http contains the gin handlers for the service API.
package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BenjaminEHowe/transmaths/internal/logging"
	"github.com/BenjaminEHowe/transmaths/internal/monitoring"
	"github.com/BenjaminEHowe/transmaths/internal/service"
	"github.com/BenjaminEHowe/transmaths/internal/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root handles the index status check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Transmathematics Service",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"uptime_seconds":   h.metrics.UptimeSeconds(),
	})
}

// ListServices lists registered services and their tools
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if raw := c.Query("category"); raw != "" {
		cat := types.Category(raw)
		category = &cat
	}

	services := h.registry.List(category)
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    h.registry.Stats(),
	})
}

// DiscoverRequest is the body of POST /services/discover
type DiscoverRequest struct {
	Intent string `json:"intent" binding:"required"`
	Limit  int    `json:"limit"`
}

// DiscoverServices finds services relevant to an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.Discover(req.Intent, req.Limit),
	})
}

// ExecuteRequest is the body of POST /services/execute
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// ExecuteService runs a tool through the registry
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := logging.RequestID(c)
	appCtx := &types.Context{}
	if requestID != "" {
		appCtx.RequestID = &requestID
	}

	timer := monitoring.NewTimer(h.metrics, req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
	}
	c.JSON(http.StatusOK, result)
}
