// Package handlers contains the gin handlers of the HTTP API.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/patternrecall"
	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/graph"
	"github.com/soundprediction/patternrecall/pkg/server/dto"
)

// RecallHandler serves recall queries and snapshot reloads.
type RecallHandler struct {
	client patternrecall.PatternRecall
	logger *slog.Logger
}

// NewRecallHandler creates a new recall handler.
func NewRecallHandler(client patternrecall.PatternRecall, logger *slog.Logger) *RecallHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecallHandler{client: client, logger: logger}
}

// Recall handles POST /recall.
func (h *RecallHandler) Recall(c *gin.Context) {
	var req dto.RecallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	results, err := h.client.Recall(c.Request.Context(), req.Query, req.Config)
	if err != nil {
		h.writeRecallError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RecallResponse{
		Query:   req.Query,
		Results: results,
		Total:   len(results),
	})
}

// Reload handles POST /reload. It reads a snapshot directory and swaps
// it in atomically; on failure the previous snapshot keeps serving.
func (h *RecallHandler) Reload(c *gin.Context) {
	var req dto.ReloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	if err := h.client.LoadDir(req.Dir); err != nil {
		h.logger.Error("snapshot reload failed", "dir", req.Dir, "error", err)
		var integrityErr *graph.IntegrityError
		if errors.As(err, &integrityErr) {
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
				Error:   "integrity check failed",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "reload failed",
			Message: err.Error(),
		})
		return
	}

	stats := h.client.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status": "reloaded",
		"nodes":  stats.Nodes,
		"edges":  stats.Edges,
	})
}

func (h *RecallHandler) writeRecallError(c *gin.Context, err error) {
	var cfgErr *config.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid configuration",
			Message: err.Error(),
		})
	case errors.Is(err, graph.ErrNotLoaded):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "graph not loaded",
			Message: err.Error(),
		})
	default:
		h.logger.Error("recall failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "recall failed",
			Message: err.Error(),
		})
	}
}
