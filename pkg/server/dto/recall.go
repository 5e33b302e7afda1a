// Package dto defines the request and response shapes of the HTTP API.
package dto

import (
	"errors"
	"strings"

	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/types"
)

// MaxQueryLength bounds accepted query text.
const MaxQueryLength = 8192

// ErrQueryTooLong is returned when the query exceeds MaxQueryLength.
var ErrQueryTooLong = errors.New("query exceeds maximum length")

// RecallRequest is the body of POST /recall. Config, when present,
// fully replaces the server's default recall configuration for this
// request.
type RecallRequest struct {
	Query  string               `json:"query" binding:"required"`
	Config *config.RecallConfig `json:"config,omitempty"`
}

// Validate performs validation on RecallRequest.
func (r *RecallRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return errors.New("query cannot be empty")
	}
	if len(r.Query) > MaxQueryLength {
		return ErrQueryTooLong
	}
	if r.Config != nil {
		return r.Config.Validate()
	}
	return nil
}

// RecallResponse is the body returned by POST /recall.
type RecallResponse struct {
	Query   string         `json:"query"`
	Results []types.Result `json:"results"`
	Total   int            `json:"total"`
}

// ReloadRequest is the body of POST /reload.
type ReloadRequest struct {
	Dir string `json:"dir" binding:"required"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
