// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawtrail/internal/modules/walk"
	"pawtrail/internal/route"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeRouteError maps the pipeline's error taxonomy onto HTTP statuses.
// Sentinel messages are already user-facing, so they pass through verbatim.
func writeRouteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, route.ErrValidation):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, route.ErrLocationNotFound), errors.Is(err, route.ErrNoCandidates):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, route.ErrAIService), errors.Is(err, route.ErrDirections):
		writeError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, route.ErrFeatureDisabled):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeWalkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, walk.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, walk.ErrStore):
		writeError(c, http.StatusInternalServerError, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
