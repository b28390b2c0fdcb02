// README: Route generation handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pawtrail/internal/route"
)

// generateTimeout bounds the whole pipeline; each upstream client also has
// its own transport-level timeout.
const generateTimeout = 90 * time.Second

type RouteHandler struct {
	planner *route.Planner
}

func NewRouteHandler(planner *route.Planner) *RouteHandler {
	return &RouteHandler{planner: planner}
}

type generateRouteReq struct {
	Location         string   `json:"location"`
	TargetDistanceKm float64  `json:"target_distance_km"`
	MustInclude      []string `json:"must_include"`
	SoftPreferences  []string `json:"soft_preferences"`
	Circular         *bool    `json:"circular"` // defaults to true
}

// Generate handles POST /api/routes/generate.
func (h *RouteHandler) Generate(c *gin.Context) {
	var req generateRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	circular := true
	if req.Circular != nil {
		circular = *req.Circular
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	rec, err := h.planner.GenerateCustomRoute(ctx, req.Location, route.Preferences{
		TargetDistanceKm: req.TargetDistanceKm,
		MustInclude:      req.MustInclude,
		SoftPreferences:  req.SoftPreferences,
		Circular:         circular,
	})
	if err != nil {
		writeRouteError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, rec)
}
