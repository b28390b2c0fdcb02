// README: Walk handlers for saving and listing generated walks.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawtrail/internal/http/middleware"
	"pawtrail/internal/modules/walk"
	"pawtrail/internal/route"
	"pawtrail/internal/types"
)

type WalkHandler struct {
	walks *walk.Service
}

func NewWalkHandler(svc *walk.Service) *WalkHandler {
	return &WalkHandler{walks: svc}
}

// Save handles POST /api/walks. The body is a previously generated
// recommendation, handed back unchanged.
func (h *WalkHandler) Save(c *gin.Context) {
	uid := middleware.CallerUID(c)
	if uid == "" {
		writeError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var rec route.Recommendation
	if err := c.ShouldBindJSON(&rec); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	saved, err := h.walks.SaveGenerated(c.Request.Context(), types.ID(uid), rec)
	if err != nil {
		writeWalkError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, saved)
}

// List handles GET /api/walks.
func (h *WalkHandler) List(c *gin.Context) {
	uid := middleware.CallerUID(c)
	if uid == "" {
		writeError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	walks, err := h.walks.List(c.Request.Context(), types.ID(uid))
	if err != nil {
		writeWalkError(c, err)
		return
	}
	if walks == nil {
		walks = []walk.Walk{}
	}
	writeJSON(c, http.StatusOK, map[string]any{"walks": walks})
}
