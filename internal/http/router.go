// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawtrail/internal/http/handlers"
	"pawtrail/internal/http/middleware"
	"pawtrail/internal/infra"
	"pawtrail/internal/modules/walk"
	"pawtrail/internal/route"
)

func NewRouter(
	planner *route.Planner,
	walkService *walk.Service,
	verifier infra.TokenVerifier,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	routeHandler := handlers.NewRouteHandler(planner)
	r.POST("/api/routes/generate", routeHandler.Generate)

	walkHandler := handlers.NewWalkHandler(walkService)
	authed := r.Group("/api", middleware.Auth(verifier))
	authed.POST("/walks", walkHandler.Save)
	authed.GET("/walks", walkHandler.List)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
