// Package server assembles the HTTP router.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blkout/hub/internal/hotseats"
	"github.com/blkout/hub/internal/matching"
	"github.com/blkout/hub/internal/members"
	"github.com/blkout/hub/internal/middleware"
	"github.com/blkout/hub/pkg/response"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "blkouthub-community"

// Handlers groups the feature handlers mounted on the router.
type Handlers struct {
	Members  *members.Handler
	Matching *matching.Handler
	Hotseats *hotseats.Handler
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(h Handlers, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":    "healthy",
			"service":   ServiceName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	{
		api.GET("/members", h.Members.List)
		api.POST("/members/:id/activity", h.Members.RecordActivity)
		api.GET("/members/:id/matches", h.Matching.MemberMatches)

		api.GET("/hotseats", h.Hotseats.List)
		api.POST("/hotseats", h.Hotseats.Create)
		api.POST("/hotseats/:id/join", h.Hotseats.Join)
		api.PATCH("/hotseats/:id/status", h.Hotseats.Advance)
	}
	return router
}
