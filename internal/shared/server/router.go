package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
)

// RouteRegistrar attaches a feature's routes to a router group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter builds the gin engine with the standard middleware chain and
// registers all feature routes behind auth. /health stays unauthenticated.
func NewRouter(corsOrigins []string, registrars ...RouteRegistrar) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(corsOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/", middleware.Auth())
	for _, reg := range registrars {
		reg.RegisterRoutes(api)
	}
	return r
}

// Addr formats a port as a listen address.
func Addr(port string) string {
	return ":" + port
}
