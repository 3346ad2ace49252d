package router

import (
	"github.com/gin-gonic/gin"

	"superclaims/internal/config"
	"superclaims/internal/handler"
	"superclaims/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	claimH *handler.ClaimHandler,
	healthH *handler.HealthHandler,
	corsCfg config.CORSConfig,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsCfg.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	claims := v1.Group("/claims")
	claims.POST("/process", claimH.ProcessClaim)

	return r
}
