package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/nurzhas/procurement-api/internal/http/middleware"
)

// NewRouter builds the gin engine with logging, recovery, CORS and metrics
// wired in front of the API routes.
func NewRouter(handler *Handler, log zerolog.Logger, environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.Register(router)
	return router
}
