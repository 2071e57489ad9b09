package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the HTTP boundary: the chat endpoint, the web form and
// the health check.
func NewRouter(handler *Handler, logger *zap.Logger, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	router.GET("/", handler.Index)
	router.GET("/health", handler.Health)
	router.POST("/chat", handler.Chat)

	return router
}
