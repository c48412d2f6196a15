package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koungkub/notification-relay/internal/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *HTTPServer) setupRoutes() {
	h.router.Use(h.httpMetrics.Middleware())

	h.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "server is running",
		})
	})
	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := h.router.Group("/api")
	route(api, http.MethodPost, "/fcm", h.handler.SendPushHandler)
	route(api, http.MethodPost, "/mail", h.handler.SendMailHandler)
	route(api, http.MethodGet, "/mail/query", h.handler.SendMailQueryHandler)
}

// route registers fn on every method so preflight and wrong-method requests
// are answered by the middleware chain instead of the router's 404.
func route(group *gin.RouterGroup, method string, path string, fn gin.HandlerFunc) {
	group.Any(path, handler.CORS(method), handler.AllowMethod(method), fn)
}
