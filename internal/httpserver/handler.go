package httpserver

import (
	fanoutHTTP "chat-notification-srv/internal/fanout/delivery/http"
	"chat-notification-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	InternalApi = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(
		middleware.Recovery(srv.logger, srv.discord),
		middleware.Trace(),
		middleware.Metrics(),
	)

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Internal API routes
	mw := middleware.New(srv.logger, srv.jwtMgr)
	internalApi := srv.gin.Group(InternalApi)
	fanoutHTTP.MapRoutes(internalApi, mw, fanoutHTTP.New(srv.logger, srv.fanoutUC, srv.discord))

	return nil
}
