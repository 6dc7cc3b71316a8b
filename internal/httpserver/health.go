package httpserver

import (
	"context"
	"net/http"
	"time"

	"chat-notification-srv/pkg/errors"
	"chat-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName  = "chat-notification-srv"
	version      = "1.0.0"
	pingTimeout  = 2 * time.Second
	statusOK     = "connected"
	statusNotSet = "disabled"
)

var errNotReady = errors.NewHTTPError(150301, "Service is not ready", http.StatusServiceUnavailable)

// healthCheck reports that the process is up along with its dependency status.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	deps, _ := srv.checkDependencies(c.Request.Context())

	response.OK(c, gin.H{
		"status":       "healthy",
		"version":      version,
		"service":      serviceName,
		"environment":  srv.environment,
		"dependencies": deps,
	})
}

// readyCheck returns 503 until Redis (when enabled) and the directory store answer.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	deps, ok := srv.checkDependencies(c.Request.Context())
	if !ok {
		srv.logger.Warnf(c.Request.Context(), "internal.httpserver.readyCheck: dependencies not ready: %v", deps)
		response.HttpError(c, errNotReady)
		return
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"version":      version,
		"service":      serviceName,
		"dependencies": deps,
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": version,
		"service": serviceName,
	})
}

func (srv *HTTPServer) checkDependencies(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	ok := true
	deps := map[string]string{"redis": statusNotSet}

	if srv.redis != nil {
		deps["redis"] = statusOK
		if err := srv.redis.Ping(ctx); err != nil {
			deps["redis"] = err.Error()
			ok = false
		}
	}

	deps["directory"] = statusOK
	if err := srv.directory.Ping(ctx); err != nil {
		deps["directory"] = err.Error()
		ok = false
	}

	return deps, ok
}
