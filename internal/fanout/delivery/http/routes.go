package http

import (
	"chat-notification-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the trigger routes under r. All routes require an internal caller token.
func MapRoutes(r *gin.RouterGroup, mw middleware.Middleware, h Handler) {
	g := r.Group("/messages", mw.Auth())
	g.POST("/created", h.MessageCreated)
}
