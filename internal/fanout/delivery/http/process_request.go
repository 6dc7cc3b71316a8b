package http

import (
	"github.com/gin-gonic/gin"
)

func (h Handler) processMessageCreatedReq(c *gin.Context) (messageCreatedReq, error) {
	ctx := c.Request.Context()

	var req messageCreatedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.fanout.delivery.http.processMessageCreatedReq.ShouldBindJSON: %v", err)
		return messageCreatedReq{}, errInvalidBody
	}

	return req, nil
}
