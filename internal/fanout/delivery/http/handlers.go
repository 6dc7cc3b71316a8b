package http

import (
	"chat-notification-srv/pkg/log"
	"chat-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// MessageCreated fans one created message out to the channel's members.
func (h Handler) MessageCreated(c *gin.Context) {
	req, err := h.processMessageCreatedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	ctx := log.WithFields(c.Request.Context(), "source", "http")
	out, err := h.uc.ProcessMessage(ctx, req.toInput())
	if err != nil {
		mapped, known := h.mapError(err)
		if !known {
			h.l.Errorf(ctx, "internal.fanout.delivery.http.MessageCreated.ProcessMessage: %v", err)
		}
		response.Error(c, mapped, h.discord)
		return
	}

	response.OK(c, newMessageCreatedResp(out))
}
