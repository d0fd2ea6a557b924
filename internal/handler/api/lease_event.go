package api

import (
	"net/http"

	reqdto "flavor-reservation/internal/handler/dto/request"
	"flavor-reservation/internal/handler/httperr"
	"flavor-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// LeaseEventHandler is the webhook counterpart of the stream consumer.
type LeaseEventHandler struct {
	cmds commands.LeaseCommands
}

func NewLeaseEventHandler(cmds commands.LeaseCommands) *LeaseEventHandler {
	return &LeaseEventHandler{cmds: cmds}
}

// @Summary Lease event webhook
// @Tags lease-events
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.LeaseEventRequest true "Lease event"
// @Success 202 "Accepted"
// @Failure 400 {object} httperr.Response
// @Router /v1/lease-events [post]
func (h *LeaseEventHandler) Handle(c *gin.Context) {
	var req reqdto.LeaseEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.HandleLeaseEvent(c.Request.Context(), req.EventType, req.LeaseID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
