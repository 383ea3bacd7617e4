package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdca-planner/pkg/response"
)

// Chat godoc
// @Summary     Goal planning chat
// @Description Answers the last user message with the planning assistant. When a goal can be extracted from the exchange it is returned base64(JSON) encoded in the x-extracted-goal header.
// @Tags        GoalChat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Conversation so far, last message from the user"
// @Success     200  {object} chatResp
// @Header      200  {string} x-extracted-goal "base64 encoded StructuredGoal JSON"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/goal [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if output.Goal != nil {
		encoded, err := encodeGoalHeader(output.Goal)
		if err != nil {
			h.l.Warnf(ctx, "encodeGoalHeader: %v", err)
		} else {
			c.Header(ExtractedGoalHeader, encoded)
		}
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// Extract godoc
// @Summary     Extract a goal
// @Description Runs goal extraction on a user message and assistant reply without calling the model.
// @Tags        GoalChat
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Exchange to extract from"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}
