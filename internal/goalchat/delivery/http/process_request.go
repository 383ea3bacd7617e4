package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "pdca-planner/pkg/errors"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processChatReq: invalid body: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}

// processExtractReq binds and validates the extract request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processExtractReq: invalid body: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}
