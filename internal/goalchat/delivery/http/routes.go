package http

import (
	"github.com/gin-gonic/gin"

	"pdca-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat/goal", mw.RateLimit(), h.Chat)
	rg.POST("/goals/extract", mw.RateLimit(), h.Extract)
}
