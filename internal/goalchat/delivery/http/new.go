package http

import (
	"github.com/gin-gonic/gin"

	"pdca-planner/internal/goalchat"
	"pdca-planner/pkg/log"
)

// Handler is the public interface for the goalchat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Extract(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc goalchat.UseCase
}

// New creates a new HTTP handler for the goalchat domain.
func New(l log.Logger, uc goalchat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
