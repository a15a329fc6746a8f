package ai

import (
	"github.com/ecodeclub/jobreview/internal/ai/internal/service"
	"github.com/ecodeclub/jobreview/internal/ai/internal/web"
)

type Handler = web.Handler

type Svc = service.FeedbackService

type Module struct {
	Hdl *Handler
	Svc Svc
}
