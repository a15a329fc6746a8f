package forum

import (
	"github.com/ecodeclub/jobreview/internal/forum/internal/domain"
	"github.com/ecodeclub/jobreview/internal/forum/internal/service"
	"github.com/ecodeclub/jobreview/internal/forum/internal/web"
)

type Handler = web.Handler
type Topic = domain.Topic
type Comment = domain.Comment

type Svc = service.ForumService

type Module struct {
	Hdl *Handler
	Svc Svc
}
