package interactive

import (
	"github.com/ecodeclub/jobreview/internal/interactive/internal/domain"
	"github.com/ecodeclub/jobreview/internal/interactive/internal/events"
	"github.com/ecodeclub/jobreview/internal/interactive/internal/repository"
	"github.com/ecodeclub/jobreview/internal/interactive/internal/service"
	"github.com/ecodeclub/jobreview/internal/interactive/internal/web"
)

const (
	ReviewBiz  = repository.ReviewBiz
	TopicBiz   = repository.TopicBiz
	CommentBiz = repository.CommentBiz
)

type Handler = web.Handler
type Interactive = domain.Interactive

// Svc 给点评和论坛模块装配计数信息用
type Svc = service.InteractiveService

type Module struct {
	Hdl *Handler
	Svc Svc
	// 互动事件的消费者，启动之后常驻
	Consumer *events.Consumer
}
