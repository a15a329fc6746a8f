package search

import (
	"github.com/ecodeclub/jobreview/internal/search/internal/domain"
	"github.com/ecodeclub/jobreview/internal/search/internal/event"
	"github.com/ecodeclub/jobreview/internal/search/internal/service"
	"github.com/ecodeclub/jobreview/internal/search/internal/web"
)

type Handler = web.Handler
type Review = domain.Review

type Svc = service.SearchService

type Module struct {
	Hdl *Handler
	Svc Svc
	// Consumer 消费点评同步事件，往索引里灌文档
	Consumer *event.SyncConsumer
}
