package review

import (
	"github.com/ecodeclub/jobreview/internal/review/internal/domain"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository"
	"github.com/ecodeclub/jobreview/internal/review/internal/service"
	"github.com/ecodeclub/jobreview/internal/review/internal/web"
)

type Handler = web.Handler
type Review = domain.Review
type Filter = repository.Filter

// Svc 推荐、统计和 AI 反馈模块都要用
type Svc = service.ReviewService

type Module struct {
	Hdl *Handler
	Svc Svc
}
