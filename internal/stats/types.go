package stats

import (
	"github.com/ecodeclub/jobreview/internal/stats/internal/domain"
	"github.com/ecodeclub/jobreview/internal/stats/internal/job"
	"github.com/ecodeclub/jobreview/internal/stats/internal/service"
	"github.com/ecodeclub/jobreview/internal/stats/internal/web"
)

type Handler = web.Handler
type Dashboard = domain.Dashboard
type TopListWarmJob = job.TopListWarmJob

type Svc = service.StatsService

type Module struct {
	Hdl *Handler
	Svc Svc
	// TopListJob 交给 ioc 挂到定时任务上
	TopListJob *TopListWarmJob
}
