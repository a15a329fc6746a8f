//go:build wireinject

package stats

import (
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/ecodeclub/jobreview/internal/stats/internal/job"
	"github.com/ecodeclub/jobreview/internal/stats/internal/repository"
	"github.com/ecodeclub/jobreview/internal/stats/internal/repository/dao"
	"github.com/ecodeclub/jobreview/internal/stats/internal/service"
	"github.com/ecodeclub/jobreview/internal/stats/internal/web"
	"github.com/ecodeclub/jobreview/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, userModule *user.Module, reviewModule *review.Module) (*Module, error) {
	wire.Build(
		dao.NewGORMStatsDAO,
		repository.NewStatsRepository,
		service.NewStatsService,
		job.NewTopListWarmJob,
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*review.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
