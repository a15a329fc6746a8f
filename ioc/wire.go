//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/jobreview/internal/ai"
	"github.com/ecodeclub/jobreview/internal/forum"
	"github.com/ecodeclub/jobreview/internal/interactive"
	"github.com/ecodeclub/jobreview/internal/recommendation"
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/ecodeclub/jobreview/internal/search"
	"github.com/ecodeclub/jobreview/internal/stats"
	"github.com/ecodeclub/jobreview/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitES, InitIDGenerator)

func InitApp() (*App, error) {
	wire.Build(
		BaseSet,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		interactive.InitModule,
		wire.FieldsOf(new(*interactive.Module), "Hdl"),
		review.InitModule,
		wire.FieldsOf(new(*review.Module), "Hdl"),
		forum.InitModule,
		wire.FieldsOf(new(*forum.Module), "Hdl"),
		recommendation.InitModule,
		wire.FieldsOf(new(*recommendation.Module), "Hdl"),
		stats.InitModule,
		wire.FieldsOf(new(*stats.Module), "Hdl", "TopListJob"),
		search.InitModule,
		wire.FieldsOf(new(*search.Module), "Hdl"),
		ai.InitModule,
		wire.FieldsOf(new(*ai.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initCronJobs,
		initConsumers,
		wire.Struct(new(App), "Web", "Crons", "Consumers"),
	)
	return new(App), nil
}
