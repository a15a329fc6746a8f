//go:build wireinject

package review

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobreview/internal/interactive"
	"github.com/ecodeclub/jobreview/internal/review/internal/event"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository/cache"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository/dao"
	"github.com/ecodeclub/jobreview/internal/review/internal/service"
	"github.com/ecodeclub/jobreview/internal/review/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, intrModule *interactive.Module) (*Module, error) {
	wire.Build(
		initReviewDAO,
		initIntrProducer,
		initSyncProducer,
		cache.NewReviewCache,
		repository.NewCachedReviewRepository,
		service.NewReviewService,
		web.NewHandler,
		wire.FieldsOf(new(*interactive.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initReviewDAO(db *egorm.Component) dao.ReviewDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMReviewDAO(db)
}

func initIntrProducer(q mq.MQ) event.InteractiveEventProducer {
	producer, err := event.NewInteractiveEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

func initSyncProducer(q mq.MQ) event.SyncEventProducer {
	producer, err := event.NewSyncEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
