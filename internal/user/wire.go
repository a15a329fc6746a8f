//go:build wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobreview/internal/user/internal/event"
	"github.com/ecodeclub/jobreview/internal/user/internal/repository"
	"github.com/ecodeclub/jobreview/internal/user/internal/repository/cache"
	"github.com/ecodeclub/jobreview/internal/user/internal/repository/dao"
	"github.com/ecodeclub/jobreview/internal/user/internal/service"
	"github.com/ecodeclub/jobreview/internal/user/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		initUserDAO,
		initRegistrationEventProducer,
		cache.NewUserECache,
		repository.NewCachedUserRepository,
		service.NewUserService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initUserDAO(db *egorm.Component) dao.UserDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMUserDAO(db)
}

func initRegistrationEventProducer(q mq.MQ) event.RegistrationEventProducer {
	producer, err := event.NewRegistrationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
