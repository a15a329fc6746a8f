//go:build wireinject

package search

import (
	"context"
	"sync"

	"github.com/ecodeclub/jobreview/internal/search/internal/event"
	"github.com/ecodeclub/jobreview/internal/search/internal/repository"
	"github.com/ecodeclub/jobreview/internal/search/internal/repository/dao"
	"github.com/ecodeclub/jobreview/internal/search/internal/service"
	"github.com/ecodeclub/jobreview/internal/search/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"
)

func InitModule(es *elastic.Client, q mq.MQ) (*Module, error) {
	wire.Build(
		InitIndexOnce,
		dao.NewAnyESDAO,
		repository.NewReviewRepo,
		repository.NewAnyRepo,
		service.NewSearchService,
		service.NewSyncService,
		initConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitIndexOnce(es *elastic.Client) dao.ReviewDAO {
	once.Do(func() {
		_ = dao.InitES(es)
	})
	return dao.NewReviewElasticDAO(es)
}

func initConsumer(svc service.SyncService, q mq.MQ) *event.SyncConsumer {
	consumer, err := event.NewSyncConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	consumer.Start(context.Background())
	return consumer
}
