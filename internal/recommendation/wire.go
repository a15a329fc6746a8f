//go:build wireinject

package recommendation

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobreview/internal/recommendation/internal/cache"
	"github.com/ecodeclub/jobreview/internal/recommendation/internal/service"
	"github.com/ecodeclub/jobreview/internal/recommendation/internal/web"
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(ec ecache.Cache, reviewModule *review.Module) (*Module, error) {
	wire.Build(
		cache.NewRecommendationCache,
		initService,
		web.NewHandler,
		wire.FieldsOf(new(*review.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initService(reviewSvc review.Svc, c cache.RecommendationCache) service.RecommendationService {
	return service.NewRecommendationService(reviewSvc, c,
		econf.GetInt("recommendation.maxCorpusSize"))
}
