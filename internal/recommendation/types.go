package recommendation

import (
	"github.com/ecodeclub/jobreview/internal/recommendation/internal/domain"
	"github.com/ecodeclub/jobreview/internal/recommendation/internal/service"
	"github.com/ecodeclub/jobreview/internal/recommendation/internal/web"
)

type Handler = web.Handler
type RatedReview = domain.RatedReview

type Svc = service.RecommendationService

type Module struct {
	Hdl *Handler
	Svc Svc
}
