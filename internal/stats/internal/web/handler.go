package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobreview/internal/stats/internal/domain"
	"github.com/ecodeclub/jobreview/internal/stats/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.StatsService
}

func NewHandler(svc service.StatsService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/stats")
	g.GET("/dashboard", ginx.W(h.Dashboard))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Dashboard(ctx *ginx.Context) (ginx.Result, error) {
	d, err := h.svc.Dashboard(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDashboard(d),
	}, nil
}

func newDashboard(d domain.Dashboard) Dashboard {
	return Dashboard{
		TotalUsers:   d.TotalUsers,
		TotalReviews: d.TotalReviews,
		Locations: slice.Map(d.Locations, func(idx int, src domain.Bucket) Bucket {
			return Bucket{Name: src.Name, Cnt: src.Cnt}
		}),
		Companies: slice.Map(d.Companies, func(idx int, src domain.Bucket) Bucket {
			return Bucket{Name: src.Name, Cnt: src.Cnt}
		}),
		AvgPayByLocation: slice.Map(d.AvgPayByLocation, func(idx int, src domain.PayBucket) PayBucket {
			return PayBucket{Location: src.Location, AvgPay: src.AvgPay}
		}),
		Ratings: slice.Map(d.Ratings, func(idx int, src domain.RatingBucket) RatingBucket {
			return RatingBucket{Rating: src.Rating, Cnt: src.Cnt}
		}),
	}
}
