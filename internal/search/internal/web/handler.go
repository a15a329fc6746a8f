package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobreview/internal/search/internal/domain"
	"github.com/ecodeclub/jobreview/internal/search/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.SearchService
}

func NewHandler(svc service.SearchService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/search")
	g.POST("/review", ginx.B[SearchReq](h.SearchReview))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) SearchReview(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	reviews, err := h.svc.SearchReview(ctx, req.Offset, req.Limit, req.Keywords)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SearchResp{
			Reviews: slice.Map(reviews, func(idx int, src domain.Review) Review {
				return newReview(src)
			}),
		},
	}, nil
}

func newReview(r domain.Review) Review {
	return Review{
		Id:             r.Id,
		Title:          r.Title,
		Company:        r.Company,
		Locations:      r.Locations,
		Department:     r.Department,
		Description:    r.Description,
		HourlyPay:      r.HourlyPay,
		Benefits:       r.Benefits,
		Content:        r.Content,
		Rating:         r.Rating,
		Recommendation: r.Recommendation,
		Utime:          r.Utime.UnixMilli(),
		Highlights:     r.Highlights,
	}
}
