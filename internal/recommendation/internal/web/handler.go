package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobreview/internal/recommendation/internal/service"
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.RecommendationService
}

func NewHandler(svc service.RecommendationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/recommendation")
	g.POST("/list", ginx.BS[ListReq](h.List))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	reviews, err := h.svc.Recommend(ctx, sess.Claims().Uid, req.TopN)
	if errors.Is(err, service.ErrInvalidTopN) {
		return invalidTopNResult, err
	}
	if errors.Is(err, service.ErrMissingField) {
		return missingFieldResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 空结果正常返回，前端渲染成“还没有推荐”的空态
	return ginx.Result{
		Data: ListResp{
			Reviews: slice.Map(reviews, func(idx int, src review.Review) Review {
				return newReview(src)
			}),
		},
	}, nil
}

func newReview(r review.Review) Review {
	return Review{
		Id:             r.Id,
		SN:             r.SN,
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
	}
}
