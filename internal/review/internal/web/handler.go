package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobreview/internal/interactive"
	"github.com/ecodeclub/jobreview/internal/review/internal/domain"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository"
	"github.com/ecodeclub/jobreview/internal/review/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc     service.ReviewService
	intrSvc interactive.Svc
	logger  *elog.Component
}

func NewHandler(svc service.ReviewService, intrSvc interactive.Svc) *Handler {
	return &Handler{
		svc:     svc,
		intrSvc: intrSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/review")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.GET("/top", ginx.W(h.TopList))
	g.GET("/filters", ginx.W(h.Filters))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/review")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/detail", ginx.BS[DetailReq](h.Detail))
	g.POST("/mine", ginx.BS[Page](h.ListMine))
	g.POST("/delete", ginx.BS[DeleteReq](h.Delete))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	r := req.Review.toDomain()
	r.Uid = sess.Claims().Uid
	id, err := h.svc.Save(ctx, r)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	data, total, err := h.svc.List(ctx, repository.Filter{
		Department: req.Department,
		Company:    req.Company,
		Location:   req.Location,
	}, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	// 公开列表不知道访问者是谁，只装配计数
	intrs := h.intrs(ctx, 0, data)
	return ginx.Result{
		Data: ReviewList{
			Total: total,
			Reviews: slice.Map(data, func(idx int, src domain.Review) Review {
				return newReview(src, intrs[src.Id])
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq, sess session.Session) (ginx.Result, error) {
	detail, err := h.svc.Detail(ctx, req.Rid)
	if err != nil {
		return systemErrorResult, err
	}
	intr, err := h.intrSvc.Get(ctx, interactive.ReviewBiz, req.Rid, sess.Claims().Uid)
	if err != nil {
		// 互动数据不关键，失败就不展示
		h.logger.Error("查询点评互动数据失败",
			elog.FieldErr(err),
			elog.Int64("rid", req.Rid))
	}
	return ginx.Result{
		Data: newReview(detail, intr),
	}, nil
}

func (h *Handler) ListMine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	data, err := h.svc.ListMine(ctx, uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	intrs := h.intrs(ctx, uid, data)
	return ginx.Result{
		Data: slice.Map(data, func(idx int, src domain.Review) Review {
			return newReview(src, intrs[src.Id])
		}),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Rid, sess.Claims().Uid)
	if errors.Is(err, service.ErrDeleteNotAllowed) {
		return notOwnerResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) TopList(ctx *ginx.Context) (ginx.Result, error) {
	data, err := h.svc.TopList(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	intrs := h.intrs(ctx, 0, data)
	return ginx.Result{
		Data: slice.Map(data, func(idx int, src domain.Review) Review {
			return newReview(src, intrs[src.Id])
		}),
	}, nil
}

func (h *Handler) Filters(ctx *ginx.Context) (ginx.Result, error) {
	filters, err := h.svc.Filters(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: FiltersResp{
			Departments: filters.Departments,
			Companies:   filters.Companies,
			Locations:   filters.Locations,
		},
	}, nil
}

// intrs 批量查询互动数据，失败不影响主流程
func (h *Handler) intrs(ctx *ginx.Context, uid int64, data []domain.Review) map[int64]interactive.Interactive {
	res := map[int64]interactive.Interactive{}
	if len(data) == 0 {
		return res
	}
	ids := slice.Map(data, func(idx int, src domain.Review) int64 {
		return src.Id
	})
	intrs, err := h.intrSvc.GetByIds(ctx, interactive.ReviewBiz, uid, ids)
	if err != nil {
		h.logger.Error("查询点评互动数据失败",
			elog.Any("ids", ids),
			elog.FieldErr(err))
		return res
	}
	for _, intr := range intrs {
		res[intr.BizId] = intr
	}
	return res
}

func (r Review) toDomain() domain.Review {
	return domain.Review{
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
	}
}

func newReview(r domain.Review, intr interactive.Interactive) Review {
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
		Interactive: Interactive{
			ViewCnt:    intr.ViewCnt,
			LikeCnt:    intr.LikeCnt,
			CollectCnt: intr.CollectCnt,
			Liked:      intr.Liked,
			Collected:  intr.Collected,
		},
	}
}
