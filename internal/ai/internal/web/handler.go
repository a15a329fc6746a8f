package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobreview/internal/ai/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.FeedbackService
}

func NewHandler(svc service.FeedbackService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/ai")
	g.POST("/feedback", ginx.BS[FeedbackReq](h.Feedback))
}

func (h *Handler) Feedback(ctx *ginx.Context, req FeedbackReq, sess session.Session) (ginx.Result, error) {
	answer, err := h.svc.Feedback(ctx, sess.Claims().Uid, req.Question)
	if errors.Is(err, service.ErrInputTooLong) {
		return inputTooLongResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: FeedbackResp{Answer: answer},
	}, nil
}
