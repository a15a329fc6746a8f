package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobreview/internal/forum/internal/domain"
	"github.com/ecodeclub/jobreview/internal/forum/internal/service"
	"github.com/ecodeclub/jobreview/internal/interactive"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc     service.ForumService
	intrSvc interactive.Svc
	logger  *elog.Component
}

func NewHandler(svc service.ForumService, intrSvc interactive.Svc) *Handler {
	return &Handler{
		svc:     svc,
		intrSvc: intrSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/forum")
	g.POST("/topic/list", ginx.B[Page](h.ListTopics))
	g.POST("/comment/list", ginx.B[ListCommentsReq](h.ListComments))
	g.POST("/comment/replies", ginx.B[RepliesReq](h.Replies))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/forum")
	g.POST("/topic/save", ginx.BS[SaveTopicReq](h.SaveTopic))
	g.POST("/topic/detail", ginx.BS[TopicDetailReq](h.TopicDetail))
	g.POST("/comment/save", ginx.BS[SaveCommentReq](h.SaveComment))
	g.POST("/comment/delete", ginx.BS[DeleteCommentReq](h.DeleteComment))
}

func (h *Handler) SaveTopic(ctx *ginx.Context, req SaveTopicReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.CreateTopic(ctx, domain.Topic{
		Author:  domain.User{ID: sess.Claims().Uid},
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) ListTopics(ctx *ginx.Context, req Page) (ginx.Result, error) {
	topics, total, err := h.svc.ListTopics(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	intrs := h.intrs(ctx, 0, topics)
	return ginx.Result{
		Data: TopicList{
			Total: total,
			Topics: slice.Map(topics, func(idx int, src domain.Topic) Topic {
				return newTopic(src, intrs[src.Id])
			}),
		},
	}, nil
}

func (h *Handler) TopicDetail(ctx *ginx.Context, req TopicDetailReq, sess session.Session) (ginx.Result, error) {
	t, err := h.svc.TopicDetail(ctx, req.Tid)
	if err != nil {
		return systemErrorResult, err
	}
	intr, err := h.intrSvc.Get(ctx, interactive.TopicBiz, req.Tid, sess.Claims().Uid)
	if err != nil {
		h.logger.Error("查询帖子互动数据失败",
			elog.FieldErr(err),
			elog.Int64("tid", req.Tid))
	}
	// 详情页的浏览也计数
	if e := h.intrSvc.IncrViewCnt(ctx, interactive.TopicBiz, req.Tid); e != nil {
		h.logger.Error("帖子浏览计数失败", elog.FieldErr(e), elog.Int64("tid", req.Tid))
	}
	return ginx.Result{
		Data: newTopic(t, intr),
	}, nil
}

func (h *Handler) SaveComment(ctx *ginx.Context, req SaveCommentReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.CreateComment(ctx, domain.Comment{
		User:     domain.User{ID: sess.Claims().Uid},
		BizID:    req.Tid,
		ParentID: req.Pid,
		Content:  req.Content,
	})
	if errors.Is(err, service.ErrInvalidParentID) {
		return invalidParentResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) ListComments(ctx *ginx.Context, req ListCommentsReq) (ginx.Result, error) {
	comments, total, err := h.svc.ListComments(ctx, req.Tid, req.MinID, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CommentList{
			Total:    total,
			Comments: newComments(comments),
		},
	}, nil
}

func (h *Handler) Replies(ctx *ginx.Context, req RepliesReq) (ginx.Result, error) {
	replies, total, err := h.svc.Replies(ctx, req.Cid, req.MaxID, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CommentList{
			Total:    total,
			Comments: newComments(replies),
		},
	}, nil
}

func (h *Handler) DeleteComment(ctx *ginx.Context, req DeleteCommentReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.DeleteComment(ctx, req.Cid, sess.Claims().Uid)
	if errors.Is(err, service.ErrDeleteNotAllowed) {
		return notOwnerResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) intrs(ctx *ginx.Context, uid int64, topics []domain.Topic) map[int64]interactive.Interactive {
	res := map[int64]interactive.Interactive{}
	if len(topics) == 0 {
		return res
	}
	ids := slice.Map(topics, func(idx int, src domain.Topic) int64 {
		return src.Id
	})
	intrs, err := h.intrSvc.GetByIds(ctx, interactive.TopicBiz, uid, ids)
	if err != nil {
		h.logger.Error("查询帖子互动数据失败",
			elog.Any("ids", ids),
			elog.FieldErr(err))
		return res
	}
	for _, intr := range intrs {
		res[intr.BizId] = intr
	}
	return res
}

func newTopic(t domain.Topic, intr interactive.Interactive) Topic {
	return Topic{
		Id: t.Id,
		Author: User{
			Nickname: t.Author.Nickname,
			Avatar:   t.Author.Avatar,
		},
		Title:   t.Title,
		Content: t.Content,
		Utime:   t.Utime,
		Interactive: Interactive{
			ViewCnt:    intr.ViewCnt,
			LikeCnt:    intr.LikeCnt,
			CollectCnt: intr.CollectCnt,
			Liked:      intr.Liked,
			Collected:  intr.Collected,
		},
	}
}

func newComments(comments []domain.Comment) []Comment {
	return slice.Map(comments, func(idx int, src domain.Comment) Comment {
		return newComment(src)
	})
}

func newComment(c domain.Comment) Comment {
	return Comment{
		Id: c.ID,
		User: User{
			Nickname: c.User.Nickname,
			Avatar:   c.User.Avatar,
		},
		ParentID: c.ParentID,
		Content:  c.Content,
		Utime:    c.Utime,
		Replies:  newComments(c.Replies),
	}
}
