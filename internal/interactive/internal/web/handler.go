// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobreview/internal/interactive/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.InteractiveService
}

func NewHandler(svc service.InteractiveService) *Handler {
	return &Handler{svc: svc}
}

// PrivateRoutes 这边直接让前端来控制 biz 和 biz_id，简化实现
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/intr")
	g.POST("/like", ginx.BS[LikeReq](h.Like))
	g.POST("/collect", ginx.BS[CollectReq](h.Collect))
	// 统一用 POST 请求
	g.POST("/cnt", ginx.BS[GetCntReq](h.GetCnt))
	g.POST("/cnt/list", ginx.BS[BatchGetCntReq](h.BatchGetCnt))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Like(ctx *ginx.Context, req LikeReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Like(ctx, req.Biz, req.BizId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Collect(ctx *ginx.Context, req CollectReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Collect(ctx, req.Biz, req.BizId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) GetCnt(ctx *ginx.Context, req GetCntReq, sess session.Session) (ginx.Result, error) {
	intr, err := h.svc.Get(ctx, req.Biz, req.BizId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: GetCntResp{
			CollectCnt: intr.CollectCnt,
			LikeCnt:    intr.LikeCnt,
			ViewCnt:    intr.ViewCnt,
			Collected:  intr.Collected,
			Liked:      intr.Liked,
		},
	}, nil
}

func (h *Handler) BatchGetCnt(ctx *ginx.Context, req BatchGetCntReq, sess session.Session) (ginx.Result, error) {
	intrs, err := h.svc.GetByIds(ctx, req.Biz, sess.Claims().Uid, req.BizIds)
	if err != nil {
		return systemErrorResult, err
	}
	intrMap := make(map[int64]Interactive, len(intrs))
	for _, intr := range intrs {
		intrMap[intr.BizId] = Interactive{
			ID:         intr.BizId,
			CollectCnt: intr.CollectCnt,
			LikeCnt:    intr.LikeCnt,
			ViewCnt:    intr.ViewCnt,
			Liked:      intr.Liked,
			Collected:  intr.Collected,
		}
	}
	return ginx.Result{
		Data: BatchGetCntResp{
			InteractiveMap: intrMap,
		},
	}, nil
}
