package platform

import (
	"context"

	"github.com/ecodeclub/jobreview/internal/ai/internal/domain"
	"github.com/ecodeclub/jobreview/internal/ai/internal/service/llm/handler"
	"github.com/pkg/errors"
)

var ErrUnknownPlatform = errors.New("未知的大模型平台")

// FacadeHandler 按配置把请求分发给具体平台
type FacadeHandler struct {
	handlers map[string]handler.Handler
}

func NewFacadeHandler(handlers map[string]handler.Handler) *FacadeHandler {
	return &FacadeHandler{handlers: handlers}
}

func (f *FacadeHandler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	h, ok := f.handlers[req.Config.Platform]
	if !ok {
		return domain.LLMResponse{}, errors.Wrap(ErrUnknownPlatform, req.Config.Platform)
	}
	return h.Handle(ctx, req)
}
