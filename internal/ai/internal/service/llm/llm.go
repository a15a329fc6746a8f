package llm

import (
	"context"

	"github.com/ecodeclub/jobreview/internal/ai/internal/domain"
	"github.com/ecodeclub/jobreview/internal/ai/internal/service/llm/handler"
)

type Service interface {
	Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)
}

type llmService struct {
	handler handler.Handler
}

func NewLLMService(root handler.Handler) Service {
	return &llmService{
		handler: root,
	}
}

func (s *llmService) Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return s.handler.Handle(ctx, req)
}
