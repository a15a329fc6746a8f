package service

import (
	"context"
	"strings"
	"testing"

	"github.com/ecodeclub/jobreview/internal/ai/internal/domain"
	"github.com/ecodeclub/jobreview/internal/review"
	reviewmocks "github.com/ecodeclub/jobreview/internal/review/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeLLM struct {
	req    domain.LLMRequest
	answer string
}

func (f *fakeLLM) Invoke(_ context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	f.req = req
	return domain.LLMResponse{Answer: f.answer, Tokens: 100}, nil
}

func TestFeedbackService_Feedback(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reviewSvc := reviewmocks.NewMockReviewService(ctrl)
	rating := int64(4)
	reviewSvc.EXPECT().All(gomock.Any(), gomock.Any()).Return([]review.Review{
		{Id: 7, Title: "后端开发", Company: "Acme", Locations: []string{"上海"}, Rating: &rating, Content: "加班不少"},
	}, nil)
	llmSvc := &fakeLLM{answer: "加班比较多。\n\n引用点评 id=7。"}
	svc := NewFeedbackService(reviewSvc, llmSvc, domain.BizConfig{
		Platform: "zhipu",
		Model:    "glm-4",
	})

	answer, err := svc.Feedback(context.Background(), 123, "Acme 加班多吗")
	require.NoError(t, err)
	assert.Equal(t, "加班比较多。\n\n引用点评 id=7。", answer)

	// 语料和问题都要进 prompt，点评 id 要能被引用
	assert.Contains(t, llmSvc.req.Prompt, "[id=7]")
	assert.Contains(t, llmSvc.req.Prompt, "Acme 加班多吗")
	assert.Contains(t, llmSvc.req.Prompt, "评分：4/5")
	// 系统提示词默认带上回答契约
	assert.Equal(t, SystemPrompt, llmSvc.req.Config.SystemPrompt)
	assert.Equal(t, domain.BizFeedback, llmSvc.req.Biz)
	assert.Equal(t, int64(123), llmSvc.req.Uid)
	assert.NotEmpty(t, llmSvc.req.Tid)
}

func TestFeedbackService_Feedback_tooLong(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reviewSvc := reviewmocks.NewMockReviewService(ctrl)
	svc := NewFeedbackService(reviewSvc, &fakeLLM{}, domain.BizConfig{MaxInput: 10})

	_, err := svc.Feedback(context.Background(), 123, strings.Repeat("问", 11))
	assert.ErrorIs(t, err, ErrInputTooLong)
}
