//go:build wireinject

package ai

import (
	"github.com/ecodeclub/jobreview/internal/ai/internal/domain"
	"github.com/ecodeclub/jobreview/internal/ai/internal/service"
	"github.com/ecodeclub/jobreview/internal/ai/internal/service/llm"
	"github.com/ecodeclub/jobreview/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/jobreview/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/jobreview/internal/ai/internal/service/llm/handler/platform"
	"github.com/ecodeclub/jobreview/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/jobreview/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/jobreview/internal/ai/internal/web"
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(reviewModule *review.Module) (*Module, error) {
	wire.Build(
		initRootHandler,
		initBizConfig,
		llm.NewLLMService,
		service.NewFeedbackService,
		web.NewHandler,
		wire.FieldsOf(new(*review.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

// initRootHandler 平台出口外面套一层日志
func initRootHandler() handler.Handler {
	handlers := make(map[string]handler.Handler, 2)
	if apikey := econf.GetString("ai.zhipu.apikey"); apikey != "" {
		h, err := zhipu.NewHandler(apikey)
		if err != nil {
			panic(err)
		}
		handlers[h.Name()] = h
	}
	if apikey := econf.GetString("ai.openai.apikey"); apikey != "" {
		h := openai.NewHandler(econf.GetString("ai.openai.baseUrl"), apikey)
		handlers[h.Name()] = h
	}
	return log.NewHandler().Next(platform.NewFacadeHandler(handlers))
}

func initBizConfig() domain.BizConfig {
	return domain.BizConfig{
		Platform:    econf.GetString("ai.platform"),
		Model:       econf.GetString("ai.model"),
		Temperature: 0.8,
	}
}
