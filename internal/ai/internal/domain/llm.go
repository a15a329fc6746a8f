package domain

// BizFeedback 点评问答
const BizFeedback = "review_feedback"

type LLMRequest struct {
	Biz string
	Uid int64
	// 请求 id，排查问题用
	Tid string
	// 组装好的完整 Prompt
	Prompt string
	// 业务相关的配置
	Config BizConfig
}

type LLMResponse struct {
	// 花费的 token
	Tokens int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	// 走哪个平台，zhipu 或者 openai
	Platform string
	// 使用的模型
	Model string

	Temperature float64
	TopP        float64

	// 系统 Prompt
	SystemPrompt string
	// 允许的最长输入。不用精确计算 token，
	// 简单约束一下字符串长度就可以
	MaxInput int
}
