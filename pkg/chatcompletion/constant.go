package chatcompletion

import "time"

const (
	// ProviderOpenRouter is the default gateway.
	ProviderOpenRouter = "openrouter"
	ProviderDeepSeek   = "deepseek"
	ProviderQwen       = "qwen"

	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DeepSeekBaseURL   = "https://api.deepseek.com/v1"
	QwenBaseURL       = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	OpenRouterModel = "deepseek/deepseek-chat-v3-0324:free"
	DeepSeekModel   = "deepseek-chat"
	QwenModel       = "qwen-plus"

	// DefaultTimeout bounds a single HTTP call.
	DefaultTimeout = 30 * time.Second

	completionsPath = "/chat/completions"
)

// OpenRouter attribution headers.
const (
	HeaderReferer = "HTTP-Referer"
	HeaderTitle   = "X-Title"

	DefaultReferer = "Task_Manager_Telegram_Bot"
	DefaultTitle   = "Task Manager Bot"
)
