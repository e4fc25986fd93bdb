package chatcompletion

import (
	"fmt"
	"net/http"
)

// Config holds client configuration for one OpenAI-compatible endpoint.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	Headers    map[string]string
	HTTPClient *http.Client
}

// Validate fills per-provider defaults and checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("chatcompletion %s: APIKey is required", c.Provider)
	}
	if c.Provider == "" {
		c.Provider = ProviderOpenRouter
	}

	switch c.Provider {
	case ProviderOpenRouter:
		c.BaseURL = orDefault(c.BaseURL, OpenRouterBaseURL)
		c.Model = orDefault(c.Model, OpenRouterModel)
		if c.Headers == nil {
			c.Headers = map[string]string{
				HeaderReferer: DefaultReferer,
				HeaderTitle:   DefaultTitle,
			}
		}
	case ProviderDeepSeek:
		c.BaseURL = orDefault(c.BaseURL, DeepSeekBaseURL)
		c.Model = orDefault(c.Model, DeepSeekModel)
	case ProviderQwen, "alibaba":
		c.BaseURL = orDefault(c.BaseURL, QwenBaseURL)
		c.Model = orDefault(c.Model, QwenModel)
	default:
		if c.BaseURL == "" || c.Model == "" {
			return fmt.Errorf("chatcompletion %s: BaseURL and Model are required for custom providers", c.Provider)
		}
	}

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Request is a single chat-completion call.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

// Message is one conversation turn.
type Message struct {
	Role    string
	Content string
}

// Response carries the first choice text. Content is empty when the endpoint
// answered with no choices.
type Response struct {
	Content string
	Usage   Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Wire types.
type apiRequest struct {
	Model          string          `json:"model"`
	Messages       []apiMessage    `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	ID      string      `json:"id"`
	Model   string      `json:"model"`
	Choices []apiChoice `json:"choices"`
	Usage   apiUsage    `json:"usage"`
}

type apiChoice struct {
	Index        int        `json:"index"`
	Message      apiMessage `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

type apiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
