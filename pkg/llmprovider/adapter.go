package llmprovider

import (
	"context"

	"smart-task-bot/pkg/chatcompletion"
)

// ChatCompletionAdapter adapts pkg/chatcompletion to the Provider interface.
type ChatCompletionAdapter struct {
	client chatcompletion.IClient
}

func NewChatCompletionAdapter(client chatcompletion.IClient) *ChatCompletionAdapter {
	return &ChatCompletionAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *ChatCompletionAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, &ProviderError{Provider: a.client.Provider(), Err: ErrInvalidRequest}
	}

	msgs := make([]chatcompletion.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = chatcompletion.Message{Role: m.Role, Content: m.Text}
	}

	resp, err := a.client.Complete(ctx, &chatcompletion.Request{
		System:      req.SystemInstruction,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.client.Provider(), Err: classify(err)}
	}

	return &Response{
		Content:      Message{Role: "assistant", Text: resp.Content},
		ProviderName: a.client.Provider(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *ChatCompletionAdapter) Name() string {
	return a.client.Provider()
}

func (a *ChatCompletionAdapter) Model() string {
	return a.client.Model()
}
