package chatcompletion

import "context"

// IClient talks to an OpenAI-compatible /chat/completions endpoint.
// Implementations are safe for concurrent use.
type IClient interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Provider() string
	Model() string
}

// New creates a client for cfg.Provider.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
