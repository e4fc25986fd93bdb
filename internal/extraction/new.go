package extraction

import (
	"smart-task-bot/internal/assistant"
	"smart-task-bot/pkg/log"
)

type implParser struct {
	l       log.Logger
	gateway assistant.Gateway
}

// New creates an LLM-backed Parser.
func New(l log.Logger, gateway assistant.Gateway) Parser {
	return &implParser{l: l, gateway: gateway}
}
