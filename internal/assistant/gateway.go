package assistant

import (
	"context"
	"strings"

	"smart-task-bot/pkg/llmprovider"
)

func (g *implGateway) Complete(ctx context.Context, prompt string) string {
	return g.complete(ctx, prompt, false)
}

func (g *implGateway) CompleteJSON(ctx context.Context, prompt string) string {
	return g.complete(ctx, prompt, g.cfg.JSONMode)
}

func (g *implGateway) complete(ctx context.Context, prompt string, jsonMode bool) string {
	resp, err := g.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: g.cfg.Persona,
		Messages:          []llmprovider.Message{{Role: "user", Text: prompt}},
		Temperature:       g.cfg.Temperature,
		MaxTokens:         g.cfg.MaxTokens,
		JSONMode:          jsonMode,
	})
	if err != nil {
		g.l.Errorf(ctx, "assistant.Complete GenerateContent: %v", err)
		return ApologyUnavailable
	}

	if resp == nil {
		g.l.Warnf(ctx, "assistant.Complete: nil response")
		return ApologyMalformed
	}
	text := strings.TrimSpace(resp.Content.Text)
	if text == "" {
		g.l.Warnf(ctx, "assistant.Complete: empty reply from %s", resp.ProviderName)
		return ApologyMalformed
	}
	return text
}
