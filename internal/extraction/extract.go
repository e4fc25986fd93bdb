package extraction

import (
	"context"
	"strings"
	"time"

	"smart-task-bot/internal/model"
)

func (p *implParser) Extract(ctx context.Context, rawText string, ownerID int64, referenceDate time.Time) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			p.l.Errorf(ctx, "extraction.Extract: recovered: %v", r)
			res = Fallback(rawText)
		}
	}()

	reply := p.gateway.CompleteJSON(ctx, buildPrompt(rawText, ownerID, referenceDate))

	obj, ok := firstObject(reply)
	if !ok {
		p.l.Warnf(ctx, "extraction.Extract: no JSON object in reply %q", reply)
		return Fallback(rawText)
	}

	res = normalize(obj, rawText)
	p.l.Debugf(ctx, "extraction.Extract: %+v", res)
	return res
}

// normalize validates each field independently against its fallback.
func normalize(obj map[string]any, rawText string) Result {
	res := Fallback(rawText)

	if s, ok := obj[fieldTaskText].(string); ok && strings.TrimSpace(s) != "" {
		res.Description = strings.TrimSpace(s)
	}

	if s, ok := obj[fieldDueDate].(string); ok && strings.TrimSpace(s) != "" {
		due := strings.TrimSpace(s)
		res.DueDateText = &due
	}

	if s, ok := obj[fieldPriority].(string); ok {
		if pr, valid := model.ParsePriority(s); valid {
			res.Priority = pr
		}
	}

	if s, ok := obj[fieldCategory].(string); ok {
		res.Category = model.NormalizeCategory(s)
	}

	return res
}
