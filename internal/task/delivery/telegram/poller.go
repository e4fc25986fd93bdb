package telegram

import (
	"context"
	"time"

	pkgLog "smart-task-bot/pkg/log"
)

const pollRetryDelay = 3 * time.Second

// Poll runs the getUpdates loop. Updates are processed in order; a failed
// fetch is retried after pollRetryDelay.
func (h *handler) Poll(ctx context.Context, timeoutSec int) {
	var offset int64
	h.l.Infof(ctx, "telegram poller: started (timeout=%ds)", timeoutSec)

	for {
		if ctx.Err() != nil {
			h.l.Infof(ctx, "telegram poller: stopped")
			return
		}

		updates, err := h.bot.GetUpdates(ctx, offset, timeoutSec)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			h.l.Warnf(ctx, "telegram poller: %v", err)
			select {
			case <-ctx.Done():
			case <-time.After(pollRetryDelay):
			}
			continue
		}

		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message == nil {
				continue
			}
			msgCtx := pkgLog.WithTraceID(context.WithoutCancel(ctx))
			if err := h.processMessage(msgCtx, u.Message); err != nil {
				h.l.Errorf(msgCtx, "telegram poller: processMessage failed: %v", err)
			}
		}
	}
}
