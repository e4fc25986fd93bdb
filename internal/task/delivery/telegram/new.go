package telegram

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-bot/internal/assistant"
	"smart-task-bot/internal/task"
	pkgLog "smart-task-bot/pkg/log"
	pkgTelegram "smart-task-bot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	// HandleWebhook acknowledges a webhook update and processes it in the background.
	HandleWebhook(c *gin.Context)
	// Poll fetches updates with getUpdates until ctx is cancelled.
	Poll(ctx context.Context, timeoutSec int)
	// Wait blocks until every accepted webhook update has been processed.
	Wait()
}

type handler struct {
	l         pkgLog.Logger
	uc        task.UseCase
	assistant assistant.Gateway
	bot       *pkgTelegram.Bot
	displayTZ *time.Location

	inflight sync.WaitGroup
}

// New creates a new Telegram delivery handler. Due dates are shown in displayTZ.
func New(
	l pkgLog.Logger,
	uc task.UseCase,
	gateway assistant.Gateway,
	bot *pkgTelegram.Bot,
	displayTZ *time.Location,
) Handler {
	if displayTZ == nil {
		displayTZ = time.UTC
	}
	return &handler{
		l:         l,
		uc:        uc,
		assistant: gateway,
		bot:       bot,
		displayTZ: displayTZ,
	}
}

func (h *handler) Wait() {
	h.inflight.Wait()
}
