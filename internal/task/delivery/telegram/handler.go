package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-task-bot/internal/model"
	pkgLog "smart-task-bot/pkg/log"
	pkgResponse "smart-task-bot/pkg/response"
	pkgTelegram "smart-task-bot/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background goroutine
// to avoid Telegram webhook timeout: a single update may wait on two LLM calls.
// @Summary Telegram webhook
// @Description Receives Telegram Bot API updates
// @Tags telegram
// @Accept json
// @Produce json
// @Param X-Telegram-Bot-Api-Secret-Token header string false "Webhook secret"
// @Param update body pkgTelegram.Update true "Telegram update"
// @Success 200 {object} pkgResponse.Resp
// @Failure 400 {object} pkgResponse.Resp
// @Failure 401 {object} pkgResponse.Resp
// @Failure 429 {object} pkgResponse.Resp
// @Router /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := pkgLog.WithTraceID(context.Background())
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage routes a single message. The returned error is a delivery
// failure; use case failures are answered with a short text instead.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" || msg.Chat == nil {
		return nil
	}

	sc := scopeOf(msg)
	h.l.Infof(ctx, "telegram handler: user=%d chat=%d text_length=%d", sc.UserID, sc.ChatID, len(msg.Text))

	cmd, args, ok := parseCommand(msg.Text)
	if !ok {
		return h.handleAdd(ctx, sc, msg.Text)
	}

	switch cmd {
	case cmdStart:
		return h.handleStart(ctx, sc, msg.From)
	case cmdHelp:
		return h.reply(ctx, sc.ChatID, helpText)
	case cmdAdd:
		return h.handleAddCommand(ctx, sc, args)
	case cmdList:
		return h.handleList(ctx, sc, args)
	case cmdDone:
		return h.handleDone(ctx, sc, args)
	case cmdEdit:
		return h.handleEdit(ctx, sc, args)
	case cmdNote:
		return h.handleNote(ctx, sc, args)
	case cmdSetPriority:
		return h.handleSetPriority(ctx, sc, args)
	default:
		return h.chat(ctx, sc, promptChat(sc.UserID, msg.Text))
	}
}

// reply sends Markdown, falling back to plain text when Telegram rejects the markup.
func (h *handler) reply(ctx context.Context, chatID int64, text string) error {
	return h.bot.Notify(ctx, chatID, text)
}

// chat answers with LLM-generated text. The gateway never fails.
func (h *handler) chat(ctx context.Context, sc model.Scope, prompt string) error {
	return h.bot.SendMessage(ctx, sc.ChatID, h.assistant.Complete(ctx, prompt))
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{ChatID: msg.Chat.ID, UserID: msg.Chat.ID}
	if msg.From != nil {
		sc.UserID = msg.From.ID
		sc.Username = msg.From.Username
	}
	return sc
}
