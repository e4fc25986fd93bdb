package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"smart-task-bot/internal/model"
	"smart-task-bot/internal/task"
	pkgTelegram "smart-task-bot/pkg/telegram"
)

const (
	cmdStart       = "/start"
	cmdHelp        = "/help"
	cmdAdd         = "/add"
	cmdList        = "/list"
	cmdDone        = "/done"
	cmdEdit        = "/edit"
	cmdNote        = "/note"
	cmdSetPriority = "/set_priority"
)

// parseCommand splits "/cmd@bot arg1 arg2" into its lower-cased command and args.
// ok is false for plain text.
func parseCommand(text string) (cmd string, args []string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", nil, false
	}
	fields := strings.Fields(text)
	cmd = strings.ToLower(fields[0])
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}
	return cmd, fields[1:], true
}

// parseTaskID accepts a plain non-negative decimal number.
func parseTaskID(s string) (int64, bool) {
	id, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, false
	}
	return int64(id), true
}

func (h *handler) handleStart(ctx context.Context, sc model.Scope, from *pkgTelegram.User) error {
	name := displayName(from)
	greeting := h.assistant.Complete(ctx, promptGreeting(name))
	return h.bot.SendMessage(ctx, sc.ChatID, fmt.Sprintf("Привет, %s! %s", name, greeting))
}

func (h *handler) handleAddCommand(ctx context.Context, sc model.Scope, args []string) error {
	if len(args) == 0 {
		return h.chat(ctx, sc, promptAddMissingText(sc.UserID))
	}
	return h.handleAdd(ctx, sc, strings.Join(args, " "))
}

func (h *handler) handleAdd(ctx context.Context, sc model.Scope, rawText string) error {
	out, err := h.uc.Create(ctx, sc, task.CreateInput{RawText: rawText, ChatID: sc.ChatID})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Create failed: %v", err)
		return h.reply(ctx, sc.ChatID, errorMessage(err, msgAddFailed))
	}
	return h.reply(ctx, sc.ChatID, h.createdText(out))
}

func (h *handler) handleList(ctx context.Context, sc model.Scope, args []string) error {
	var category string
	if len(args) > 0 {
		category = strings.ToLower(args[0])
	}

	out, err := h.uc.List(ctx, sc, task.ListInput{Status: model.StatusPending, Category: category})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: List failed: %v", err)
		return h.reply(ctx, sc.ChatID, msgListFailed)
	}

	if out.Count == 0 {
		return h.chat(ctx, sc, promptNoTasks(sc.UserID, category))
	}
	return h.reply(ctx, sc.ChatID, h.listText(out.Tasks, category))
}

func (h *handler) handleDone(ctx context.Context, sc model.Scope, args []string) error {
	var id int64
	ok := len(args) > 0
	if ok {
		id, ok = parseTaskID(args[0])
	}
	if !ok {
		return h.chat(ctx, sc, promptDoneMissingID(sc.UserID))
	}

	t, err := h.uc.MarkDone(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: MarkDone task=%d: %v", id, err)
		return h.reply(ctx, sc.ChatID, errorMessage(err, msgDoneFailed))
	}
	return h.reply(ctx, sc.ChatID, fmt.Sprintf("Поздравляю! Задача '%s' отмечена как выполненная! 🎉 Ты просто молодец!", t.Description))
}

func (h *handler) handleEdit(ctx context.Context, sc model.Scope, args []string) error {
	id, rest, ok := idAndText(args)
	if !ok {
		return h.chat(ctx, sc, promptEditMissingArgs(sc.UserID))
	}

	t, err := h.uc.UpdateText(ctx, sc, task.UpdateTextInput{ID: id, Text: rest, ChatID: sc.ChatID})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: UpdateText task=%d: %v", id, err)
		return h.reply(ctx, sc.ChatID, errorMessage(err, msgEditFailed))
	}
	return h.reply(ctx, sc.ChatID, fmt.Sprintf("Текст задачи '%d' обновлен на: *%s*.", t.ID, t.Description))
}

func (h *handler) handleNote(ctx context.Context, sc model.Scope, args []string) error {
	id, rest, ok := idAndText(args)
	if !ok {
		return h.chat(ctx, sc, promptNoteMissingArgs(sc.UserID))
	}

	t, err := h.uc.AppendNote(ctx, sc, task.AppendNoteInput{ID: id, Note: rest})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: AppendNote task=%d: %v", id, err)
		return h.reply(ctx, sc.ChatID, errorMessage(err, msgNoteFailed))
	}
	return h.reply(ctx, sc.ChatID, fmt.Sprintf("К задаче '%d' добавлена заметка. Теперь она выглядит так: _%s_", t.ID, t.Notes))
}

func (h *handler) handleSetPriority(ctx context.Context, sc model.Scope, args []string) error {
	id, ok := int64(0), len(args) >= 2
	if ok {
		id, ok = parseTaskID(args[0])
	}
	if !ok {
		return h.reply(ctx, sc.ChatID, setPriorityUsage)
	}

	value := strings.ToLower(args[1])
	t, err := h.uc.SetPriority(ctx, sc, task.SetPriorityInput{ID: id, Priority: value})
	if errors.Is(err, task.ErrInvalidPriority) {
		return h.reply(ctx, sc.ChatID, fmt.Sprintf("Неизвестный приоритет '%s'. Используйте 'high', 'medium' или 'low'.", value))
	}
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: SetPriority task=%d: %v", id, err)
		return h.reply(ctx, sc.ChatID, errorMessage(err, msgPriorityFailed))
	}
	return h.reply(ctx, sc.ChatID, fmt.Sprintf("Приоритет задачи '%d' изменен на *%s*.", t.ID, capitalize(string(t.Priority))))
}

// idAndText expects "<id> <text...>".
func idAndText(args []string) (int64, string, bool) {
	if len(args) < 2 {
		return 0, "", false
	}
	id, ok := parseTaskID(args[0])
	if !ok {
		return 0, "", false
	}
	return id, strings.Join(args[1:], " "), true
}

func displayName(u *pkgTelegram.User) string {
	if u == nil {
		return "друг"
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.Username
	}
	if name == "" {
		return "друг"
	}
	return name
}
