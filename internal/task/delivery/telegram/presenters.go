package telegram

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"smart-task-bot/internal/model"
	"smart-task-bot/internal/task"
)

const (
	displayLayout = "2006-01-02 15:04"

	setPriorityUsage = "Пожалуйста, используйте формат: `/set_priority <номер задачи> <high|medium|low>`"

	helpText = "Привет! Я твой личный AI-ассистент по задачам! Вот что я умею:\n\n" +
		"*/add <текст задачи> [дата/время] [приоритет] [#категория]* - Добавить новую задачу " +
		"(например, `/add Купить молоко завтра в 18:00 high #покупки`). " +
		"Приоритет может быть `high`, `medium` или `low` (по умолчанию `medium`). " +
		"Категория указывается со знаком `#`.\n" +
		"*/list [категория]* - Показать все твои активные задачи, отсортированные по приоритету. " +
		"Опционально можно указать категорию (например, `/list покупки`).\n" +
		"*/done <номер задачи>* - Отметить задачу как выполненную.\n" +
		"*/edit <номер задачи> <новый текст>* - Изменить текст существующей задачи.\n" +
		"*/note <номер задачи> <текст заметки>* - Добавить заметку или уточнение к задаче.\n" +
		"*/set_priority <номер задачи> <high|medium|low>* - Изменить приоритет существующей задачи.\n" +
		"*/help* - Показать это сообщение.\n\n" +
		"Просто напиши мне задачу, и я постараюсь ее понять!"
)

// createdText confirms a new task. The due date is shown in the display zone.
func (h *handler) createdText(out task.CreateOutput) string {
	t := out.Task
	var b strings.Builder
	fmt.Fprintf(&b, "Отлично! Я записал задачу: *%s*.", t.Description)
	if t.DueAt != nil {
		due := t.DueAt.In(h.displayTZ)
		fmt.Fprintf(&b, "\nНапомню тебе %s (%s).", due.Format("2006-01-02 в 15:04"), due.Format("MST"))
	}
	fmt.Fprintf(&b, "\nПриоритет: *%s*.", capitalize(string(t.Priority)))
	if t.Category != nil {
		fmt.Fprintf(&b, "\nКатегория: *%s*.", capitalize(*t.Category))
	}
	if out.CalendarLink != "" {
		fmt.Fprintf(&b, "\n📅 [Google Calendar](%s)", out.CalendarLink)
	}
	return b.String()
}

func (h *handler) listText(tasks []model.Task, category string) string {
	var b strings.Builder
	if category != "" {
		fmt.Fprintf(&b, "Твои задачи в категории *%s*:\n\n", capitalize(category))
	} else {
		b.WriteString("Твои текущие задачи:\n\n")
	}

	for _, t := range tasks {
		fmt.Fprintf(&b, "*%d.* %s", t.ID, t.Description)
		if t.DueAt != nil {
			fmt.Fprintf(&b, " (до %s)", t.DueAt.In(h.displayTZ).Format(displayLayout))
		}
		if t.Notes != "" {
			fmt.Fprintf(&b, " _(Заметки: %s)_", t.Notes)
		}
		b.WriteString(priorityBadge(t.Priority))
		if t.Category != nil {
			fmt.Fprintf(&b, " #%s", *t.Category)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func priorityBadge(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return " 🔥*Высокий приоритет*🔥"
	case model.PriorityMedium:
		return " 🟡Средний приоритет"
	case model.PriorityLow:
		return " 🟢Низкий приоритет"
	}
	return ""
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func promptGreeting(name string) string {
	return fmt.Sprintf("Пользователь %s только что начал диалог с ботом. Приветствуй его как дружелюбный AI-ассистент, "+
		"расскажи, что ты умеешь (помогать с задачами, напоминать, мотивировать).", name)
}

func promptChat(userID int64, text string) string {
	return fmt.Sprintf("Пользователь %d написал: '%s'. Ответь ему как дружелюбный AI-ассистент.", userID, text)
}

func promptAddMissingText(userID int64) string {
	return fmt.Sprintf("Пользователь %d ввел /add без текста задачи. Попроси его ввести текст задачи.", userID)
}

func promptNoTasks(userID int64, category string) string {
	if category != "" {
		return fmt.Sprintf("Пользователь %d запросил список задач по категории '%s', но задач нет. Предложи добавить.", userID, category)
	}
	return fmt.Sprintf("Пользователь %d запросил список задач, но у него их нет. Предложи добавить.", userID)
}

func promptDoneMissingID(userID int64) string {
	return fmt.Sprintf("Пользователь %d ввел /done без номера задачи или с неверным номером. Попроси ввести номер.", userID)
}

func promptEditMissingArgs(userID int64) string {
	return fmt.Sprintf("Пользователь %d ввел /edit без номера задачи или нового текста. Попроси ввести корректно.", userID)
}

func promptNoteMissingArgs(userID int64) string {
	return fmt.Sprintf("Пользователь %d ввел /note без номера задачи или текста заметки. Попроси ввести корректно.", userID)
}
