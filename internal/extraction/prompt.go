package extraction

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	DueDateLayout = "2006-01-02 15:04:05"
)

// buildPrompt anchors relative dates at referenceDate (UTC day).
func buildPrompt(rawText string, ownerID int64, referenceDate time.Time) string {
	ref := referenceDate.UTC()
	today := ref.Format(dateLayout)
	tomorrow := ref.AddDate(0, 0, 1).Format(dateLayout)

	var b strings.Builder
	fmt.Fprintf(&b, "Пользователь '%d' хочет добавить задачу: '%s'. ", ownerID, rawText)
	fmt.Fprintf(&b, "Текущая дата (UTC): %s. ", today)
	b.WriteString("Извлеки из текста задачи:\n")
	b.WriteString("1. **task_text**: Сама суть задачи (например, 'Купить молоко', 'Позвонить другу').\n")
	b.WriteString("2. **due_date**: Дата и время в формате `YYYY-MM-DD HH:MM:SS` или `null`, если не указано.\n")
	b.WriteString("3. **priority**: Приоритет задачи. Должен быть одним из: 'high', 'medium', 'low'. " +
		"Если приоритет явно указан в тексте (например, 'высокий', 'low', 'средний'), используй его. " +
		"Если не указан, используй 'medium'.\n")
	b.WriteString("4. **category**: Категория задачи. Может быть любой строкой (например, 'Работа', 'Личное', 'Покупки', 'Спорт'). " +
		"Если категория указана в тексте (например, 'задача #работа', 'купить молоко #покупки'), извлеки её. " +
		"Если не указана, используй `null`.\n")
	b.WriteString("**Обязательно** возвращай JSON-объект, содержащий *все четыре* поля: `task_text`, `due_date`, `priority`, `category`.\n")
	b.WriteString("Если не можешь понять, что задача, установи `task_text` в `null`.\n")
	b.WriteString("Примеры:\n")
	fmt.Fprintf(&b, " - 'Купить хлеб завтра в 18:00 high #покупки' -> `{\"task_text\": \"Купить хлеб\", \"due_date\": \"%s 18:00:00\", \"priority\": \"high\", \"category\": \"покупки\"}`\n", tomorrow)
	b.WriteString(" - 'Заплатить по счету low #финансы' -> `{\"task_text\": \"Заплатить по счету\", \"due_date\": null, \"priority\": \"low\", \"category\": \"финансы\"}`\n")
	b.WriteString(" - 'Позвонить другу' -> `{\"task_text\": \"Позвонить другу\", \"due_date\": null, \"priority\": \"medium\", \"category\": null}`\n")
	b.WriteString("Твой ответ должен быть *только* JSON-объектом, без лишнего текста или форматирования (например, ```json).")
	return b.String()
}
