package telegram

import (
	"errors"

	"smart-task-bot/internal/task"
)

const (
	msgNotFound      = "Задачи с таким номером не найдено или она не принадлежит тебе."
	msgNotUnderstood = "Я не смог понять, что это за задача. Пожалуйста, попробуй сформулировать яснее."

	msgAddFailed      = "Извини, что-то пошло не так при добавлении задачи."
	msgListFailed     = "Извини, не получилось загрузить список задач. Попробуй позже."
	msgDoneFailed     = "Произошла ошибка при попытке отметить задачу."
	msgEditFailed     = "Произошла ошибка при попытке обновить текст задачи."
	msgNoteFailed     = "Произошла ошибка при попытке добавить заметку."
	msgPriorityFailed = "Произошла ошибка при попытке изменить приоритет задачи."
)

// errorMessage maps a use case error to a short user-facing string.
// fallback is used for anything that is not a known domain error.
func errorMessage(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrTaskNotFound):
		return msgNotFound
	case errors.Is(err, task.ErrEmptyInput):
		return msgNotUnderstood
	default:
		return fallback
	}
}
