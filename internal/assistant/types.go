package assistant

import (
	"context"

	"smart-task-bot/pkg/llmprovider"
)

const (
	// ApologyUnavailable is returned when no provider could be reached.
	ApologyUnavailable = "Извини, я сейчас не могу связаться со своим мозгом. Попробуй позже."
	// ApologyMalformed is returned when a provider answered without usable text.
	ApologyMalformed = "Ой, что-то пошло не так с ответом. Могу ли я чем-то еще помочь?"

	DefaultPersona = "Ты дружелюбный и полезный AI-ассистент по управлению задачами в Telegram. " +
		"Твоя цель - помогать пользователю быть продуктивным, напоминать о задачах, мотивировать " +
		"и общаться в живом, поддерживающем стиле."
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 200
)

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config holds sampling parameters. Zero values take the defaults above.
type Config struct {
	Persona     string
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}
