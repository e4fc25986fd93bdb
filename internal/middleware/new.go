package middleware

import (
	"smart-task-bot/config"
	"smart-task-bot/pkg/log"
)

// Middleware guards the Telegram webhook route.
type Middleware struct {
	l           log.Logger
	secret      string
	rateLimiter *rateLimiter
}

// New creates a Middleware. An empty secret disables the header check;
// a non-positive RateLimitPerMin disables rate limiting.
func New(l log.Logger, cfg config.WebhookConfig) Middleware {
	return Middleware{
		l:           l,
		secret:      cfg.Secret,
		rateLimiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
