package middleware

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"smart-task-bot/pkg/response"
	pkgTelegram "smart-task-bot/pkg/telegram"
)

// maxUpdateSize caps how much of a webhook body is buffered.
const maxUpdateSize = 1 << 20

// TelegramSecret rejects requests whose secret-token header does not match.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.secret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.secret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// RateLimit throttles updates per chat, or per client IP when the chat is unknown.
// The body is restored for the next handler.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUpdateSize))
		if err == nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			if chatID, ok := chatIDOf(body); ok {
				key = "chat:" + strconv.FormatInt(chatID, 10)
			}
		}

		if !m.rateLimiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func chatIDOf(body []byte) (int64, bool) {
	var u pkgTelegram.Update
	if err := json.Unmarshal(body, &u); err != nil || u.Message == nil || u.Message.Chat == nil {
		return 0, false
	}
	return u.Message.Chat.ID, true
}
