package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-task-bot/config"
	pkgTelegram "smart-task-bot/pkg/telegram"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newEngine(cfg config.WebhookConfig, seen *[]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, cfg)
	engine := gin.New()
	engine.POST("/webhook/telegram", mw.TelegramSecret(), mw.RateLimit(), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		*seen = append(*seen, string(body))
		c.Status(http.StatusOK)
	})
	return engine
}

func post(engine *gin.Engine, body, secret string) int {
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(body))
	if secret != "" {
		req.Header.Set(pkgTelegram.SecretTokenHeader, secret)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func update(chatID string) string {
	return `{"update_id": 1, "message": {"message_id": 1, "chat": {"id": ` + chatID + `, "type": "private"}, "text": "hi"}}`
}

func TestTelegramSecret(t *testing.T) {
	var seen []string
	engine := newEngine(config.WebhookConfig{Secret: "s3cret"}, &seen)

	tests := []struct {
		name   string
		secret string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "nope", http.StatusUnauthorized},
		{"valid", "s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := post(engine, update("1"), tt.secret); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}

	if len(seen) != 1 {
		t.Errorf("handler should run once, ran %d times", len(seen))
	}
}

func TestTelegramSecret_Disabled(t *testing.T) {
	var seen []string
	engine := newEngine(config.WebhookConfig{}, &seen)

	if got := post(engine, update("1"), ""); got != http.StatusOK {
		t.Errorf("got %d, want 200", got)
	}
}

func TestRateLimit_PerChat(t *testing.T) {
	var seen []string
	// 10/min gives a burst of 1
	engine := newEngine(config.WebhookConfig{RateLimitPerMin: 10}, &seen)

	if got := post(engine, update("1"), ""); got != http.StatusOK {
		t.Fatalf("first request: got %d", got)
	}
	if got := post(engine, update("1"), ""); got != http.StatusTooManyRequests {
		t.Errorf("second request from same chat: got %d, want 429", got)
	}
	if got := post(engine, update("2"), ""); got != http.StatusOK {
		t.Errorf("other chat must not be throttled: got %d", got)
	}

	if len(seen) != 2 || seen[0] != update("1") {
		t.Errorf("body must reach the handler intact: %v", seen)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	if rl := newRateLimiter(0); rl != nil || !rl.Allow("x") {
		t.Errorf("non-positive limit must disable limiting")
	}
}

func TestChatIDOf(t *testing.T) {
	if id, ok := chatIDOf([]byte(update("77"))); !ok || id != 77 {
		t.Errorf("got %d, %v", id, ok)
	}
	if _, ok := chatIDOf([]byte(`{"update_id": 1}`)); ok {
		t.Errorf("expected no chat id")
	}
	if _, ok := chatIDOf([]byte(`not json`)); ok {
		t.Errorf("expected no chat id")
	}
}
