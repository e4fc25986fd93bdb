package assistant

import (
	"context"
	"errors"
	"testing"

	"smart-task-bot/pkg/llmprovider"
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

type mockGenerator struct {
	resp    *llmprovider.Response
	err     error
	lastReq *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

func reply(text string) *llmprovider.Response {
	return &llmprovider.Response{Content: llmprovider.Message{Role: "assistant", Text: text}}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name string
		gen  *mockGenerator
		want string
	}{
		{name: "success is trimmed", gen: &mockGenerator{resp: reply("  Привет!  ")}, want: "Привет!"},
		{name: "transport failure", gen: &mockGenerator{err: llmprovider.ErrAllProvidersFailed}, want: ApologyUnavailable},
		{name: "other error", gen: &mockGenerator{err: errors.New("dial tcp: refused")}, want: ApologyUnavailable},
		{name: "empty reply", gen: &mockGenerator{resp: reply("   ")}, want: ApologyMalformed},
		{name: "nil response", gen: &mockGenerator{}, want: ApologyMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&mockLogger{}, tt.gen, Config{})
			if got := g.Complete(context.Background(), "hi"); got != tt.want {
				t.Errorf("Complete() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComplete_RequestShape(t *testing.T) {
	gen := &mockGenerator{resp: reply("ok")}
	g := New(&mockLogger{}, gen, Config{})
	g.Complete(context.Background(), "напомни позвонить маме")

	req := gen.lastReq
	if req.SystemInstruction != DefaultPersona {
		t.Errorf("unexpected persona %q", req.SystemInstruction)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" || req.Messages[0].Text != "напомни позвонить маме" {
		t.Errorf("unexpected messages %+v", req.Messages)
	}
	if req.Temperature != 0.7 || req.MaxTokens != 200 {
		t.Errorf("unexpected sampling %v/%d", req.Temperature, req.MaxTokens)
	}
	if req.JSONMode {
		t.Error("Complete must not request JSON mode")
	}
}

func TestCompleteJSON_Mode(t *testing.T) {
	gen := &mockGenerator{resp: reply("{}")}

	New(&mockLogger{}, gen, Config{}).CompleteJSON(context.Background(), "x")
	if gen.lastReq.JSONMode {
		t.Error("JSON mode must stay off unless configured")
	}

	New(&mockLogger{}, gen, Config{JSONMode: true}).CompleteJSON(context.Background(), "x")
	if !gen.lastReq.JSONMode {
		t.Error("expected JSON mode when configured")
	}
}
