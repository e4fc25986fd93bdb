package extraction

import (
	"context"
	"strings"
	"testing"
	"time"

	"smart-task-bot/internal/assistant"
	"smart-task-bot/internal/model"
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

type mockGateway struct {
	reply      string
	panics     bool
	lastPrompt string
}

func (m *mockGateway) Complete(ctx context.Context, prompt string) string {
	return m.CompleteJSON(ctx, prompt)
}

func (m *mockGateway) CompleteJSON(ctx context.Context, prompt string) string {
	m.lastPrompt = prompt
	if m.panics {
		panic("boom")
	}
	return m.reply
}

var refDate = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestExtract(t *testing.T) {
	const raw = "Купить хлеб завтра в 18:00 high #покупки"

	tests := []struct {
		name  string
		reply string
		want  Result
	}{
		{
			name:  "worked example",
			reply: `{"task_text": "Купить хлеб", "due_date": "2025-03-15 18:00:00", "priority": "high", "category": "покупки"}`,
			want:  Result{Description: "Купить хлеб", DueDateText: strPtr("2025-03-15 18:00:00"), Priority: model.PriorityHigh, Category: strPtr("покупки")},
		},
		{
			name:  "code fence and prose",
			reply: "Конечно!\n```json\n{\"task_text\": \"Купить хлеб\", \"due_date\": null, \"priority\": \"LOW\", \"category\": \" Покупки \"}\n```\nУдачи!",
			want:  Result{Description: "Купить хлеб", Priority: model.PriorityLow, Category: strPtr("покупки")},
		},
		{
			name:  "nested braces and braces in strings",
			reply: `note: {"task_text": "a {b} c", "due_date": null, "priority": "medium", "category": null, "meta": {"x": "}"}} trailing {"task_text": "other"}`,
			want:  Result{Description: "a {b} c", Priority: model.PriorityMedium},
		},
		{
			name:  "first brace span is not json",
			reply: `{шаблон} {"task_text": "Купить хлеб", "priority": "high"}`,
			want:  Result{Description: "Купить хлеб", Priority: model.PriorityHigh},
		},
		{
			name:  "transport apology",
			reply: assistant.ApologyUnavailable,
			want:  Fallback(raw),
		},
		{
			name:  "truncated json",
			reply: `{"task_text": "Купить хлеб", "priority": "hi`,
			want:  Fallback(raw),
		},
		{
			name:  "empty object",
			reply: `{}`,
			want:  Fallback(raw),
		},
		{
			name:  "json array",
			reply: `[1, 2, 3]`,
			want:  Fallback(raw),
		},
		{
			name:  "invalid priority",
			reply: `{"task_text": "x", "priority": "urgent"}`,
			want:  Result{Description: "x", Priority: model.PriorityMedium},
		},
		{
			name:  "non-string fields",
			reply: `{"task_text": 42, "due_date": 5, "priority": 1, "category": ["a"]}`,
			want:  Fallback(raw),
		},
		{
			name:  "blank category and text",
			reply: `{"task_text": "   ", "due_date": "  ", "priority": "high", "category": "   "}`,
			want:  Result{Description: raw, Priority: model.PriorityHigh},
		},
		{
			name:  "null task text",
			reply: `{"task_text": null, "due_date": "завтра", "priority": "low", "category": "Работа"}`,
			want:  Result{Description: raw, DueDateText: strPtr("завтра"), Priority: model.PriorityLow, Category: strPtr("работа")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(&mockLogger{}, &mockGateway{reply: tt.reply})
			got := p.Extract(context.Background(), raw, 7, refDate)

			if got.Description != tt.want.Description {
				t.Errorf("Description = %q, want %q", got.Description, tt.want.Description)
			}
			if got.Priority != tt.want.Priority {
				t.Errorf("Priority = %q, want %q", got.Priority, tt.want.Priority)
			}
			if !equalPtr(got.DueDateText, tt.want.DueDateText) {
				t.Errorf("DueDateText = %v, want %v", got.DueDateText, tt.want.DueDateText)
			}
			if !equalPtr(got.Category, tt.want.Category) {
				t.Errorf("Category = %v, want %v", got.Category, tt.want.Category)
			}
		})
	}
}

func TestExtract_PanicFallsBack(t *testing.T) {
	p := New(&mockLogger{}, &mockGateway{panics: true})
	got := p.Extract(context.Background(), "напомни позвонить маме", 1, refDate)
	if got.Description != "напомни позвонить маме" || got.Priority != model.PriorityMedium || got.DueDateText != nil || got.Category != nil {
		t.Errorf("expected fallback, got %+v", got)
	}
}

func TestBuildPrompt(t *testing.T) {
	gw := &mockGateway{reply: "{}"}
	New(&mockLogger{}, gw).Extract(context.Background(), "Позвонить другу", 99, refDate)

	for _, want := range []string{
		"Текущая дата (UTC): 2025-03-14",
		"2025-03-15 18:00:00",
		"'99'",
		"'Позвонить другу'",
		"task_text", "due_date", "priority", "category",
	} {
		if !strings.Contains(gw.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
