package telegram

import (
	"errors"
	"fmt"
	"testing"

	"smart-task-bot/internal/task"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text     string
		wantCmd  string
		wantArgs int
		wantOK   bool
	}{
		{"Купить хлеб", "", 0, false},
		{"/list", cmdList, 0, true},
		{"/LIST покупки", cmdList, 1, true},
		{"/done@smart_task_bot 5", cmdDone, 1, true},
		{"  /edit 3 новый   текст ", cmdEdit, 3, true},
	}

	for _, tt := range tests {
		cmd, args, ok := parseCommand(tt.text)
		if cmd != tt.wantCmd || len(args) != tt.wantArgs || ok != tt.wantOK {
			t.Errorf("parseCommand(%q) = %q, %v, %v", tt.text, cmd, args, ok)
		}
	}
}

func TestParseTaskID(t *testing.T) {
	for _, s := range []string{"-1", "1.5", "abc", ""} {
		if _, ok := parseTaskID(s); ok {
			t.Errorf("parseTaskID(%q) should fail", s)
		}
	}
	if id, ok := parseTaskID("42"); !ok || id != 42 {
		t.Errorf("parseTaskID(42) = %d, %v", id, ok)
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"high":    "High",
		"покупки": "Покупки",
		"ДОМ":     "Дом",
	}
	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	if got := errorMessage(fmt.Errorf("wrap: %w", task.ErrTaskNotFound), "x"); got != msgNotFound {
		t.Errorf("got %q", got)
	}
	if got := errorMessage(task.ErrEmptyInput, "x"); got != msgNotUnderstood {
		t.Errorf("got %q", got)
	}
	if got := errorMessage(errors.New("db down"), msgDoneFailed); got != msgDoneFailed {
		t.Errorf("raw errors must not leak, got %q", got)
	}
}
