package datemath_test

import (
	"testing"
	"time"

	"smart-task-bot/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Day after tomorrow",
			relative: "day after tomorrow",
			want:     startOfBase.AddDate(0, 0, 2),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase, // falls back to startOfDay(base)
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	ref := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) // Friday

	tests := []struct {
		name    string
		dueDate *string
		raw     string
		want    *time.Time
	}{
		{
			name:    "Strict layout",
			dueDate: strPtr("2025-03-15 18:00:00"),
			raw:     "Купить хлеб завтра в 18:00 high #покупки",
			want:    timePtr(time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)),
		},
		{
			name:    "RFC3339 keeps its zone",
			dueDate: strPtr("2025-03-15T18:00:00+02:00"),
			want:    timePtr(time.Date(2025, 3, 15, 16, 0, 0, 0, time.UTC)),
		},
		{
			name:    "Date only",
			dueDate: strPtr("2025-04-01"),
			want:    timePtr(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name: "No due date and no trigger",
			raw:  "Позвонить другу",
		},
		{
			name:    "Blank due date",
			dueDate: strPtr("   "),
			raw:     "Заплатить по счету",
		},
		{
			name:    "Garbage due date",
			dueDate: strPtr("когда-нибудь"),
			raw:     "Заплатить по счету",
		},
		{
			name: "Trigger word without a date",
			raw:  "напомни позвонить маме",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Resolve(tt.dueDate, tt.raw, ref)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("Resolve() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Resolve() = nil, want %v", tt.want)
			}
			if !got.Equal(*tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("Resolve() must return UTC, got %v", got.Location())
			}
		})
	}
}

func TestResolve_NaiveTimesUseParserZone(t *testing.T) {
	parser, err := datemath.NewParser("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	got := parser.Resolve(strPtr("2025-03-15 18:00:00"), "", ref)
	want := time.Date(2025, 3, 15, 17, 0, 0, 0, time.UTC) // CET is UTC+1 in March before DST
	if got == nil || !got.Equal(want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolve_RelativeWords(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	ref := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) // Friday

	tests := []struct {
		name    string
		dueDate *string
		raw     string
		want    time.Time
	}{
		{
			name:    "Послезавтра keeps the reference clock",
			dueDate: strPtr("послезавтра"),
			want:    time.Date(2025, 3, 16, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "Послезавтра with a clock time",
			dueDate: strPtr("послезавтра в 10:00"),
			want:    time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "Day after tomorrow is not tomorrow",
			dueDate: strPtr("day after tomorrow"),
			want:    time.Date(2025, 3, 16, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "Day after tomorrow at 5pm",
			dueDate: strPtr("day after tomorrow at 5pm"),
			want:    time.Date(2025, 3, 16, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "Послезавтра in raw text",
			raw:  "послезавтра к врачу",
			want: time.Date(2025, 3, 16, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "Weekday",
			dueDate: strPtr("в среду"),
			want:    time.Date(2025, 3, 19, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "Weekday in raw text",
			raw:  "встреча в среду",
			want: time.Date(2025, 3, 19, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "Russian month date tomorrow",
			dueDate: strPtr("15 марта"),
			want:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Russian month date with time",
			dueDate: strPtr("15 марта в 18:00"),
			want:    time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
		},
		{
			name:    "Russian month date later this year",
			dueDate: strPtr("1 апреля"),
			want:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Russian month date already passed",
			dueDate: strPtr("10 марта"),
			want:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Russian month date with explicit year",
			dueDate: strPtr("15 марта 2027"),
			want:    time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Today keeps a past clock time",
			dueDate: strPtr("сегодня в 9:00"),
			want:    time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		{
			name:    "English today keeps a past clock time",
			dueDate: strPtr("today at 9am"),
			want:    time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		{
			name:    "Bare past clock time rolls over",
			dueDate: strPtr("в 9:00"),
			want:    time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Resolve(tt.dueDate, tt.raw, ref)
			if got == nil {
				t.Fatalf("Resolve() = nil, want %v", tt.want)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_TriggerWordFallback(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	ref := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	got := parser.Resolve(nil, "завтра купить молоко", ref)
	if got == nil {
		t.Fatal("expected a due date from the raw text")
	}
	if !got.After(ref) {
		t.Errorf("expected a future date, got %v", got)
	}
}

func TestResolve_RelativeDays(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	ref := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	got := parser.Resolve(strPtr("in 3 days"), "", ref)
	if got == nil {
		t.Fatal("expected a due date")
	}
	if y, m, d := got.Date(); y != 2025 || m != time.March || d != 17 {
		t.Errorf("Resolve() = %v, want 2025-03-17", got)
	}
}

func TestHasReminderTrigger(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Напомни позвонить маме", true},
		{"послезавтра к врачу", true},
		{"встреча в среду", true},
		{"call mom tomorrow", true},
		{"Купить хлеб", false},
		{"Тренировка в зале #спорт", false},
	}
	for _, tt := range tests {
		if got := datemath.HasReminderTrigger(tt.text); got != tt.want {
			t.Errorf("HasReminderTrigger(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func timePtr(t time.Time) *time.Time { return &t }
