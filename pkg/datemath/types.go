package datemath

import (
	"regexp"
	"time"

	"github.com/olebedev/when/rules/ru"
)

// StrictLayout is the layout the extraction prompt asks the model for.
const StrictLayout = "2006-01-02 15:04:05"

// absoluteLayouts are tried before natural-language rules so a full timestamp
// is never reduced to its time-of-day part.
var absoluteLayouts = []string{
	time.RFC3339,
	StrictLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"02.01.2006 15:04",
	"2006-01-02",
	"02.01.2006",
}

// reminderTriggers mark raw text worth a second parse when no due date was extracted.
var reminderTriggers = []string{
	"напомни",
	"завтра",
	"послезавтра",
	"в среду",
	"в понедельник",
	"во вторник",
	"в четверг",
	"в пятницу",
	"в субботу",
	"в воскресенье",
	"remind",
	"tomorrow",
	"day after tomorrow",
	"on monday", "on tuesday", "on wednesday", "on thursday", "on friday", "on saturday", "on sunday",
}

// relativeDays are matched before the natural-language rules, longest first,
// since "day after tomorrow" also contains "tomorrow".
var relativeDays = []struct {
	word   string
	offset int
}{
	{"day after tomorrow", 2},
	{"послезавтра", 2},
}

var (
	// clockRe marks a match that carries a time of day.
	clockRe       = regexp.MustCompile(`\d`)
	explicitDayRe = regexp.MustCompile(`(?i)сегодня|завтра|today|tonight|tomorrow`)
	ruMonthDateRe = regexp.MustCompile(`(?i)\d{1,2}\s*` + ru.MONTHS_PATTERN + `(\s*\d{4})?`)
)
