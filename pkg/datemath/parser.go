package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/olebedev/when/rules/ru"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser converts date expressions to absolute time.Time values.
// Naive expressions are interpreted in the parser's location.
type Parser struct {
	location *time.Location
	natural  *when.Parser
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "UTC", "Europe/Amsterdam"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	w := when.New(nil)
	w.Add(ru.All...)
	w.Add(en.All...)
	w.Add(common.All...)

	return &Parser{location: loc, natural: w}, nil
}

// Location returns the zone attached to naive results.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
// Unknown expressions resolve to the start of baseTime's day.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	t, ok, err := p.parseRelative(relative, baseTime)
	if err != nil {
		return baseTime, err
	}
	if !ok {
		return p.startOfDay(baseTime), nil
	}
	return t, nil
}

// parseRelative handles today/tomorrow/yesterday, the day after tomorrow, "in N days|weeks|months" and "next <weekday>".
func (p *Parser) parseRelative(relative string, baseTime time.Time) (time.Time, bool, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), true, nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), true, nil
	case "day after tomorrow", "послезавтра":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), true, nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), true, nil
	}

	if strings.HasPrefix(relative, "in ") {
		t, err := p.parseInDuration(relative, baseTime)
		return t, err == nil, err
	}

	if strings.HasPrefix(relative, "next ") {
		t, err := p.parseNextWeekday(relative, baseTime)
		return t, err == nil, err
	}

	return time.Time{}, false, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
