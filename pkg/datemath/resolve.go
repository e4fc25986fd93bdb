package datemath

import (
	"strings"
	"time"
)

// Resolve turns an extracted due-date string, or failing that trigger words in
// rawText, into a UTC instant. It returns nil when nothing usable is found.
func (p *Parser) Resolve(dueDateText *string, rawText string, reference time.Time) *time.Time {
	var (
		t  time.Time
		ok bool
	)

	if dueDateText != nil && strings.TrimSpace(*dueDateText) != "" {
		t, ok = p.ParseNatural(*dueDateText, reference)
		if !ok {
			t, ok = p.parseStrict(*dueDateText)
		}
	}

	if !ok && HasReminderTrigger(rawText) {
		t, ok = p.ParseNatural(rawText, reference)
	}

	if !ok {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// ParseNatural parses text anchored at reference. Absolute layouts win, then
// the days after tomorrow, then natural-language rules (Russian and English),
// then the relative keywords of Parse. A bare time of day already past rolls
// over to the next day.
func (p *Parser) ParseNatural(text string, reference time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	base := reference.In(p.location)

	if t, ok := p.parseAbsolute(text); ok {
		return t, true
	}

	if t, ok := p.parseRelativeDay(text, base); ok {
		return t, true
	}

	if r, err := p.natural.Parse(text, base); err == nil && r != nil {
		t := p.anchorMonthDate(r.Time.In(p.location), base, r.Text)
		return p.preferFuture(t, base, r.Text), true
	}

	if t, ok, err := p.parseRelative(text, base); err == nil && ok {
		return t, true
	}

	return time.Time{}, false
}

// parseRelativeDay handles words the natural-language rules do not know
// ("послезавтра", "day after tomorrow"). A clock time elsewhere in text is
// kept; otherwise the reference time of day is used.
func (p *Parser) parseRelativeDay(text string, base time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	for _, rd := range relativeDays {
		idx := strings.Index(lower, rd.word)
		if idx < 0 {
			continue
		}
		day := base.AddDate(0, 0, rd.offset)

		rest := lower[:idx] + " " + lower[idx+len(rd.word):]
		r, err := p.natural.Parse(rest, base)
		if err != nil || r == nil || !clockRe.MatchString(r.Text) {
			return day, true
		}
		clock := r.Time.In(p.location)
		return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, p.location), true
	}
	return time.Time{}, false
}

// HasReminderTrigger reports whether text mentions a reminder or a relative day.
func HasReminderTrigger(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range reminderTriggers {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func (p *Parser) parseAbsolute(text string) (time.Time, bool) {
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, text, p.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (p *Parser) parseStrict(text string) (time.Time, bool) {
	t, err := time.ParseInLocation(StrictLayout, strings.TrimSpace(text), p.location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// anchorMonthDate fixes the year of a Russian "15 марта" match without an
// explicit year. The rule takes the wall-clock year, so the date is moved to
// the next occurrence on or after the reference day.
func (p *Parser) anchorMonthDate(t, base time.Time, matched string) time.Time {
	m := ruMonthDateRe.FindStringSubmatch(matched)
	if m == nil || m[1] != "" {
		return t
	}
	anchored := time.Date(base.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, p.location)
	if anchored.Before(p.startOfDay(base)) {
		anchored = anchored.AddDate(1, 0, 0)
	}
	return anchored
}

// preferFuture rolls a time of day already past today over to tomorrow unless
// the matched text names the day.
func (p *Parser) preferFuture(t, base time.Time, matched string) time.Time {
	if explicitDayRe.MatchString(matched) || ruMonthDateRe.MatchString(matched) {
		return t
	}
	if t.Before(base) && base.Sub(t) < 24*time.Hour {
		return t.AddDate(0, 0, 1)
	}
	return t
}
