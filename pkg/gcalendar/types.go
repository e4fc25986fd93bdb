package gcalendar

import "time"

const (
	DefaultCalendarID    = "primary"
	DefaultEventDuration = 30 * time.Minute
	DefaultTokenPath     = "token.json"
)

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	Duration    time.Duration // DefaultEventDuration when zero
	Timezone    string        // IANA name, e.g. "Europe/Amsterdam"
	// PopupAtStart replaces the calendar's default reminders with a single popup at StartTime.
	PopupAtStart bool
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
