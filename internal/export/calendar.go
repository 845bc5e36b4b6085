// Package export renders a match into the calendar representations users can
// import: Google and Outlook deep links plus a downloadable ICS file.
package export

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/drumst0ck/koi-calendar/internal/domain"
	"github.com/drumst0ck/koi-calendar/internal/schedule"
)

// EventDuration is the fixed length of a calendar event.
const EventDuration = 2 * time.Hour

const (
	googleCalendarBase = "https://calendar.google.com/calendar/render"
	outlookComposeBase = "https://outlook.live.com/calendar/0/deeplink/compose"
	eventLocation      = "Online"
	uidDomain          = "koi-calendar"

	// Compact UTC "basic" form required by both deep-link formats.
	stampLayout = "20060102T150405Z"
)

// Event bundles the three export representations of one match.
type Event struct {
	GoogleURL  string
	OutlookURL string
	ICS        string
}

// Format converts a match into its calendar exports. The evaluation instant
// supplies the implicit year for date resolution and the ICS DTSTAMP.
// An unresolvable date or time fails with a user-facing error; no partial
// event is ever returned.
func Format(m domain.Match, now time.Time) (Event, error) {
	start, err := schedule.ParseMoment(m.Date, m.Time, now)
	if err != nil {
		return Event{}, fmt.Errorf("cannot export match %d to calendar: %w", m.ID, err)
	}
	end := start.Add(EventDuration)

	title := fmt.Sprintf("%s - %s", m.Match, m.Category)
	description := fmt.Sprintf("%s - %s\n\nStream: %s", m.Phase, m.Competition, m.Stream)

	return Event{
		GoogleURL:  googleURL(title, description, start, end),
		OutlookURL: outlookURL(title, description, start, end),
		ICS:        icsText(m, title, description, start, end, now),
	}, nil
}

func googleURL(title, description string, start, end time.Time) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", title)
	q.Set("dates", stamp(start)+"/"+stamp(end))
	q.Set("details", description)
	q.Set("location", eventLocation)
	return googleCalendarBase + "?" + q.Encode()
}

func outlookURL(title, description string, start, end time.Time) string {
	q := url.Values{}
	q.Set("subject", title)
	q.Set("startdt", stamp(start))
	q.Set("enddt", stamp(end))
	q.Set("body", description)
	q.Set("location", eventLocation)
	return outlookComposeBase + "?" + q.Encode()
}

func icsText(m domain.Match, title, description string, start, end, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	uid := fmt.Sprintf("match-%d-%s@%s", m.ID, uuid.NewString(), uidDomain)
	ev := cal.AddEvent(uid)
	ev.SetDtStampTime(now.UTC())
	ev.SetStartAt(start.UTC())
	ev.SetEndAt(end.UTC())
	ev.SetSummary(title)
	// Literal "\n" per the ICS text escaping rules.
	ev.SetDescription(strings.ReplaceAll(description, "\n", "\\n"))
	ev.SetLocation(eventLocation)

	return cal.Serialize()
}

func stamp(t time.Time) string {
	return t.UTC().Format(stampLayout)
}
