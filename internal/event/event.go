package event

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/min-cheng/imp-calendar/internal/venue"
)

// Event represents a single concert listing. Events are immutable value
// records created fresh each run; there is no cross-run state.
type Event struct {
	Venue   venue.Venue `json:"venue"`
	Title   string      `json:"title"`
	Openers []string    `json:"openers,omitempty"`
	Start   time.Time   `json:"start"`
	AllDay  bool        `json:"all_day,omitempty"`
	URL     string      `json:"url,omitempty"`
	UID     string      `json:"uid"`
}

// uidNamespace seeds name-based UIDs. Fixed forever: changing it would
// re-issue every UID and duplicate entries in subscribed calendars.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://www.impconcerts.com/"))

// GenerateUID creates a deterministic calendar UID for an event. The input
// is exactly the (venue, title, start) triple; ticket links and fetch time
// must never participate, or UIDs would drift between runs.
func GenerateUID(venueSlug, title string, start time.Time) string {
	name := venueSlug + "|" + title + "|" + start.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@impconcerts.com"
}

// New creates a new Event with its UID populated.
func New(v venue.Venue, title string, openers []string, start time.Time, allDay bool, url string) *Event {
	return &Event{
		Venue:   v,
		Title:   title,
		Openers: openers,
		Start:   start,
		AllDay:  allDay,
		URL:     url,
		UID:     GenerateUID(v.Slug, title, start),
	}
}

// Dedupe drops events that share a UID with an earlier event, keeping the
// first occurrence. The UID is a pure function of (venue, title, start), so
// this collapses shows listed more than once.
func Dedupe(events []*Event) []*Event {
	seen := make(map[string]bool, len(events))
	unique := make([]*Event, 0, len(events))
	for _, evt := range events {
		if seen[evt.UID] {
			continue
		}
		seen[evt.UID] = true
		unique = append(unique, evt)
	}
	return unique
}

// SortByStart orders events by start time in place. Ties break by title then
// venue slug so output ordering is deterministic.
func SortByStart(events []*Event) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		ti := strings.ToLower(events[i].Title)
		tj := strings.ToLower(events[j].Title)
		if ti != tj {
			return ti < tj
		}
		return events[i].Venue.Slug < events[j].Venue.Slug
	})
}

// Summary returns the calendar summary line for an event: the headliner,
// followed by openers when present, followed by the venue name.
func (e *Event) Summary() string {
	var b strings.Builder
	b.WriteString(e.Title)
	if len(e.Openers) > 0 {
		b.WriteString(" (with ")
		b.WriteString(strings.Join(e.Openers, ", "))
		b.WriteString(")")
	}
	b.WriteString(" at ")
	b.WriteString(e.Venue.Name)
	return b.String()
}
