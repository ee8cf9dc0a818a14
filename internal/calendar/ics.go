package calendar

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/min-cheng/imp-calendar/internal/event"
)

const (
	// ProdID identifies this generator in emitted calendars.
	ProdID = "-//IMP Concerts//imp-calendar//EN"

	// EventDuration is the assumed show length for timed events.
	EventDuration = 3 * time.Hour

	// maxLineOctets is the RFC 5545 content line limit before folding.
	maxLineOctets = 75
)

// Generate serializes events into a single iCalendar document with CRLF line
// endings and folded long lines. Events should already be deduplicated and
// sorted; Generate emits them in the order given. Returns the empty string
// when there are no events.
//
// Output is deterministic: DTSTAMP derives from each event's start rather
// than the wall clock, so identical input produces byte-identical output.
func Generate(events []*event.Event, calName string) string {
	if len(events) == 0 {
		return ""
	}

	var ics strings.Builder

	writeLine(&ics, "BEGIN:VCALENDAR")
	writeLine(&ics, "VERSION:2.0")
	writeLine(&ics, "PRODID:"+ProdID)
	writeLine(&ics, "CALSCALE:GREGORIAN")
	writeLine(&ics, "METHOD:PUBLISH")
	if calName != "" {
		writeLine(&ics, "X-WR-CALNAME:"+escapeICS(calName))
	}
	writeLine(&ics, "X-WR-TIMEZONE:America/New_York")

	for _, evt := range events {
		writeEvent(&ics, evt)
	}

	writeLine(&ics, "END:VCALENDAR")

	return ics.String()
}

// writeEvent emits one VEVENT component.
func writeEvent(ics *strings.Builder, evt *event.Event) {
	writeLine(ics, "BEGIN:VEVENT")
	writeLine(ics, "UID:"+evt.UID)

	// DTSTAMP derives from the event start so reruns stay byte-identical.
	writeLine(ics, "DTSTAMP:"+formatICSTime(evt.Start))

	if evt.AllDay {
		writeLine(ics, "DTSTART;VALUE=DATE:"+formatICSDate(evt.Start))
		writeLine(ics, "DTEND;VALUE=DATE:"+formatICSDate(evt.Start.AddDate(0, 0, 1)))
	} else {
		writeLine(ics, "DTSTART:"+formatICSTime(evt.Start))
		writeLine(ics, "DTEND:"+formatICSTime(evt.Start.Add(EventDuration)))
	}

	writeLine(ics, "SUMMARY:"+escapeICS(evt.Summary()))
	writeLine(ics, "LOCATION:"+escapeICS(evt.Venue.Address))

	var details []string
	if len(evt.Openers) > 0 {
		details = append(details, "With: "+strings.Join(evt.Openers, ", "))
	}
	details = append(details, "Venue: "+evt.Venue.Name)
	if evt.URL != "" {
		details = append(details, "Tickets: "+evt.URL)
	}
	writeLine(ics, "DESCRIPTION:"+escapeICS(strings.Join(details, "\n")))

	if evt.URL != "" {
		writeLine(ics, "URL:"+evt.URL)
	}

	writeLine(ics, "STATUS:CONFIRMED")
	writeLine(ics, "SEQUENCE:0")
	writeLine(ics, "TRANSP:OPAQUE")
	writeLine(ics, "END:VEVENT")
}

// writeLine folds a content line at 75 octets and terminates it with CRLF.
func writeLine(ics *strings.Builder, line string) {
	ics.WriteString(foldLine(line))
	ics.WriteString("\r\n")
}

// foldLine breaks a content line at the RFC 5545 octet limit, continuing on
// the next line after a single space. Folds land on rune boundaries so a
// UTF-8 sequence is never split.
func foldLine(line string) string {
	if len(line) <= maxLineOctets {
		return line
	}

	var b strings.Builder
	budget := maxLineOctets
	for len(line) > budget {
		cut := budget
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		// Continuation lines lose one octet to the leading space.
		budget = maxLineOctets - 1
	}
	b.WriteString(line)
	return b.String()
}

// formatICSTime formats a time as an iCalendar UTC datetime.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatICSDate formats a time as an iCalendar date in the venue timezone.
func formatICSDate(t time.Time) string {
	return t.In(event.Location()).Format("20060102")
}

// escapeICS escapes text values according to RFC 5545: backslash, comma,
// semicolon, and newline.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
