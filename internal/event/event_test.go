package event

import (
	"strings"
	"testing"
	"time"

	"github.com/min-cheng/imp-calendar/internal/venue"
)

func testVenue() venue.Venue {
	return venue.Venue{
		Slug:    "930-club",
		Name:    "9:30 Club",
		Address: "815 V St NW, Washington, DC 20001",
		URL:     "https://www.930.com/",
	}
}

func TestGenerateUID_Deterministic(t *testing.T) {
	start := time.Date(2026, time.September, 12, 18, 30, 0, 0, Location())

	uid1 := GenerateUID("930-club", "The National", start)
	uid2 := GenerateUID("930-club", "The National", start)

	if uid1 != uid2 {
		t.Errorf("GenerateUID not deterministic: %q != %q", uid1, uid2)
	}

	if !strings.HasSuffix(uid1, "@impconcerts.com") {
		t.Errorf("UID %q missing @impconcerts.com suffix", uid1)
	}
}

func TestGenerateUID_DiffersByTriple(t *testing.T) {
	start := time.Date(2026, time.September, 12, 18, 30, 0, 0, Location())
	base := GenerateUID("930-club", "The National", start)

	if GenerateUID("the-anthem", "The National", start) == base {
		t.Error("UID should change with venue")
	}
	if GenerateUID("930-club", "The Antlers", start) == base {
		t.Error("UID should change with title")
	}
	if GenerateUID("930-club", "The National", start.Add(time.Hour)) == base {
		t.Error("UID should change with start time")
	}
}

func TestNew_UIDIgnoresTicketLink(t *testing.T) {
	v := testVenue()
	start := time.Date(2026, time.September, 12, 18, 30, 0, 0, Location())

	a := New(v, "The National", nil, start, false, "https://tickets.example.com/a")
	b := New(v, "The National", nil, start, false, "https://tickets.example.com/b")

	if a.UID != b.UID {
		t.Errorf("UID should not depend on the ticket link: %q != %q", a.UID, b.UID)
	}
}

func TestDedupe(t *testing.T) {
	v := testVenue()
	start := time.Date(2026, time.September, 12, 18, 30, 0, 0, Location())

	first := New(v, "The National", nil, start, false, "https://tickets.example.com/first")
	duplicate := New(v, "The National", nil, start, false, "https://tickets.example.com/second")
	other := New(v, "Big Thief", nil, start.Add(24*time.Hour), false, "")

	unique := Dedupe([]*Event{first, duplicate, other})

	if len(unique) != 2 {
		t.Fatalf("Dedupe() returned %d events, want 2", len(unique))
	}
	if unique[0] != first {
		t.Error("Dedupe() should keep the first occurrence")
	}
	if unique[1] != other {
		t.Error("Dedupe() dropped a non-duplicate event")
	}
}

func TestSortByStart(t *testing.T) {
	v := testVenue()
	sep12 := time.Date(2026, time.September, 12, 18, 30, 0, 0, Location())
	sep10 := time.Date(2026, time.September, 10, 20, 0, 0, 0, Location())

	events := []*Event{
		New(v, "Zeta", nil, sep12, false, ""),
		New(v, "Alpha", nil, sep12, false, ""),
		New(v, "Later Alphabetically First", nil, sep10, false, ""),
	}

	SortByStart(events)

	if events[0].Title != "Later Alphabetically First" {
		t.Errorf("events[0] = %q, want earliest start first", events[0].Title)
	}
	if events[1].Title != "Alpha" || events[2].Title != "Zeta" {
		t.Errorf("equal starts should order by title, got %q then %q",
			events[1].Title, events[2].Title)
	}
}

func TestSummary(t *testing.T) {
	v := testVenue()
	start := time.Date(2026, time.September, 12, 18, 30, 0, 0, Location())

	tests := []struct {
		name    string
		openers []string
		want    string
	}{
		{
			name: "headliner only",
			want: "The National at 9:30 Club",
		},
		{
			name:    "with openers",
			openers: []string{"Big Thief", "Soccer Mommy"},
			want:    "The National (with Big Thief, Soccer Mommy) at 9:30 Club",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := New(v, "The National", tt.openers, start, false, "")
			if got := evt.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
