package venue

import "fmt"

// Venue is one of the fixed physical locations whose listings are scraped.
type Venue struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Address string `json:"address"`
	URL     string `json:"url"`
}

// venues is the fixed venue set. Slugs are stable identifiers and feed
// event UIDs; changing one changes every UID for that venue.
var venues = []Venue{
	{
		Slug:    "930-club",
		Name:    "9:30 Club",
		Address: "815 V St NW, Washington, DC 20001",
		URL:     "https://www.930.com/",
	},
	{
		Slug:    "lincoln-theatre",
		Name:    "Lincoln Theatre",
		Address: "1215 U St NW, Washington, DC 20009",
		URL:     "https://www.thelincolndc.com/",
	},
	{
		Slug:    "the-anthem",
		Name:    "The Anthem",
		Address: "901 Wharf St SW, Washington, DC 20024",
		URL:     "https://www.theanthemdc.com/",
	},
	{
		Slug:    "the-atlantis",
		Name:    "The Atlantis",
		Address: "1814 Half St SW, Washington, DC 20024",
		URL:     "https://www.theatlantis.com/",
	},
}

// All returns the configured venues in a fresh slice.
func All() []Venue {
	out := make([]Venue, len(venues))
	copy(out, venues)
	return out
}

// BySlug looks up a venue by its slug.
func BySlug(slug string) (Venue, error) {
	for _, v := range venues {
		if v.Slug == slug {
			return v, nil
		}
	}
	return Venue{}, fmt.Errorf("unknown venue: %s", slug)
}

// Slugs returns the slugs of all configured venues, in configuration order.
func Slugs() []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.Slug)
	}
	return out
}
