package scraper

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/min-cheng/imp-calendar/internal/event"
	"github.com/min-cheng/imp-calendar/internal/logger"
	"github.com/min-cheng/imp-calendar/internal/venue"
)

const (
	UserAgent = "imp-calendar/1.0 (github.com/min-cheng/imp-calendar)"
	Timeout   = 30 * time.Second
)

// Selectors for the listing page structure shared by the IMP venue sites.
const (
	groupSelector   = ".events-group__wrapper"
	dateSelector    = ".date-banner__date"
	listingSelector = ".event__content"
	doorsSelector   = ".event__doors"
)

// Scraper fetches and parses concert listings for IMP venues.
type Scraper struct {
	client *http.Client
	now    func() time.Time
}

// New creates a new Scraper instance.
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		now: time.Now,
	}
}

// FetchEvents fetches a venue's listing page and parses all events on it.
func (s *Scraper) FetchEvents(v venue.Venue) ([]*event.Event, error) {
	req, err := http.NewRequest("GET", v.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseEvents(resp.Body, v)
}

// parseEvents extracts events from a venue's listing HTML. Listings missing
// a title or a parseable date are dropped, never fatal.
func (s *Scraper) parseEvents(r io.Reader, v venue.Venue) ([]*event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	now := s.now()
	events := make([]*event.Event, 0)

	doc.Find(groupSelector).Each(func(i int, group *goquery.Selection) {
		dateText := strings.TrimSpace(group.Find(dateSelector).First().Text())
		if dateText == "" {
			logger.Warn("skipping listing group without a date banner", logger.Fields{
				"venue": v.Slug,
			})
			logger.IncrCounter("scrape.listings_skipped")
			return
		}

		day := event.ParseDate(dateText, now)
		if day.IsZero() {
			logger.Warn("skipping listing group with unparseable date", logger.Fields{
				"venue": v.Slug,
				"date":  dateText,
			})
			logger.IncrCounter("scrape.listings_skipped")
			return
		}

		group.Find(listingSelector).Each(func(j int, listing *goquery.Selection) {
			evt := s.parseListing(listing, v, day)
			if evt == nil {
				logger.IncrCounter("scrape.listings_skipped")
				return
			}
			events = append(events, evt)
			logger.IncrCounter("scrape.listings_parsed")
		})
	})

	return event.Dedupe(events), nil
}

// parseListing extracts one event from a listing element. Returns nil when
// the listing has no title.
func (s *Scraper) parseListing(listing *goquery.Selection, v venue.Venue, day time.Time) *event.Event {
	title := strings.TrimSpace(listing.Find("h3").First().Text())
	if title == "" {
		logger.Warn("skipping listing without a headliner", logger.Fields{
			"venue": v.Slug,
			"date":  day.Format("2006-01-02"),
		})
		return nil
	}

	url := ""
	if href, ok := listing.Find("a[href]").First().Attr("href"); ok {
		url = strings.TrimSpace(href)
	}

	openers := splitOpeners(listing.Find("h4").First().Text())
	doorsText := listing.Find(doorsSelector).First().Text()
	start, allDay := event.Start(day, doorsText)

	return event.New(v, title, openers, start, allDay, url)
}

// openerSeparators splits a support-act line like "Act One • Act Two & Act Three".
var openerSeparators = regexp.MustCompile(`[•,&]`)

// splitOpeners parses the support-act line into individual act names.
func splitOpeners(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	parts := openerSeparators.Split(text, -1)
	openers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			openers = append(openers, p)
		}
	}
	if len(openers) == 0 {
		return nil
	}
	return openers
}
