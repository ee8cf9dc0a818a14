package scraper

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchEvents(t *testing.T) {
	tests := []struct {
		name       string
		htmlBody   string
		statusCode int
		wantError  bool
		wantEvents int
	}{
		{
			name: "successful fetch with events",
			htmlBody: `
				<html><body>
					<div class="events-group__wrapper">
						<div class="date-banner__date">Sat, Sep 12</div>
						<div class="event__content">
							<a href="/tickets/the-national"><h3>The National</h3></a>
							<div class="event__doors">Doors 6:30 pm</div>
						</div>
					</div>
				</body></html>
			`,
			statusCode: http.StatusOK,
			wantError:  false,
			wantEvents: 1,
		},
		{
			name:       "HTTP error",
			htmlBody:   "",
			statusCode: http.StatusNotFound,
			wantError:  true,
		},
		{
			name: "empty page",
			htmlBody: `
				<html><body><p>No shows scheduled</p></body></html>
			`,
			statusCode: http.StatusOK,
			wantError:  false,
			wantEvents: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Verify User-Agent is set
				if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "imp-calendar") {
					t.Errorf("User-Agent = %q, should contain 'imp-calendar'", userAgent)
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.htmlBody))
			}))
			defer server.Close()

			v := testVenue()
			v.URL = server.URL

			s := testScraper()
			events, err := s.FetchEvents(v)

			if tt.wantError {
				if err == nil {
					t.Error("FetchEvents() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("FetchEvents() unexpected error: %v", err)
			}
			if len(events) != tt.wantEvents {
				t.Errorf("FetchEvents() returned %d events, want %d", len(events), tt.wantEvents)
			}
		})
	}
}

func TestFetchEvents_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before the request fires

	v := testVenue()
	v.URL = server.URL

	s := testScraper()
	if _, err := s.FetchEvents(v); err == nil {
		t.Error("FetchEvents() against a closed server should fail")
	}
}
