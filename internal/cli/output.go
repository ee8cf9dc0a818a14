package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/min-cheng/imp-calendar/internal/event"
)

// OutputFormat specifies the run summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains the run summary to be output
type OutputResult struct {
	GeneratedAt  time.Time      `json:"generated_at"`
	OutputPath   string         `json:"output_path"`
	EventCount   int            `json:"event_count"`
	Events       []*event.Event `json:"events"`
	ByVenue      map[string]int `json:"by_venue"`
	FailedVenues []string       `json:"failed_venues,omitempty"`
}

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the run summary as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the run summary as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	slugs := make([]string, 0, len(result.ByVenue))
	for slug := range result.ByVenue {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		fmt.Fprintf(w, "%s: %d events\n", slug, result.ByVenue[slug])
	}
	for _, slug := range result.FailedVenues {
		fmt.Fprintf(w, "%s: fetch failed\n", slug)
	}

	if verbose {
		for _, evt := range result.Events {
			if evt.AllDay {
				fmt.Fprintf(w, "  %s  %s\n", evt.Start.Format("2006-01-02"), evt.Summary())
			} else {
				fmt.Fprintf(w, "  %s  %s\n", evt.Start.Format("2006-01-02 15:04"), evt.Summary())
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d events across %d venues\n", result.EventCount, len(result.ByVenue))
	fmt.Fprintf(w, "Calendar written to %s\n", result.OutputPath)

	return nil
}
