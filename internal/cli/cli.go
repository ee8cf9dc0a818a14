package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/min-cheng/imp-calendar/internal/calendar"
	"github.com/min-cheng/imp-calendar/internal/event"
	"github.com/min-cheng/imp-calendar/internal/logger"
	"github.com/min-cheng/imp-calendar/internal/output"
	"github.com/min-cheng/imp-calendar/internal/scraper"
	"github.com/min-cheng/imp-calendar/internal/venue"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagVenue   string
	flagOutput  string
	flagCalName string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imp-calendar",
		Short: "Generate an iCalendar feed of IMP venue concerts",
		Long: `Scrapes the concert listings of the configured IMP venues and writes a
single iCalendar (.ics) document for static hosting. Each run fully
replaces the previous file; UIDs are stable across runs so subscribed
calendars update in place.`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVar(&flagVenue, "venue", "all",
		fmt.Sprintf("Venue slug (%s) or 'all'", strings.Join(venue.Slugs(), ", ")))
	cmd.Flags().StringVar(&flagOutput, "output", output.DefaultPath, "Path of the calendar file to write")
	cmd.Flags().StringVar(&flagCalName, "calendar-name", "IMP Concerts", "Calendar display name (X-WR-CALNAME)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run summary format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runGenerate is the main command logic
func runGenerate(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	venues, err := selectVenues(flagVenue)
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutput)
	if err != nil {
		return fmt.Errorf("initializing output: %w", err)
	}

	sc := scraper.New()

	all := make([]*event.Event, 0)
	byVenue := make(map[string]int, len(venues))
	failed := make([]string, 0)

	for _, v := range venues {
		logger.Debug("fetching venue listings", logger.Fields{
			"venue": v.Slug,
			"url":   v.URL,
		})

		start := time.Now()
		events, err := sc.FetchEvents(v)
		logger.RecordTiming("scrape.fetch", time.Since(start))

		if err != nil {
			// A failed venue never fabricates events; skip it and keep going.
			logger.Error("venue fetch failed, skipping", logger.Fields{
				"venue": v.Slug,
				"url":   v.URL,
			}, err)
			failed = append(failed, v.Slug)
			continue
		}

		if len(events) == 0 {
			logger.Warn("no events found for venue", logger.Fields{
				"venue": v.Slug,
			})
		} else {
			logger.Info("venue scraped", logger.Fields{
				"venue":  v.Slug,
				"events": len(events),
			})
		}

		byVenue[v.Slug] = len(events)
		all = append(all, events...)
	}

	// Cross-venue dedupe and deterministic ordering before serialization.
	all = event.Dedupe(all)
	event.SortByStart(all)
	logger.SetGauge("run.events_total", float64(len(all)))

	if len(all) == 0 {
		return fmt.Errorf("no events produced (%d of %d venues failed)", len(failed), len(venues))
	}

	document := calendar.Generate(all, flagCalName)
	if err := writer.Write(document); err != nil {
		return err
	}

	logger.Info("calendar written", logger.Fields{
		"path":   writer.Path(),
		"events": len(all),
	})

	result := &OutputResult{
		GeneratedAt:  time.Now().UTC(),
		OutputPath:   writer.Path(),
		EventCount:   len(all),
		Events:       all,
		ByVenue:      byVenue,
		FailedVenues: failed,
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagVerbose {
		logger.Debug("run metrics", logger.Fields(logger.GetMetricsSnapshot()))
	}

	return nil
}

// selectVenues resolves the --venue flag to the venues to scrape.
func selectVenues(flag string) ([]venue.Venue, error) {
	slug := strings.ToLower(strings.TrimSpace(flag))
	if slug == "" || slug == "all" {
		return venue.All(), nil
	}
	v, err := venue.BySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("%w (valid: %s, all)", err, strings.Join(venue.Slugs(), ", "))
	}
	return []venue.Venue{v}, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
