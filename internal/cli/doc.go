// Package cli implements the command-line interface for imp-calendar.
//
// The cli package provides the Cobra-based CLI that runs the scrape pipeline:
// fetch each configured venue's listing page, extract and normalize events,
// deduplicate and sort them, serialize the iCalendar document, and write it
// to the output path. It reports a run summary in text or JSON form.
package cli
