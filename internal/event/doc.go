// Package event provides the concert event model used across the pipeline.
//
// The event package handles event representation, identification, and
// normalization. Each event is assigned a deterministic SHA-1 name-based UUID
// derived from its venue, title, and start time, so repeated runs regenerate
// the same identifier for the same show and calendar applications update
// entries instead of duplicating them.
package event
