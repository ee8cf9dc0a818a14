// Package calendar serializes concert events into an iCalendar (RFC 5545)
// document suitable for static hosting and calendar subscriptions.
package calendar
