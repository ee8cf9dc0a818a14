// Package scraper provides HTTP fetching and HTML parsing for IMP venue
// concert listings.
//
// The scraper fetches a venue's public listing page and extracts one event
// per listing element: headliner, openers, doors time, and ticket link,
// grouped under date banners. Listings missing a title or a parseable date
// are skipped with a warning rather than failing the page.
package scraper
