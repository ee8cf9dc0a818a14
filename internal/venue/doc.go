// Package venue defines the fixed set of IMP venues whose concert listings
// are scraped.
//
// Each venue carries a stable slug, a display name, a street address, and the
// URL of its public listing page. The set is compile-time configuration; the
// scraper never discovers venues dynamically.
package venue
