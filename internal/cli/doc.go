// Package cli implements the concerto command-line interface.
//
// The root command runs one event search: it queries the provider for
// the requested location, normalizes and deduplicates the results,
// applies the selected filters, and prints the surviving events as
// text or JSON.
package cli
