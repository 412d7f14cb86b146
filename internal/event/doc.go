// Package event provides the normalized event model shared by the
// classification and filtering layers.
//
// Events are produced once per search from provider records, never
// mutated afterwards, and discarded with the result set. The package
// also handles deduplication by identity key, since the provider
// routinely returns the same event more than once per page.
package event
