// Package filter applies user-selected search criteria to a normalized
// event list.
//
// Criteria live in an explicit SearchFilters value so the pipeline is a
// pure function over its inputs; there is no selection state anywhere
// else. Stages run in a fixed order: exact date, the active category's
// sub-tag filters, then the generic time-of-day and price buckets.
//
// Missing-data policy differs per stage and is deliberate: genre
// matching is fail-open (see classify), price and time buckets are
// fail-closed — an event with no known price never claims to be free.
package filter
