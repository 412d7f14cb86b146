// Package ticketmaster adapts the Ticketmaster Discovery API.
//
// It exposes a typed view of the provider's event records (RawEvent and
// friends, with optional nesting made explicit through pointers), a
// client for the events and venues endpoints, and the normalizer that
// converts raw records into the internal event model. All "missing
// field becomes empty/nil" degradation happens here so downstream
// packages never touch provider quirks.
package ticketmaster
