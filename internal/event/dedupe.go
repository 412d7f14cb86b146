package event

import "strings"

// keyDelimiter separates the parts of a fallback identity key. The
// unit separator never appears in event names or venue names, unlike
// "|" or ",".
const keyDelimiter = "\x1f"

// Key returns the identity key used for deduplication: the provider ID
// when present, otherwise a composite of name, local date, and venue
// name.
func Key(e *Event) string {
	if e.ID != "" {
		return e.ID
	}
	return strings.TrimSpace(e.Name) + keyDelimiter + e.LocalDate + keyDelimiter + strings.TrimSpace(e.VenueName())
}

// Dedupe removes repeated events, keeping the first occurrence of each
// identity key and preserving input order. Calling it twice yields the
// same result as calling it once.
func Dedupe(events []*Event) []*Event {
	seen := make(map[string]bool, len(events))
	unique := make([]*Event, 0, len(events))
	for _, evt := range events {
		key := Key(evt)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, evt)
		}
	}
	return unique
}
