package event

import (
	"strconv"
	"strings"
)

// Event is the canonical internal representation of a provider event.
// String fields use "" for unknown; price fields use nil so that a
// free (0.00) ticket stays distinguishable from an unpriced one.
type Event struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	StartDateTime string   `json:"time_start,omitempty"`
	LocalDate     string   `json:"local_date,omitempty"`
	LocalTime     string   `json:"local_time,omitempty"`
	URL           string   `json:"url,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Venue         *Venue   `json:"venue,omitempty"`
	PriceMin      *float64 `json:"price_min,omitempty"`
	PriceMax      *float64 `json:"price_max,omitempty"`
	GenreHints    []string `json:"genre_hints,omitempty"`
}

// Venue holds the location details we keep from the provider's nested
// venue record. All fields are optional.
type Venue struct {
	Name       string `json:"name,omitempty"`
	Address1   string `json:"address1,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// VenueName returns the venue name, or "" when the venue is unknown.
// Callers render missing venues as "Venue TBA".
func (e *Event) VenueName() string {
	if e.Venue == nil {
		return ""
	}
	return e.Venue.Name
}

// TextBlob returns the lower-cased concatenation of the event's
// free-text fields, optionally with the venue name appended. This is
// the search surface for keyword classification. Description already
// carries all of the provider's free text (info, description, and
// please-note), concatenated during normalization.
func (e *Event) TextBlob(includeVenue bool) string {
	chunks := make([]string, 0, 3)
	if e.Name != "" {
		chunks = append(chunks, e.Name)
	}
	if e.Description != "" {
		chunks = append(chunks, e.Description)
	}
	if includeVenue {
		if name := e.VenueName(); name != "" {
			chunks = append(chunks, name)
		}
	}
	return strings.ToLower(strings.Join(chunks, " | "))
}

// StartHour returns the hour component of the event's local time
// ("HH:MM:SS"). The second return value is false when the time is
// unknown or malformed.
func (e *Event) StartHour() (int, bool) {
	if len(e.LocalTime) < 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(e.LocalTime[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
