package ticketmaster

import (
	"strings"

	"github.com/concerto-events/concerto/internal/event"
)

// startTimeTBD marks an announced event whose date is not decided yet.
// Clients render it as-is; the date and time filters treat it as
// unknown.
const startTimeTBD = "TBD"

// Normalize converts a raw provider record into the internal event
// model. Missing or malformed fields degrade to empty/nil; it never
// fails on a single bad record.
func Normalize(raw RawEvent) *event.Event {
	evt := &event.Event{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: description(raw),
		URL:         raw.URL,
		ImageURL:    firstImageURL(raw.Images),
		Venue:       normalizeVenue(raw.Embedded),
		GenreHints:  genreHints(raw.Classifications),
	}

	evt.StartDateTime, evt.LocalDate, evt.LocalTime = startFields(raw.Dates)

	if len(raw.PriceRanges) > 0 {
		min := raw.PriceRanges[0].Min
		max := raw.PriceRanges[0].Max
		evt.PriceMin = &min
		evt.PriceMax = &max
	}

	return evt
}

// NormalizeAll maps a raw batch into normalized events, preserving
// order.
func NormalizeAll(raws []RawEvent) []*event.Event {
	events := make([]*event.Event, 0, len(raws))
	for _, raw := range raws {
		events = append(events, Normalize(raw))
	}
	return events
}

// description concatenates every free-text field the provider sends
// (info, description, pleaseNote). Keyword matching scans all of them;
// a keyword that only appears in pleaseNote must still count.
func description(raw RawEvent) string {
	chunks := make([]string, 0, 3)
	for _, s := range []string{raw.Info, raw.Description, raw.PleaseNote} {
		if s != "" {
			chunks = append(chunks, s)
		}
	}
	return strings.Join(chunks, " | ")
}

// startFields derives the combined timestamp plus the date-only and
// time-only parts. Precedence for the timestamp: explicit dateTime,
// else "TBD" when the provider flags the date as undecided, else
// localDate combined with localTime (midnight when the time is
// unknown), else empty. The split parts come from the local fields
// when present and are cut out of dateTime otherwise.
func startFields(dates *Dates) (dateTime, localDate, localTime string) {
	if dates == nil || dates.Start == nil {
		return "", "", ""
	}
	start := dates.Start

	localDate = start.LocalDate
	localTime = start.LocalTime

	if start.DateTime != "" {
		dateTime = start.DateTime
		if localDate == "" && len(start.DateTime) >= 10 {
			localDate = start.DateTime[:10]
		}
		if localTime == "" {
			if _, rest, found := strings.Cut(start.DateTime, "T"); found && len(rest) >= 8 {
				localTime = rest[:8]
			}
		}
		return dateTime, localDate, localTime
	}

	if start.DateTBD {
		return startTimeTBD, localDate, localTime
	}

	if localDate != "" {
		t := localTime
		if t == "" {
			t = "00:00:00"
		}
		dateTime = localDate + "T" + t
	}
	return dateTime, localDate, localTime
}

// firstImageURL picks the first image entry that has a URL.
func firstImageURL(images []Image) string {
	for _, img := range images {
		if img.URL != "" {
			return img.URL
		}
	}
	return ""
}

// genreHints lowercases up to three levels of the first classification
// (segment, genre, sub-genre), keeping only the levels present. Used
// for genre matching only, never displayed.
func genreHints(classifications []Classification) []string {
	if len(classifications) == 0 {
		return nil
	}
	c := classifications[0]

	var hints []string
	for _, ref := range []*NamedRef{c.Segment, c.Genre, c.SubGenre} {
		if ref != nil && ref.Name != "" {
			hints = append(hints, strings.ToLower(ref.Name))
		}
	}
	return hints
}

// normalizeVenue flattens the first embedded venue. A record without a
// venue yields nil, which downstream renders as "Venue TBA".
func normalizeVenue(embedded *EventEmbedded) *event.Venue {
	if embedded == nil || len(embedded.Venues) == 0 {
		return nil
	}
	raw := embedded.Venues[0]

	venue := &event.Venue{
		Name:       raw.Name,
		PostalCode: raw.PostalCode,
	}
	if raw.Address != nil {
		venue.Address1 = raw.Address.Line1
	}
	if raw.City != nil {
		venue.City = raw.City.Name
	}
	if raw.State != nil {
		venue.State = raw.State.StateCode
	}
	if raw.Country != nil {
		venue.Country = raw.Country.CountryCode
	}
	return venue
}
