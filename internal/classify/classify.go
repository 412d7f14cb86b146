package classify

import (
	"strings"

	"github.com/concerto-events/concerto/internal/event"
)

// Matches reports whether the event passes the category's sub-tag
// selection. An empty selection passes every event (no restriction,
// not "match nothing").
func Matches(evt *event.Event, category Category, selected SubTagSet) bool {
	if len(selected) == 0 {
		return true
	}

	switch category {
	case Music:
		return matchesGenre(evt, selected)
	case Sports:
		return matchesSport(evt, selected)
	case Nightlife, Family:
		// Venue names carry most of the signal for these categories
		// ("Rooftop Bar", "Kids Zone Pavilion").
		return matchesSelectedOnly(evt.TextBlob(true), keywordTables[category], selected)
	default:
		return matchesAnyMatched(evt.TextBlob(false), keywordTables[category], selected)
	}
}

// matchesGenre checks the selected genres against the provider's
// classification hints only, never free text. Events without hints
// pass: incomplete provider metadata must not hide an event.
func matchesGenre(evt *event.Event, selected SubTagSet) bool {
	if len(evt.GenreHints) == 0 {
		return true
	}
	hints := strings.Join(evt.GenreHints, " | ")
	for tag := range selected {
		for _, kw := range genreKeywords[tag] {
			if strings.Contains(hints, kw) {
				return true
			}
		}
	}
	return false
}

// matchesSport handles the "other" complement: an event matches
// "other" only when no defined sport keyword set matches its text.
func matchesSport(evt *event.Event, selected SubTagSet) bool {
	text := evt.TextBlob(false)

	matchesAnySelected := false
	matchesAnyDefined := false

	for tag, keywords := range sportKeywords {
		if !containsAny(text, keywords) {
			continue
		}
		matchesAnyDefined = true
		if selected.Has(tag) {
			matchesAnySelected = true
		}
	}

	if selected.Has(SportOther) && !matchesAnyDefined {
		return true
	}
	return matchesAnySelected
}

// matchesAnyMatched passes when any sub-tag whose keywords appear in
// the text is also selected.
func matchesAnyMatched(text string, table map[SubTag][]string, selected SubTagSet) bool {
	for tag, keywords := range table {
		if selected.Has(tag) && containsAny(text, keywords) {
			return true
		}
	}
	return false
}

// matchesSelectedOnly scans only the selected sub-tags' keyword lists.
func matchesSelectedOnly(text string, table map[SubTag][]string, selected SubTagSet) bool {
	for tag := range selected {
		if containsAny(text, table[tag]) {
			return true
		}
	}
	return false
}

// MatchesLevel checks the sports competition level against the text
// blob. LevelAny passes everything.
func MatchesLevel(evt *event.Event, level Level) bool {
	if level == LevelAny || level == "" {
		return true
	}
	return containsAny(evt.TextBlob(false), levelKeywords[level])
}

// VenueSizeOf tags an event's venue as small, mid, or big from its
// name. Small requires a small-venue keyword and no big-venue keyword;
// big requires the reverse. Names matching both sets ("The Tavern
// Arena") and unknown venues fall back to mid.
func VenueSizeOf(evt *event.Event) VenueSize {
	name := strings.ToLower(evt.VenueName())
	if name == "" {
		return VenueMid
	}

	hasSmall := containsAny(name, smallVenueKeywords)
	hasBig := containsAny(name, bigVenueKeywords)

	switch {
	case hasSmall && !hasBig:
		return VenueSmall
	case hasBig && !hasSmall:
		return VenueBig
	default:
		return VenueMid
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
