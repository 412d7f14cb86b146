package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/concerto-events/concerto/internal/classify"
	"github.com/concerto-events/concerto/internal/event"
)

// TimeBucket is a coarse time-of-day selection.
type TimeBucket string

const (
	TimeAny       TimeBucket = "any"
	TimeAfternoon TimeBucket = "afternoon" // before 18:00
	TimeEvening   TimeBucket = "evening"   // 18:00 through 20:59
	TimeLateNight TimeBucket = "latenight" // 21:00 onward
)

const eveningStartHour, lateNightStartHour = 18, 21

// ParseTimeBucket validates a time-bucket string.
func ParseTimeBucket(s string) (TimeBucket, error) {
	switch b := TimeBucket(s); b {
	case TimeAny, TimeAfternoon, TimeEvening, TimeLateNight:
		return b, nil
	default:
		return "", fmt.Errorf("unknown time bucket: %q", s)
	}
}

// PriceBucket is a coarse minimum-price selection.
type PriceBucket string

const (
	PriceAny     PriceBucket = "any"
	PriceFree    PriceBucket = "free"    // min price exactly 0
	PriceUnder20 PriceBucket = "under20" // 0 < min <= 20
	PriceUnder50 PriceBucket = "under50" // 0 < min <= 50
)

// ParsePriceBucket validates a price-bucket string.
func ParsePriceBucket(s string) (PriceBucket, error) {
	switch b := PriceBucket(s); b {
	case PriceAny, PriceFree, PriceUnder20, PriceUnder50:
		return b, nil
	default:
		return "", fmt.Errorf("unknown price bucket: %q", s)
	}
}

// SearchFilters holds every criterion of one search. The zero value
// (with a Category set) restricts nothing.
type SearchFilters struct {
	// Date keeps only events on this exact local date ("YYYY-MM-DD");
	// empty means any date.
	Date string

	// Category selects which sub-tag filters apply.
	Category classify.Category

	// SubTags is the selected sub-tag set for the active category.
	// Empty means no restriction.
	SubTags classify.SubTagSet

	// VenueSize applies to music searches only.
	VenueSize classify.VenueSize

	// Level applies to sports searches only.
	Level classify.Level

	TimeOfDay TimeBucket
	Price     PriceBucket
}

// IsEmpty reports whether the filters would pass every event.
func (f *SearchFilters) IsEmpty() bool {
	return f.Date == "" &&
		len(f.SubTags) == 0 &&
		(f.VenueSize == "" || f.VenueSize == classify.VenueAny) &&
		(f.Level == "" || f.Level == classify.LevelAny) &&
		(f.TimeOfDay == "" || f.TimeOfDay == TimeAny) &&
		(f.Price == "" || f.Price == PriceAny)
}

// Apply runs the filter pipeline over a normalized, deduplicated event
// list and returns the survivors. The input is never mutated.
func (f *SearchFilters) Apply(events []*event.Event) []*event.Event {
	if f.IsEmpty() {
		return events
	}

	out := events
	out = f.applyDate(out)
	out = f.applyCategory(out)
	out = f.applyTimeOfDay(out)
	out = f.applyPrice(out)
	return out
}

func (f *SearchFilters) applyDate(events []*event.Event) []*event.Event {
	if f.Date == "" || len(events) == 0 {
		return events
	}
	return keep(events, func(e *event.Event) bool {
		return e.LocalDate == f.Date
	})
}

func (f *SearchFilters) applyCategory(events []*event.Event) []*event.Event {
	if len(events) == 0 {
		return events
	}

	if len(f.SubTags) > 0 {
		events = keep(events, func(e *event.Event) bool {
			return classify.Matches(e, f.Category, f.SubTags)
		})
	}

	switch f.Category {
	case classify.Music:
		if f.VenueSize != "" && f.VenueSize != classify.VenueAny {
			events = keep(events, func(e *event.Event) bool {
				return classify.VenueSizeOf(e) == f.VenueSize
			})
		}
	case classify.Sports:
		if f.Level != "" && f.Level != classify.LevelAny {
			events = keep(events, func(e *event.Event) bool {
				return classify.MatchesLevel(e, f.Level)
			})
		}
	}
	return events
}

func (f *SearchFilters) applyTimeOfDay(events []*event.Event) []*event.Event {
	if f.TimeOfDay == "" || f.TimeOfDay == TimeAny || len(events) == 0 {
		return events
	}
	return keep(events, func(e *event.Event) bool {
		hour, ok := e.StartHour()
		if !ok {
			// Unknown start time fails every bucket, same policy as
			// unknown price.
			return false
		}
		switch f.TimeOfDay {
		case TimeAfternoon:
			return hour < eveningStartHour
		case TimeEvening:
			return hour >= eveningStartHour && hour < lateNightStartHour
		case TimeLateNight:
			return hour >= lateNightStartHour
		default:
			return true
		}
	})
}

func (f *SearchFilters) applyPrice(events []*event.Event) []*event.Event {
	if f.Price == "" || f.Price == PriceAny || len(events) == 0 {
		return events
	}
	return keep(events, func(e *event.Event) bool {
		if e.PriceMin == nil {
			return false
		}
		min := *e.PriceMin
		switch f.Price {
		case PriceFree:
			return min == 0
		case PriceUnder20:
			return min > 0 && min <= 20
		case PriceUnder50:
			return min > 0 && min <= 50
		default:
			return true
		}
	})
}

// String returns a human-readable description of the active criteria,
// for verbose output.
func (f *SearchFilters) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string
	if f.Date != "" {
		parts = append(parts, fmt.Sprintf("Date: %s", f.Date))
	}
	if len(f.SubTags) > 0 {
		tags := make([]string, 0, len(f.SubTags))
		for tag := range f.SubTags {
			tags = append(tags, string(tag))
		}
		sort.Strings(tags)
		parts = append(parts, fmt.Sprintf("%s: %s", f.Category.Label(), strings.Join(tags, ", ")))
	}
	if f.VenueSize != "" && f.VenueSize != classify.VenueAny {
		parts = append(parts, fmt.Sprintf("Venue size: %s", f.VenueSize))
	}
	if f.Level != "" && f.Level != classify.LevelAny {
		parts = append(parts, fmt.Sprintf("Level: %s", f.Level))
	}
	if f.TimeOfDay != "" && f.TimeOfDay != TimeAny {
		parts = append(parts, fmt.Sprintf("Time: %s", f.TimeOfDay))
	}
	if f.Price != "" && f.Price != PriceAny {
		parts = append(parts, fmt.Sprintf("Price: %s", f.Price))
	}
	return strings.Join(parts, " | ")
}

// keep filters a slice without mutating it.
func keep(events []*event.Event, pred func(*event.Event) bool) []*event.Event {
	filtered := make([]*event.Event, 0, len(events))
	for _, evt := range events {
		if pred(evt) {
			filtered = append(filtered, evt)
		}
	}
	return filtered
}
