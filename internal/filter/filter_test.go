package filter

import (
	"testing"

	"github.com/concerto-events/concerto/internal/classify"
	"github.com/concerto-events/concerto/internal/event"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestSearchFilters_IsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		filters *SearchFilters
		want    bool
	}{
		{
			name:    "zero value",
			filters: &SearchFilters{Category: classify.Music},
			want:    true,
		},
		{
			name:    "explicit any values",
			filters: &SearchFilters{Category: classify.Music, VenueSize: classify.VenueAny, TimeOfDay: TimeAny, Price: PriceAny},
			want:    true,
		},
		{
			name:    "date set",
			filters: &SearchFilters{Date: "2024-06-01"},
			want:    false,
		},
		{
			name:    "sub-tags set",
			filters: &SearchFilters{Category: classify.Music, SubTags: classify.NewSubTagSet("jazz")},
			want:    false,
		},
		{
			name:    "price bucket set",
			filters: &SearchFilters{Price: PriceFree},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearchFilters_Apply_Date(t *testing.T) {
	events := []*event.Event{
		{ID: "1", LocalDate: "2024-06-01"},
		{ID: "2", LocalDate: "2024-06-02"},
		{ID: "3"}, // unknown date
	}

	f := &SearchFilters{Category: classify.Music, Date: "2024-06-01"}
	got := f.Apply(events)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Apply() = %v events, want exactly event 1", ids(got))
	}
}

func TestSearchFilters_Apply_EmptyPassesAll(t *testing.T) {
	events := []*event.Event{{ID: "1"}, {ID: "2"}}
	f := &SearchFilters{Category: classify.Music}
	got := f.Apply(events)
	if len(got) != 2 {
		t.Errorf("Apply() with empty filters returned %d events, want 2", len(got))
	}
}

func TestSearchFilters_Apply_PriceBuckets(t *testing.T) {
	events := []*event.Event{
		{ID: "free", PriceMin: floatPtr(0)},
		{ID: "cheap", PriceMin: floatPtr(15)},
		{ID: "mid", PriceMin: floatPtr(45)},
		{ID: "unknown"},
	}

	tests := []struct {
		bucket  PriceBucket
		wantIDs []string
	}{
		{PriceFree, []string{"free"}},
		{PriceUnder20, []string{"cheap"}},
		{PriceUnder50, []string{"cheap", "mid"}},
		{PriceAny, []string{"free", "cheap", "mid", "unknown"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			f := &SearchFilters{Category: classify.Music, Price: tt.bucket}
			got := ids(f.Apply(events))
			if !equalStrings(got, tt.wantIDs) {
				t.Errorf("Apply(price=%s) = %v, want %v", tt.bucket, got, tt.wantIDs)
			}
		})
	}
}

func TestSearchFilters_Apply_UnknownPriceFailsClosed(t *testing.T) {
	unpriced := []*event.Event{{ID: "unknown"}}
	for _, bucket := range []PriceBucket{PriceFree, PriceUnder20, PriceUnder50} {
		f := &SearchFilters{Category: classify.Music, Price: bucket}
		if got := f.Apply(unpriced); len(got) != 0 {
			t.Errorf("Apply(price=%s) kept unpriced event, want excluded", bucket)
		}
	}
}

func TestSearchFilters_Apply_TimeBuckets(t *testing.T) {
	events := []*event.Event{
		{ID: "matinee", LocalTime: "14:00:00"},
		{ID: "dinner", LocalTime: "19:30:00"},
		{ID: "edge", LocalTime: "20:59:00"},
		{ID: "late", LocalTime: "21:00:00"},
		{ID: "tba"},
	}

	tests := []struct {
		bucket  TimeBucket
		wantIDs []string
	}{
		{TimeAfternoon, []string{"matinee"}},
		{TimeEvening, []string{"dinner", "edge"}},
		{TimeLateNight, []string{"late"}},
		{TimeAny, []string{"matinee", "dinner", "edge", "late", "tba"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			f := &SearchFilters{Category: classify.Music, TimeOfDay: tt.bucket}
			got := ids(f.Apply(events))
			if !equalStrings(got, tt.wantIDs) {
				t.Errorf("Apply(time=%s) = %v, want %v", tt.bucket, got, tt.wantIDs)
			}
		})
	}
}

func TestSearchFilters_Apply_CategorySubTags(t *testing.T) {
	jazz := &event.Event{ID: "jazz", GenreHints: []string{"music", "jazz"}}
	country := &event.Event{ID: "country", GenreHints: []string{"music", "country"}}
	unknown := &event.Event{ID: "unknown"}

	f := &SearchFilters{
		Category: classify.Music,
		SubTags:  classify.NewSubTagSet("jazz"),
	}
	got := ids(f.Apply([]*event.Event{jazz, country, unknown}))

	// The hint-less event survives: genre matching is fail-open.
	want := []string{"jazz", "unknown"}
	if !equalStrings(got, want) {
		t.Errorf("Apply(genre=jazz) = %v, want %v", got, want)
	}
}

func TestSearchFilters_Apply_VenueSizeOnlyForMusic(t *testing.T) {
	smallShow := &event.Event{ID: "small", Venue: &event.Venue{Name: "The Basement Bar"}}
	bigShow := &event.Event{ID: "big", Venue: &event.Venue{Name: "Memorial Stadium"}}

	music := &SearchFilters{Category: classify.Music, VenueSize: classify.VenueSmall}
	got := ids(music.Apply([]*event.Event{smallShow, bigShow}))
	if !equalStrings(got, []string{"small"}) {
		t.Errorf("Apply(music, venue=small) = %v, want [small]", got)
	}

	// Venue size is a music-only refinement; other categories ignore it.
	comedy := &SearchFilters{Category: classify.Comedy, VenueSize: classify.VenueSmall}
	got = ids(comedy.Apply([]*event.Event{smallShow, bigShow}))
	if !equalStrings(got, []string{"small", "big"}) {
		t.Errorf("Apply(comedy, venue=small) = %v, want both events", got)
	}
}

func TestSearchFilters_Apply_SportsLevel(t *testing.T) {
	pro := &event.Event{ID: "pro", Name: "NBA Western Finals"}
	college := &event.Event{ID: "college", Name: "State University Tip-Off"}

	f := &SearchFilters{Category: classify.Sports, Level: classify.LevelPro}
	got := ids(f.Apply([]*event.Event{pro, college}))
	if !equalStrings(got, []string{"pro"}) {
		t.Errorf("Apply(sports, level=pro) = %v, want [pro]", got)
	}
}

func TestSearchFilters_Apply_EmptyInputShortCircuits(t *testing.T) {
	f := &SearchFilters{Category: classify.Music, Date: "2024-06-01", Price: PriceFree}
	got := f.Apply([]*event.Event{})
	if len(got) != 0 {
		t.Errorf("Apply(empty) = %d events, want 0", len(got))
	}
}

func TestSearchFilters_Apply_DoesNotMutateInput(t *testing.T) {
	events := []*event.Event{
		{ID: "1", LocalDate: "2024-06-01"},
		{ID: "2", LocalDate: "2024-06-02"},
	}
	f := &SearchFilters{Category: classify.Music, Date: "2024-06-01"}
	_ = f.Apply(events)

	if len(events) != 2 || events[0].ID != "1" || events[1].ID != "2" {
		t.Error("Apply() mutated its input slice")
	}
}

func TestSearchFilters_String(t *testing.T) {
	tests := []struct {
		name    string
		filters *SearchFilters
		want    string
	}{
		{
			name:    "empty",
			filters: &SearchFilters{Category: classify.Music},
			want:    "No active filters",
		},
		{
			name: "date and genres",
			filters: &SearchFilters{
				Category: classify.Music,
				Date:     "2024-06-01",
				SubTags:  classify.NewSubTagSet("jazz", "rock"),
			},
			want: "Date: 2024-06-01 | live music: jazz, rock",
		},
		{
			name:    "price only",
			filters: &SearchFilters{Category: classify.Music, Price: PriceUnder20},
			want:    "Price: under20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func ids(events []*event.Event) []string {
	out := make([]string, len(events))
	for i, evt := range events {
		out[i] = evt.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
