package classify

import (
	"fmt"
	"sort"
)

// Category is one of the coarse event kinds a search can target.
type Category string

const (
	Music     Category = "music"
	Sports    Category = "sports"
	Comedy    Category = "comedy"
	Festivals Category = "festivals"
	Theater   Category = "theater"
	Nightlife Category = "nightlife"
	Family    Category = "family"
)

// Categories lists all valid categories in display order.
var Categories = []Category{Music, Sports, Comedy, Festivals, Theater, Nightlife, Family}

var categoryLabels = map[Category]string{
	Music:     "live music",
	Sports:    "sports",
	Comedy:    "comedy",
	Festivals: "festivals",
	Theater:   "theater",
	Nightlife: "nightlife",
	Family:    "family & kids",
}

// Label returns the human-readable name for the category, used in
// status messaging.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "events"
}

// ParseCategory validates a category string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryLabels[c]; !ok {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}

// SubTag is a finer classification within a category (a music genre, a
// sport type, and so on). Valid sub-tags are the keys of the category's
// keyword table, plus SportOther for sports.
type SubTag string

// SportOther matches sports events that hit none of the defined sport
// keyword sets, letting users opt into "everything not explicitly
// categorized".
const SportOther SubTag = "other"

// SubTagSet is a selection of sub-tags for one category. An empty set
// means no restriction.
type SubTagSet map[SubTag]struct{}

// NewSubTagSet builds a set from the given sub-tags.
func NewSubTagSet(tags ...SubTag) SubTagSet {
	set := make(SubTagSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

// Has reports whether the set contains tag.
func (s SubTagSet) Has(tag SubTag) bool {
	_, ok := s[tag]
	return ok
}

// SubTagsFor returns the valid sub-tags of a category, sorted.
func SubTagsFor(c Category) []SubTag {
	table := keywordTables[c]
	tags := make([]SubTag, 0, len(table)+1)
	for tag := range table {
		tags = append(tags, tag)
	}
	if c == Sports {
		tags = append(tags, SportOther)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// ParseSubTags validates sub-tag strings against a category's
// vocabulary.
func ParseSubTags(c Category, raw []string) (SubTagSet, error) {
	set := make(SubTagSet, len(raw))
	for _, s := range raw {
		tag := SubTag(s)
		if _, ok := keywordTables[c][tag]; !ok && !(c == Sports && tag == SportOther) {
			return nil, fmt.Errorf("unknown %s sub-tag: %q", c, s)
		}
		set[tag] = struct{}{}
	}
	return set, nil
}

// VenueSize is the coarse size class of a venue.
type VenueSize string

const (
	VenueAny   VenueSize = "any"
	VenueSmall VenueSize = "small"
	VenueMid   VenueSize = "mid"
	VenueBig   VenueSize = "big"
)

// ParseVenueSize validates a venue-size string.
func ParseVenueSize(s string) (VenueSize, error) {
	switch v := VenueSize(s); v {
	case VenueAny, VenueSmall, VenueMid, VenueBig:
		return v, nil
	default:
		return "", fmt.Errorf("unknown venue size: %q", s)
	}
}

// Level is the competition level for sports events.
type Level string

const (
	LevelAny     Level = "any"
	LevelPro     Level = "pro"
	LevelCollege Level = "college"
)

// ParseLevel validates a sports-level string.
func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case LevelAny, LevelPro, LevelCollege:
		return l, nil
	default:
		return "", fmt.Errorf("unknown sports level: %q", s)
	}
}
