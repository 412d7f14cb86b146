package ticketmaster

// RawEvent mirrors the subset of a Discovery API event record that the
// normalizer reads. Nested objects the provider may omit are pointers.
type RawEvent struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Info            string           `json:"info"`
	Description     string           `json:"description"`
	PleaseNote      string           `json:"pleaseNote"`
	Images          []Image          `json:"images"`
	PriceRanges     []PriceRange     `json:"priceRanges"`
	Classifications []Classification `json:"classifications"`
	Dates           *Dates           `json:"dates"`
	Embedded        *EventEmbedded   `json:"_embedded"`
}

// Image is one entry of an event's image list.
type Image struct {
	URL    string `json:"url"`
	Ratio  string `json:"ratio"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// PriceRange is one entry of an event's price-range list.
type PriceRange struct {
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Classification is one level of the provider's genre hierarchy.
type Classification struct {
	Segment  *NamedRef `json:"segment"`
	Genre    *NamedRef `json:"genre"`
	SubGenre *NamedRef `json:"subGenre"`
}

// NamedRef is a name-bearing reference inside a classification.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Dates carries the event's start information.
type Dates struct {
	Start *Start `json:"start"`
}

// Start holds the provider's split date/time fields. DateTime is a
// combined UTC timestamp; LocalDate/LocalTime are venue-local parts.
type Start struct {
	DateTime  string `json:"dateTime"`
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
	DateTBD   bool   `json:"dateTBD"`
}

// EventEmbedded holds the event's nested venue list.
type EventEmbedded struct {
	Venues []RawVenue `json:"venues"`
}

// RawVenue mirrors the provider's venue record.
type RawVenue struct {
	Name       string      `json:"name"`
	URL        string      `json:"url"`
	PostalCode string      `json:"postalCode"`
	Address    *Address    `json:"address"`
	City       *NamedRef   `json:"city"`
	State      *StateRef   `json:"state"`
	Country    *CountryRef `json:"country"`
	Location   *Location   `json:"location"`
}

// Address is a venue street address.
type Address struct {
	Line1 string `json:"line1"`
}

// StateRef is a venue state/region reference.
type StateRef struct {
	Name      string `json:"name"`
	StateCode string `json:"stateCode"`
}

// CountryRef is a venue country reference.
type CountryRef struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

// Location is a venue geocoordinate pair; the provider sends both as
// strings.
type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// eventsResponse is the paged envelope of the events endpoint.
type eventsResponse struct {
	Embedded *struct {
		Events []RawEvent `json:"events"`
	} `json:"_embedded"`
}

// venuesResponse is the paged envelope of the venues endpoint.
type venuesResponse struct {
	Embedded *struct {
		Venues []RawVenue `json:"venues"`
	} `json:"_embedded"`
}
