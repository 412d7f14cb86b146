package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/concerto-events/concerto/internal/classify"
)

const (
	DefaultBaseURL = "https://app.ticketmaster.com/discovery/v2"
	UserAgent      = "concerto/1.0 (github.com/concerto-events/concerto)"
	Timeout        = 10 * time.Second

	// DefaultPageSize matches the provider's maximum useful page; all
	// filtering happens client-side on this single page.
	DefaultPageSize = 100

	maxSuggestions = 10
	snippetLen     = 200
)

// Client calls the Ticketmaster Discovery API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a Client with the default base URL and timeout.
func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, DefaultBaseURL)
}

// NewWithBaseURL creates a Client against a specific base URL. Tests
// point this at a local server.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: Timeout,
		},
	}
}

// SearchQuery describes one events search. Either City+StateCode or
// Latitude+Longitude must be set; everything else is optional.
type SearchQuery struct {
	City      string
	StateCode string

	Latitude  float64
	Longitude float64
	// RadiusMiles bounds a geographic search; ignored without
	// coordinates.
	RadiusMiles int

	Category classify.Category

	// StartDateTime / EndDateTime window the search, ISO-8601 UTC
	// ("2006-01-02T15:04:05Z").
	StartDateTime string
	EndDateTime   string

	// Size overrides DefaultPageSize when positive.
	Size int
}

// HasCoords reports whether the query is geographic.
func (q SearchQuery) HasCoords() bool {
	return q.Latitude != 0 || q.Longitude != 0
}

// SearchEvents fetches one page of raw events matching the query.
// A transport failure or non-2xx status yields an error; an empty
// result page yields an empty slice.
func (c *Client) SearchEvents(ctx context.Context, q SearchQuery) ([]RawEvent, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("countryCode", "US")
	params.Set("sort", "date,asc")

	size := q.Size
	if size <= 0 {
		size = DefaultPageSize
	}
	params.Set("size", strconv.Itoa(size))

	if q.HasCoords() {
		params.Set("latlong", fmt.Sprintf("%g,%g", q.Latitude, q.Longitude))
		if q.RadiusMiles > 0 {
			params.Set("radius", strconv.Itoa(q.RadiusMiles))
			params.Set("unit", "miles")
		}
	} else {
		params.Set("city", q.City)
		params.Set("stateCode", q.StateCode)
	}

	for key, value := range categoryParams(q.Category) {
		params.Set(key, value)
	}

	if q.StartDateTime != "" {
		params.Set("startDateTime", q.StartDateTime)
	}
	if q.EndDateTime != "" {
		params.Set("endDateTime", q.EndDateTime)
	}

	var resp eventsResponse
	if err := c.getJSON(ctx, "/events.json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Embedded == nil {
		return []RawEvent{}, nil
	}
	return resp.Embedded.Events, nil
}

// SuggestLocations returns up to ten unique "City, ST" labels whose
// venues match the query text, for location autocompletion.
func (c *Client) SuggestLocations(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("keyword", query)
	params.Set("countryCode", "US")
	params.Set("size", "20")

	var resp venuesResponse
	if err := c.getJSON(ctx, "/venues.json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Embedded == nil {
		return []string{}, nil
	}

	seen := make(map[string]bool)
	suggestions := make([]string, 0, maxSuggestions)
	for _, v := range resp.Embedded.Venues {
		if v.City == nil || v.City.Name == "" || v.State == nil || v.State.StateCode == "" {
			continue
		}
		label := v.City.Name + ", " + v.State.StateCode
		if seen[label] {
			continue
		}
		seen[label] = true
		suggestions = append(suggestions, label)
		if len(suggestions) >= maxSuggestions {
			break
		}
	}
	return suggestions, nil
}

// categoryParams maps a category onto provider search parameters. Broad
// categories (nightlife, family) pull a wide segment and rely on the
// keyword classifier to narrow results.
func categoryParams(category classify.Category) map[string]string {
	switch category {
	case classify.Sports:
		return map[string]string{"segmentName": "Sports"}
	case classify.Comedy:
		return map[string]string{"segmentName": "Arts & Theatre", "keyword": "comedy"}
	case classify.Festivals:
		return map[string]string{"keyword": "festival"}
	case classify.Theater:
		return map[string]string{"segmentName": "Arts & Theatre"}
	case classify.Nightlife:
		return map[string]string{"segmentName": "Music"}
	case classify.Family:
		return map[string]string{}
	default:
		return map[string]string{"segmentName": "Music"}
	}
}

// getJSON performs a GET against path and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("contacting ticketmaster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, snippetLen))
		return fmt.Errorf("ticketmaster returned status %d: %s", resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
