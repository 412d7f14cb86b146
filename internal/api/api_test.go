package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concerto-events/concerto/internal/ticketmaster"
)

type fakeSource struct {
	events      []ticketmaster.RawEvent
	suggestions []string
	err         error

	lastQuery   ticketmaster.SearchQuery
	lastSuggest string
}

func (f *fakeSource) SearchEvents(_ context.Context, q ticketmaster.SearchQuery) ([]ticketmaster.RawEvent, error) {
	f.lastQuery = q
	return f.events, f.err
}

func (f *fakeSource) SuggestLocations(_ context.Context, query string) ([]string, error) {
	f.lastSuggest = query
	return f.suggestions, f.err
}

func newTestServer(source *fakeSource) *httptest.Server {
	srv := NewServer(source, nil, 20, 100)
	mux := http.NewServeMux()
	srv.Register(mux)
	return httptest.NewServer(mux)
}

func rawEvent(id, name string) ticketmaster.RawEvent {
	return ticketmaster.RawEvent{
		ID:   id,
		Name: name,
		Dates: &ticketmaster.Dates{
			Start: &ticketmaster.Start{LocalDate: "2024-06-01", LocalTime: "19:30:00"},
		},
		Embedded: &ticketmaster.EventEmbedded{
			Venues: []ticketmaster.RawVenue{{Name: "The Blue Note Lounge"}},
		},
	}
}

func TestEventsReturnsNormalizedList(t *testing.T) {
	source := &fakeSource{events: []ticketmaster.RawEvent{
		rawEvent("ev-1", "Jazz Night"),
		rawEvent("ev-2", "Rooftop Sessions"),
	}}
	ts := newTestServer(source)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/events?city=Austin&state=tx")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Events []map[string]any `json:"events"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Events, 2)
	assert.Equal(t, "Jazz Night", body.Events[0]["name"])
	assert.Equal(t, "The Blue Note Lounge", body.Events[0]["venue"].(map[string]any)["name"])

	// Hints drive classification server-side and must not leak out.
	_, present := body.Events[0]["genre_hints"]
	assert.False(t, present)

	assert.Equal(t, "Austin", source.lastQuery.City)
	assert.Equal(t, "TX", source.lastQuery.StateCode)
	assert.Equal(t, 100, source.lastQuery.Size)
}

func TestEventsDeduplicatesBeforeResponding(t *testing.T) {
	dup := rawEvent("", "Open Mic")
	source := &fakeSource{events: []ticketmaster.RawEvent{dup, dup}}
	ts := newTestServer(source)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/events?city=Austin&state=TX")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Events []map[string]any `json:"events"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Events, 1)
}

func TestEventsGeoQuery(t *testing.T) {
	source := &fakeSource{}
	ts := newTestServer(source)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/events?lat=34.0407&lng=-118.2468&radius=35")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 34.0407, source.lastQuery.Latitude, 1e-9)
	assert.InDelta(t, -118.2468, source.lastQuery.Longitude, 1e-9)
	assert.Equal(t, 35, source.lastQuery.RadiusMiles)
}

func TestEventsGeoDefaultRadius(t *testing.T) {
	source := &fakeSource{}
	ts := newTestServer(source)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/events?lat=30.27&lng=-97.74")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 20, source.lastQuery.RadiusMiles)
}

func TestEventsDateWindow(t *testing.T) {
	source := &fakeSource{}
	ts := newTestServer(source)
	defer ts.Close()

	// 2024-06-01T00:00:00Z and 2024-06-08T00:00:00Z.
	resp, err := http.Get(ts.URL + "/events?city=Austin&state=TX&start_date=1717200000&end_date=1717804800")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2024-06-01T00:00:00Z", source.lastQuery.StartDateTime)
	assert.Equal(t, "2024-06-08T00:00:00Z", source.lastQuery.EndDateTime)
}

func TestEventsBadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing location", ""},
		{"lat without lng", "lat=30.27"},
		{"city without state", "city=Austin"},
		{"malformed lat", "lat=north&lng=-97.74"},
		{"negative radius", "lat=30.27&lng=-97.74&radius=-5"},
		{"unknown category", "city=Austin&state=TX&category=opera"},
		{"tag outside category", "city=Austin&state=TX&category=comedy&tags=jazz"},
		{"unknown venue size", "city=Austin&state=TX&venue_size=tiny"},
		{"unknown time bucket", "city=Austin&state=TX&time=dawn"},
		{"unknown price bucket", "city=Austin&state=TX&price=under10"},
		{"malformed start date", "city=Austin&state=TX&start_date=tomorrow"},
	}

	ts := newTestServer(&fakeSource{})
	defer ts.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/events?" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestEventsFiltersApplied(t *testing.T) {
	priced := rawEvent("ev-1", "Jazz Night")
	priced.PriceRanges = []ticketmaster.PriceRange{{Min: 15, Max: 40}}
	expensive := rawEvent("ev-2", "Gala Evening")
	expensive.PriceRanges = []ticketmaster.PriceRange{{Min: 120, Max: 250}}

	source := &fakeSource{events: []ticketmaster.RawEvent{priced, expensive}}
	ts := newTestServer(source)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/events?city=Austin&state=TX&price=under20")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Events []map[string]any `json:"events"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Events, 1)
	assert.Equal(t, "Jazz Night", body.Events[0]["name"])
}

func TestEventsUpstreamFailure(t *testing.T) {
	source := &fakeSource{err: errors.New("status 429")}
	ts := newTestServer(source)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/events?city=Austin&state=TX")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestSuggest(t *testing.T) {
	source := &fakeSource{suggestions: []string{"Austin, TX", "Aurora, CO"}}
	ts := newTestServer(source)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/suggest?q=au")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body suggestResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"Austin, TX", "Aurora, CO"}, body.Suggestions)
	assert.Equal(t, "au", source.lastSuggest)
}

func TestSuggestShortQuery(t *testing.T) {
	ts := newTestServer(&fakeSource{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/suggest?q=a")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSuggestEmptyResult(t *testing.T) {
	ts := newTestServer(&fakeSource{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/suggest?q=zz")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, "[]", string(raw["suggestions"]))
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(&fakeSource{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
