package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/concerto-events/concerto/internal/classify"
	"github.com/concerto-events/concerto/internal/event"
	"github.com/concerto-events/concerto/internal/filter"
	"github.com/concerto-events/concerto/internal/logger"
	"github.com/concerto-events/concerto/internal/ticketmaster"
)

// eventsResponse is the wire shape of GET /events. Events carry only
// display fields; classification hints stay internal.
type eventsResponse struct {
	Events []eventDTO `json:"events"`
}

type eventDTO struct {
	ID          string        `json:"id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	TimeStart   string        `json:"time_start,omitempty"`
	URL         string        `json:"url,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	Venue       *event.Venue  `json:"venue"`
	PriceMin    *float64      `json:"price_min"`
	PriceMax    *float64      `json:"price_max"`
}

func toDTO(evt *event.Event) eventDTO {
	return eventDTO{
		ID:          evt.ID,
		Name:        evt.Name,
		Description: evt.Description,
		TimeStart:   evt.StartDateTime,
		URL:         evt.URL,
		ImageURL:    evt.ImageURL,
		Venue:       evt.Venue,
		PriceMin:    evt.PriceMin,
		PriceMax:    evt.PriceMax,
	}
}

// handleEvents serves GET /events. Location is either city+state or
// lat+lng (with optional radius in miles); start_date/end_date are
// unix seconds windowing the provider query; category, tags, date,
// venue_size, level, time, and price select the client-side filters.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	params := r.URL.Query()

	query, filters, errMsg := s.parseSearch(params)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	raws, err := s.source.SearchEvents(r.Context(), query)
	if err != nil {
		logger.Error("provider search failed", logger.Fields{"city": query.City}, err)
		if s.metrics != nil {
			s.metrics.RecordUpstreamError()
		}
		writeError(w, http.StatusBadGateway, "could not load events from provider")
		return
	}

	events := filters.Apply(event.Dedupe(ticketmaster.NormalizeAll(raws)))
	if s.metrics != nil {
		s.metrics.RecordSearch(len(raws), len(events))
	}

	dtos := make([]eventDTO, 0, len(events))
	for _, evt := range events {
		dtos = append(dtos, toDTO(evt))
	}
	writeJSON(w, http.StatusOK, eventsResponse{Events: dtos})
}

// parseSearch builds the provider query and filter set from request
// parameters. The returned message is empty on success.
func (s *Server) parseSearch(params map[string][]string) (ticketmaster.SearchQuery, *filter.SearchFilters, string) {
	get := func(key string) string {
		if vals := params[key]; len(vals) > 0 {
			return strings.TrimSpace(vals[0])
		}
		return ""
	}

	query := ticketmaster.SearchQuery{Size: s.pageSize}

	lat, lng := get("lat"), get("lng")
	city, state := get("city"), get("state")
	switch {
	case lat != "" && lng != "":
		latF, latErr := strconv.ParseFloat(lat, 64)
		lngF, lngErr := strconv.ParseFloat(lng, 64)
		if latErr != nil || lngErr != nil {
			return query, nil, "lat and lng must be decimal degrees"
		}
		query.Latitude = latF
		query.Longitude = lngF
		query.RadiusMiles = s.defaultRadius
		if radius := get("radius"); radius != "" {
			r, err := strconv.Atoi(radius)
			if err != nil || r <= 0 {
				return query, nil, "radius must be a positive integer"
			}
			query.RadiusMiles = r
		}
	case city != "" && state != "":
		query.City = city
		query.StateCode = strings.ToUpper(state)
	default:
		return query, nil, "either lat and lng or city and state are required"
	}

	if startSec := get("start_date"); startSec != "" {
		iso, err := unixToISO(startSec)
		if err != nil {
			return query, nil, "start_date must be unix seconds"
		}
		query.StartDateTime = iso
	}
	if endSec := get("end_date"); endSec != "" {
		iso, err := unixToISO(endSec)
		if err != nil {
			return query, nil, "end_date must be unix seconds"
		}
		query.EndDateTime = iso
	}

	category := classify.Music
	if c := get("category"); c != "" {
		parsed, err := classify.ParseCategory(c)
		if err != nil {
			return query, nil, err.Error()
		}
		category = parsed
	}
	query.Category = category

	filters := &filter.SearchFilters{
		Category: category,
		Date:     get("date"),
	}
	if tags := get("tags"); tags != "" {
		set, err := classify.ParseSubTags(category, strings.Split(tags, ","))
		if err != nil {
			return query, nil, err.Error()
		}
		filters.SubTags = set
	}
	if size := get("venue_size"); size != "" {
		parsed, err := classify.ParseVenueSize(size)
		if err != nil {
			return query, nil, err.Error()
		}
		filters.VenueSize = parsed
	}
	if level := get("level"); level != "" {
		parsed, err := classify.ParseLevel(level)
		if err != nil {
			return query, nil, err.Error()
		}
		filters.Level = parsed
	}
	if tod := get("time"); tod != "" {
		parsed, err := filter.ParseTimeBucket(tod)
		if err != nil {
			return query, nil, err.Error()
		}
		filters.TimeOfDay = parsed
	}
	if price := get("price"); price != "" {
		parsed, err := filter.ParsePriceBucket(price)
		if err != nil {
			return query, nil, err.Error()
		}
		filters.Price = parsed
	}

	return query, filters, ""
}

func unixToISO(sec string) (string, error) {
	n, err := strconv.ParseInt(sec, 10, 64)
	if err != nil {
		return "", err
	}
	return time.Unix(n, 0).UTC().Format("2006-01-02T15:04:05Z"), nil
}
