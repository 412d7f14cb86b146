package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/concerto-events/concerto/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	SearchedAt time.Time      `json:"searched_at"`
	Location   string         `json:"location"`
	Category   string         `json:"category"`
	Events     []*event.Event `json:"events"`
	EventCount int            `json:"event_count"`

	// Unique counts deduplicated events before filtering, so empty
	// output can say whether the search or the filters came up short.
	Unique int `json:"-"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.EventCount == 0 {
		if result.Unique == 0 {
			fmt.Fprintln(w, "No events found.")
		} else {
			fmt.Fprintln(w, "No events match the selected filters.")
		}
		return nil
	}

	fmt.Fprintf(w, "%s events in %s:\n\n", result.Category, result.Location)
	for _, evt := range result.Events {
		fmt.Fprintf(w, "  %s\n", evt.Name)
		fmt.Fprintf(w, "       When: %s\n", whenLine(evt))
		fmt.Fprintf(w, "       Where: %s\n", whereLine(evt))
		if price := priceLine(evt); price != "" {
			fmt.Fprintf(w, "       Price: %s\n", price)
		}
		if verbose {
			if evt.ID != "" {
				fmt.Fprintf(w, "       ID: %s\n", evt.ID)
			}
			if evt.URL != "" {
				fmt.Fprintf(w, "       URL: %s\n", evt.URL)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Total: %d events\n", result.EventCount)

	return nil
}

func whenLine(evt *event.Event) string {
	if evt.LocalDate == "" {
		return "Date TBA"
	}
	if evt.LocalTime == "" {
		return evt.LocalDate
	}
	return fmt.Sprintf("%s %s", evt.LocalDate, evt.LocalTime)
}

func whereLine(evt *event.Event) string {
	name := evt.VenueName()
	if name == "" {
		return "Venue TBA"
	}
	if evt.Venue.City != "" {
		return fmt.Sprintf("%s, %s", name, evt.Venue.City)
	}
	return name
}

func priceLine(evt *event.Event) string {
	if evt.PriceMin == nil {
		return ""
	}
	if *evt.PriceMin == 0 && (evt.PriceMax == nil || *evt.PriceMax == 0) {
		return "Free"
	}
	if evt.PriceMax != nil && *evt.PriceMax > *evt.PriceMin {
		return fmt.Sprintf("$%.2f - $%.2f", *evt.PriceMin, *evt.PriceMax)
	}
	return fmt.Sprintf("$%.2f", *evt.PriceMin)
}
