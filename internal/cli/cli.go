package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/concerto-events/concerto/internal/classify"
	"github.com/concerto-events/concerto/internal/config"
	"github.com/concerto-events/concerto/internal/event"
	"github.com/concerto-events/concerto/internal/filter"
	"github.com/concerto-events/concerto/internal/logger"
	"github.com/concerto-events/concerto/internal/ticketmaster"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagLocation  string
	flagDate      string
	flagCategory  string
	flagTags      []string
	flagVenueSize string
	flagLevel     string
	flagTime      string
	flagPrice     string
	flagFormat    string
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concerto",
		Short: "Search local events by category and filters",
		Long: `Search upcoming local events through the Ticketmaster Discovery API.
Events are normalized, deduplicated, and filtered by category keywords,
date, venue size, time of day, and price before being printed.`,
		RunE: runSearch,
	}

	// Define flags
	cmd.Flags().StringVar(&flagLocation, "location", "", `Location as "City, ST" (required)`)
	cmd.Flags().StringVar(&flagDate, "date", "", "Restrict to one local date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagCategory, "category", "music", "Category: music, sports, comedy, festivals, theater, nightlife, family")
	cmd.Flags().StringSliceVar(&flagTags, "tags", nil, "Sub-tags within the category, e.g. jazz,indie")
	cmd.Flags().StringVar(&flagVenueSize, "venue-size", "", "Venue size for music: small, mid, or big")
	cmd.Flags().StringVar(&flagLevel, "level", "", "Competition level for sports: pro or college")
	cmd.Flags().StringVar(&flagTime, "time", "", "Time of day: afternoon, evening, or latenight")
	cmd.Flags().StringVar(&flagPrice, "price", "", "Price bucket: free, under20, or under50")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("location")

	return cmd
}

// runSearch is the main command logic
func runSearch(cmd *cobra.Command, args []string) error {
	city, state, err := parseCityState(flagLocation)
	if err != nil {
		return err
	}

	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	category, err := classify.ParseCategory(flagCategory)
	if err != nil {
		return err
	}

	filters := &filter.SearchFilters{
		Category: category,
		Date:     strings.TrimSpace(flagDate),
	}
	if len(flagTags) > 0 {
		filters.SubTags, err = classify.ParseSubTags(category, flagTags)
		if err != nil {
			return err
		}
	}
	if flagVenueSize != "" {
		filters.VenueSize, err = classify.ParseVenueSize(flagVenueSize)
		if err != nil {
			return err
		}
	}
	if flagLevel != "" {
		filters.Level, err = classify.ParseLevel(flagLevel)
		if err != nil {
			return err
		}
	}
	if flagTime != "" {
		filters.TimeOfDay, err = filter.ParseTimeBucket(flagTime)
		if err != nil {
			return err
		}
	}
	if flagPrice != "" {
		filters.Price, err = filter.ParsePriceBucket(flagPrice)
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("no API key configured (set CONCERTO_API_KEY)")
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Searching %s, %s for %s\n", city, state, category.Label())
	}

	client := ticketmaster.NewWithBaseURL(cfg.APIKey, cfg.BaseURL)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	raws, err := client.SearchEvents(ctx, ticketmaster.SearchQuery{
		City:      city,
		StateCode: state,
		Category:  category,
		Size:      cfg.PageSize,
	})
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Fetched %d raw events\n", len(raws))
	}

	events := event.Dedupe(ticketmaster.NormalizeAll(raws))
	matched := filters.Apply(events)

	logger.Debug("search completed", logger.Fields{
		"fetched": len(raws),
		"unique":  len(events),
		"matched": len(matched),
	})

	result := &OutputResult{
		SearchedAt: time.Now().UTC(),
		Location:   fmt.Sprintf("%s, %s", city, state),
		Category:   string(category),
		Events:     matched,
		EventCount: len(matched),
		Unique:     len(events),
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// parseCityState splits a "City, ST" location string. The state code
// must be two letters.
func parseCityState(location string) (city, state string, err error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return "", "", fmt.Errorf(`invalid location: %q (expected "City, ST")`, location)
	}
	city = strings.TrimSpace(parts[0])
	state = strings.ToUpper(strings.TrimSpace(parts[1]))
	if city == "" || len(state) != 2 {
		return "", "", fmt.Errorf(`invalid location: %q (expected "City, ST")`, location)
	}
	return city, state, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
