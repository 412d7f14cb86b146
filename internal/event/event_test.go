package event

import "testing"

func TestEvent_TextBlob(t *testing.T) {
	tests := []struct {
		name         string
		event        *Event
		includeVenue bool
		want         string
	}{
		{
			name:  "name only",
			event: &Event{Name: "Jazz Night"},
			want:  "jazz night",
		},
		{
			name: "name and description",
			event: &Event{
				Name:        "Jazz Night",
				Description: "An evening of Bebop",
			},
			want: "jazz night | an evening of bebop",
		},
		{
			name: "venue excluded by default",
			event: &Event{
				Name:  "Open Mic",
				Venue: &Venue{Name: "Rosie's Bar"},
			},
			want: "open mic",
		},
		{
			name: "venue included on request",
			event: &Event{
				Name:  "Open Mic",
				Venue: &Venue{Name: "Rosie's Bar"},
			},
			includeVenue: true,
			want:         "open mic | rosie's bar",
		},
		{
			name:         "nil venue does not panic",
			event:        &Event{Name: "Open Mic"},
			includeVenue: true,
			want:         "open mic",
		},
		{
			name:  "empty event",
			event: &Event{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.TextBlob(tt.includeVenue); got != tt.want {
				t.Errorf("TextBlob(%v) = %q, want %q", tt.includeVenue, got, tt.want)
			}
		})
	}
}

func TestEvent_StartHour(t *testing.T) {
	tests := []struct {
		name      string
		localTime string
		wantHour  int
		wantOK    bool
	}{
		{name: "evening", localTime: "19:30:00", wantHour: 19, wantOK: true},
		{name: "midnight", localTime: "00:00:00", wantHour: 0, wantOK: true},
		{name: "unknown", localTime: "", wantOK: false},
		{name: "garbage", localTime: "xx:00:00", wantOK: false},
		{name: "out of range", localTime: "25:00:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, ok := (&Event{LocalTime: tt.localTime}).StartHour()
			if ok != tt.wantOK {
				t.Fatalf("StartHour() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && hour != tt.wantHour {
				t.Errorf("StartHour() = %d, want %d", hour, tt.wantHour)
			}
		})
	}
}

func TestEvent_VenueName(t *testing.T) {
	withVenue := &Event{Venue: &Venue{Name: "Blue Note Lounge"}}
	if got := withVenue.VenueName(); got != "Blue Note Lounge" {
		t.Errorf("VenueName() = %q, want %q", got, "Blue Note Lounge")
	}

	noVenue := &Event{}
	if got := noVenue.VenueName(); got != "" {
		t.Errorf("VenueName() = %q, want empty", got)
	}
}
