package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertRequest is everything needed to render and deliver one alert.
type AlertRequest struct {
	ID          uuid.UUID
	ScopeID     string
	Subject     Subject
	Kind        EventKind
	MetricValue float64
	MetricUnit  AgeUnit
	RejoinCount int
	FieldOrder  FieldOrder
	CreatedAt   time.Time
}

// Report is the platform-neutral rendering of an alert.
type Report struct {
	Kind      EventKind
	Title     string
	Icon      string
	Color     int
	Headline  *Headline
	Sections  []Section
	Author    string
	AvatarURL string
	Footer    string
	Timestamp time.Time
}

// Headline is the summary line taken from the first report field.
type Headline struct {
	Label string
	Value string
}

// Section is one report block. Spacer sections carry no fields.
type Section struct {
	Kind   FieldKind
	Spacer bool
	Fields []Field
}

// Field is a name/value pair inside a section.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Message is one outbound delivery: text content and an optional report.
type Message struct {
	Content string
	Report  *Report
}

// Destination is a resolved alert channel.
type Destination struct {
	ScopeID   string
	ChannelID string
	Name      string
}

// SkippedDestination records a channel that could not receive a delivery.
type SkippedDestination struct {
	ChannelID string
	Err       error
}

// DispatchResult summarises one fan-out.
type DispatchResult struct {
	AlertID    uuid.UUID
	Delivered  []string
	Skipped    []SkippedDestination
	NoChannels bool
}

// DeliveredCount returns the number of successful deliveries.
func (r *DispatchResult) DeliveredCount() int {
	if r == nil {
		return 0
	}
	return len(r.Delivered)
}
