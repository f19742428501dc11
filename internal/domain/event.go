package domain

import (
	"errors"
	"time"
)

// EventKind is a membership lifecycle transition.
type EventKind string

const (
	EventArrival   EventKind = "arrival"
	EventDeparture EventKind = "departure"
	EventRemoval   EventKind = "removal"
)

// EventKinds lists every event kind.
var EventKinds = []EventKind{EventArrival, EventDeparture, EventRemoval}

func (k EventKind) String() string { return string(k) }

func (k EventKind) IsValid() bool {
	switch k {
	case EventArrival, EventDeparture, EventRemoval:
		return true
	}
	return false
}

// ParseEventKind accepts the kind name or the platform verb ("join", "exit", "banned").
func ParseEventKind(s string) (EventKind, bool) {
	switch s {
	case "arrival", "join", "joined":
		return EventArrival, true
	case "departure", "exit", "left":
		return EventDeparture, true
	case "removal", "ban", "banned":
		return EventRemoval, true
	}
	return "", false
}

// Subject is the member an event is about.
type Subject struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
	Bot         bool
}

// Event is a single membership transition as delivered by the platform.
type Event struct {
	ScopeID          string
	Subject          Subject
	Kind             EventKind
	AccountCreatedAt time.Time
}

// Validate checks the fields the engine depends on.
func (e Event) Validate() error {
	var errs []FieldError
	if e.ScopeID == "" {
		errs = append(errs, FieldError{Field: "scope_id", Message: "required"})
	}
	if e.Subject.ID == "" {
		errs = append(errs, FieldError{Field: "subject.id", Message: "required"})
	}
	if !e.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "unknown event kind"})
	}
	if e.AccountCreatedAt.IsZero() {
		errs = append(errs, FieldError{Field: "account_created_at", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ErrIgnoredEvent is returned for events the engine deliberately skips.
var ErrIgnoredEvent = errors.New("event ignored")
