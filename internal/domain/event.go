package domain

import (
	"context"
	"time"
)

// Event is a shop-wide event as exchanged with the hub backend.
// StartTime and EndTime are TimePoint tokens (YYYYMMDDTHHMMSSZ).
// swagger:model Event
type Event struct {
	ID          ID     `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Price       Text   `json:"price"`
	Image       string `json:"image"`
	Game        Text   `json:"game"`
	Recurring   bool   `json:"recurring"`
}

// EventView is an Event decorated with the strings an event card renders.
// swagger:model EventView
type EventView struct {
	*Event
	DateDisplay string     `json:"dateDisplay"`
	TimeDisplay string     `json:"timeDisplay"`
	Form        FormFields `json:"form"`
}

// FormFields are a record's tokens split back into the date and time inputs
// of the edit form. They are empty when a stored token is malformed.
// swagger:model FormFields
type FormFields struct {
	StartDate string `json:"startDate"`
	StartTime string `json:"startTime"`
	EndDate   string `json:"endDate"`
	EndTime   string `json:"endTime"`
}

// Occurrence is one concrete instance of an event, recurring or not.
// swagger:model Occurrence
type Occurrence struct {
	EventID     ID     `json:"eventId"`
	Title       string `json:"title"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	DateDisplay string `json:"dateDisplay"`
	TimeDisplay string `json:"timeDisplay"`
	Recurring   bool   `json:"recurring"`
}

// EventInput carries the fields of the create/edit event form. Dates are
// "YYYY-MM-DD" and times "HH:MM" as a browser date/time input produces them.
type EventInput struct {
	Title       string
	Description string
	StartDate   string
	StartTime   string
	EndDate     string
	EndTime     string
	Price       string
	Image       string
	Game        string
	Recurring   bool
}

// EventRepository is the hub backend's event collection.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id ID) error
}

// EventService defines the event tab: listing, admin edits and RSVPs.
type EventService interface {
	ListEvents(ctx context.Context) ([]*EventView, error)
	UpcomingOccurrences(ctx context.Context, from time.Time, weeks int) ([]*Occurrence, error)
	CreateEvent(ctx context.Context, auth AuthContext, in *EventInput) (*Event, error)
	UpdateEvent(ctx context.Context, auth AuthContext, id ID, in *EventInput) (*Event, error)
	DeleteEvent(ctx context.Context, auth AuthContext, id ID) error
	RSVP(ctx context.Context, id ID, participant string) error
}
