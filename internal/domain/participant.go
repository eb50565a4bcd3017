package domain

import "context"

// ItemKind distinguishes the two things a visitor can RSVP to.
type ItemKind string

const (
	KindEvent ItemKind = "event"
	KindGame  ItemKind = "game"
)

// Participant is an RSVP as posted to /participants/add.
type Participant struct {
	ID   ID       `json:"id"`
	Type ItemKind `json:"type"`
	Name string   `json:"participant"`
}

// ParticipantRepository records RSVPs on the hub backend.
type ParticipantRepository interface {
	Add(ctx context.Context, p *Participant) error
}
