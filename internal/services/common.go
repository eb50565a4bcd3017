package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"boardbevy/internal/domain"
	"boardbevy/internal/timepoint"
)

func requireAdmin(auth domain.AuthContext) error {
	if !auth.IsAdmin {
		return fmt.Errorf("admin session required: %w", domain.ErrForbidden)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrValidation}, args...)...)
}

func requireID(id domain.ID) error {
	if strings.TrimSpace(string(id)) == "" {
		return invalid("id is required")
	}
	return nil
}

func addParticipant(ctx context.Context, repo domain.ParticipantRepository, kind domain.ItemKind, id domain.ID, name string) error {
	if err := requireID(id); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("participant name is required")
	}
	if err := repo.Add(ctx, &domain.Participant{ID: id, Type: kind, Name: name}); err != nil {
		return fmt.Errorf("add participant: %w", err)
	}
	return nil
}

// span combines the form's date and time fields into a validated pair of
// TimePoint tokens.
func span(c *timepoint.Combiner, startDate, startClock, endDate, endClock string) (start, end string, err error) {
	if start, err = c.Combine(startDate, startClock); err != nil {
		return "", "", fmt.Errorf("%w: start: %w", domain.ErrValidation, err)
	}
	if end, err = c.Combine(endDate, endClock); err != nil {
		return "", "", fmt.Errorf("%w: end: %w", domain.ErrValidation, err)
	}
	s, _ := timepoint.Parse(start)
	e, _ := timepoint.Parse(end)
	if e.Before(s) {
		return "", "", invalid("end time %s is before start time %s", end, start)
	}
	return start, end, nil
}

// display renders the card strings; records with malformed timestamps get
// empty strings instead of a guessed date.
func display(startToken, endToken string, loc *time.Location) timepoint.Display {
	d, err := timepoint.DisplayTokens(startToken, endToken, loc)
	if err != nil {
		return timepoint.Display{}
	}
	return d
}

// formFields splits both tokens with the same policy Combine used, so an edit
// form round-trips. Either token failing leaves every field empty.
func formFields(c *timepoint.Combiner, startToken, endToken string) domain.FormFields {
	sd, st, err := c.Split(startToken)
	if err != nil {
		return domain.FormFields{}
	}
	ed, et, err := c.Split(endToken)
	if err != nil {
		return domain.FormFields{}
	}
	return domain.FormFields{StartDate: sd, StartTime: st, EndDate: ed, EndTime: et}
}

// startsBefore orders by start instant; malformed tokens sort last.
func startsBefore(a, b string) bool {
	ta, errA := timepoint.Parse(a)
	tb, errB := timepoint.Parse(b)
	switch {
	case errA != nil:
		return false
	case errB != nil:
		return true
	default:
		return ta.Before(tb)
	}
}
