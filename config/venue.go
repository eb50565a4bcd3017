package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"boardbevy/internal/schedule"

	"gopkg.in/yaml.v3"
)

// Venue describes the shop: where calendar entries point to, when open-table
// games may start, and how large a party must be before it needs the room.
type Venue struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`

	// OpeningHours are standard 5-field cron specs, one per block of 15-minute
	// start slots, e.g. "*/15 16-23 * * 3-5".
	OpeningHours []string `yaml:"opening_hours"`

	RoomBookingThreshold int `yaml:"room_booking_threshold"`
}

// DefaultVenue returns the built-in venue used when no venue file is configured.
func DefaultVenue() *Venue {
	return &Venue{
		Name:                 "Board & Bevy",
		Location:             "141 E Summit St, Kent, OH 44240",
		OpeningHours:         append([]string(nil), schedule.DefaultOpeningHours...),
		RoomBookingThreshold: 10,
	}
}

// Normalize fills in missing/zero values from DefaultVenue.
func (v *Venue) Normalize() {
	def := DefaultVenue()
	if v.Name == "" {
		v.Name = def.Name
	}
	if v.Location == "" {
		v.Location = def.Location
	}
	if len(v.OpeningHours) == 0 {
		v.OpeningHours = def.OpeningHours
	}
	if v.RoomBookingThreshold <= 0 {
		v.RoomBookingThreshold = def.RoomBookingThreshold
	}
}

// LoadVenue reads a YAML venue file. An empty path or a missing file yields
// DefaultVenue; a file that does not parse is an error.
func LoadVenue(path string) (*Venue, error) {
	if path == "" {
		return DefaultVenue(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultVenue(), nil
		}
		return nil, fmt.Errorf("read venue file: %w", err)
	}
	var v Venue
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse venue file %s: %w", path, err)
	}
	v.Normalize()
	return &v, nil
}
