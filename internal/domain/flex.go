package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ID identifies a record on the hub backend. The backend emits numeric ids,
// older fixtures use strings; both decode to the same value.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	s, err := flexibleString(b)
	if err != nil {
		return err
	}
	*id = ID(s)
	return nil
}

// Text is a free-form field the backend sends either as a string or as a bare
// number (difficulty weights, release years, player counts).
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	s, err := flexibleString(b)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

func flexibleString(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// Names is a participant list. The backend sends either a comma separated
// string or an array of names; both decode to the joined form.
type Names string

func (n *Names) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		kept := list[:0]
		for _, s := range list {
			if s = strings.TrimSpace(s); s != "" {
				kept = append(kept, s)
			}
		}
		*n = Names(strings.Join(kept, ", "))
		return nil
	}
	s, err := flexibleString(b)
	if err != nil {
		return err
	}
	*n = Names(s)
	return nil
}

// WithOrganizer prefixes the organizer the way game cards list who is coming.
func (n Names) WithOrganizer(organizer string) string {
	if n == "" {
		return organizer
	}
	if organizer == "" {
		return string(n)
	}
	return organizer + ", " + string(n)
}
