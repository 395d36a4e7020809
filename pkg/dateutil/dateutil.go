// Package dateutil centralises the date conventions of the farm system:
// record dates travel as dd/mm/yyyy strings and login timestamps are stamped
// in the America/Cuiaba timezone (GMT-4).
package dateutil

import "time"

// DateLayout is the wire format for record dates.
const DateLayout = "02/01/2006"

// DefaultTimezone is the IANA name used for last-login stamps.
const DefaultTimezone = "America/Cuiaba"

// Parse converts a dd/mm/yyyy string to a time. Empty input yields a nil
// time without error; malformed input yields the parse error.
func Parse(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Format renders a time as dd/mm/yyyy. Nil yields an empty string.
func Format(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// Location resolves an IANA timezone name, falling back to UTC when the name
// is empty or unknown.
func Location(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
