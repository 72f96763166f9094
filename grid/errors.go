package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Validate.
var (
	// ErrNoZones is returned for an empty zone list.
	ErrNoZones = errors.New("grid: no zones")

	// ErrNoEnd is returned when the zone list is not terminated by End.
	ErrNoEnd = errors.New("grid: zone list not terminated by End")

	// ErrBadLabels is returned when a label list is out of order or not
	// terminated by an empty label.
	ErrBadLabels = errors.New("grid: malformed label list")
)

// ZoneOrderError reports a zone whose boundary does not exceed the one
// before it, or whose step cannot sweep.
type ZoneOrderError struct {
	Index  int
	Reason string
}

func (e *ZoneOrderError) Error() string {
	return fmt.Sprintf("grid: zone %d: %s", e.Index, e.Reason)
}

// Validate checks that the zone list is strictly increasing, has positive
// steps for swept zones and ends with End. Generate never calls it;
// malformed input produces degenerate arcs rather than errors.
func (s Spec) Validate() error {
	if len(s.Zones) == 0 {
		return ErrNoZones
	}
	last := len(s.Zones) - 1
	if s.Zones[last].TicksPerMajor != End {
		return ErrNoEnd
	}
	for i, z := range s.Zones {
		if i > 0 && z.Boundary <= s.Zones[i-1].Boundary {
			return &ZoneOrderError{Index: i, Reason: "boundary not increasing"}
		}
		if i == last {
			break
		}
		switch {
		case z.TicksPerMajor == End:
			return &ZoneOrderError{Index: i, Reason: "End before last zone"}
		case z.TicksPerMajor == SpecialCase:
		case z.TicksPerMajor < 0:
			return &ZoneOrderError{Index: i, Reason: "negative ticks per major"}
		case z.MinorStep <= 0:
			return &ZoneOrderError{Index: i, Reason: "non-positive minor step"}
		}
	}
	return nil
}

// ValidateLabels checks that labels increase strictly in value and end with
// an empty label.
func ValidateLabels(labels []Label) error {
	if len(labels) == 0 || labels[len(labels)-1].Text != "" {
		return ErrBadLabels
	}
	for i := 1; i < len(labels)-1; i++ {
		if labels[i].Text == "" || labels[i].Value <= labels[i-1].Value {
			return fmt.Errorf("%w: entry %d", ErrBadLabels, i)
		}
	}
	return nil
}
