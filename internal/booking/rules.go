// Package booking holds the conflict rules the registry applies before
// admitting a reservation.  The rules are pure functions over the model
// types so they can be exercised without a registry or HTTP layer.
package booking

import "github.com/kartik-3/hall-booking/internal/model"

// Operating-hours window.  A booking may start between 10 AM and 9 PM
// and must end between 11 AM and 10 PM.
const (
	OpenHour      = 10
	LastStartHour = 21
	FirstEndHour  = 11
	CloseHour     = 22
)

// WithinOperatingHours reports whether the requested window lies inside
// the venue's operating hours.  It deliberately does not require
// start < end; inverted windows are handled by the conflict rule.
func WithinOperatingHours(start, end int) bool {
	return start >= OpenHour && start <= LastStartHour &&
		end >= FirstEndHour && end <= CloseHour
}

// Conflicts reports whether req may not be admitted against the given
// existing reservations.  The rule only applies when at least one
// reservation exists; callers skip it for an empty room.
//
// A request conflicts when its window is inverted (start >= end), or
// when it touches any existing reservation on the same date.  Boundaries
// are inclusive on both ends: a slot ending at hour 12 and one starting
// at hour 12 conflict.
func Conflicts(existing []model.Reservation, req model.Reservation) bool {
	if len(existing) == 0 {
		return false
	}
	if req.BookedStartTime >= req.BookedEndTime {
		return true
	}
	for _, r := range existing {
		if r.BookedDate != req.BookedDate {
			continue
		}
		if overlapsInclusive(req, r) {
			return true
		}
	}
	return false
}

// overlapsInclusive reports whether either endpoint of req falls inside
// the closed interval [r.start, r.end].
func overlapsInclusive(req, r model.Reservation) bool {
	if req.BookedStartTime >= r.BookedStartTime && req.BookedStartTime <= r.BookedEndTime {
		return true
	}
	if req.BookedEndTime >= r.BookedStartTime && req.BookedEndTime <= r.BookedEndTime {
		return true
	}
	return false
}
