// Package repository owns the in-memory room registry and defines the
// sentinel errors shared by its operations. These values let the
// handler layer distinguish failure kinds and translate each one into
// the response the legacy API promised, without inspecting error text.
package repository

import "errors"

// ErrNoRooms is returned when a listing is requested before any room
// has been created.
var ErrNoRooms = errors.New("no rooms in registry")

// ErrRoomMissing is returned by reservation listing when the requested
// room id matches no room.
var ErrRoomMissing = errors.New("no such room")

// ErrNoBookings is returned when a room exists but holds no
// reservations.
var ErrNoBookings = errors.New("room has no bookings")

// ErrInvalidRoomSpec is returned when a room-creation request violates
// the capacity, amenity or price constraints.
var ErrInvalidRoomSpec = errors.New("invalid room specification")

// ErrIncompleteBooking is returned when a booking request is missing
// one of its required fields.
var ErrIncompleteBooking = errors.New("incomplete booking request")

// ErrRoomNotFound is returned by booking when the requested room id
// matches no room.
var ErrRoomNotFound = errors.New("room not found")

// ErrOutsideHours is returned when the requested window falls outside
// the 10 AM to 10 PM operating hours.
var ErrOutsideHours = errors.New("outside operating hours")

// ErrSlotTaken is returned when the requested window conflicts with an
// existing reservation, or is inverted while the room already has
// bookings.
var ErrSlotTaken = errors.New("time slot unavailable")
