package model

// Room represents a bookable hall in the registry.  Rooms are created
// once and live for the duration of the process; the registry assigns
// sequential identifiers starting at 1 and never reuses them.
//
// Fields:
//  RoomID        – sequential identifier, 1-based.
//  NumberOfSeats – seating capacity, between 50 and 500 inclusive.
//  Amenities     – at least one amenity label.
//  Price         – positive price for the room.
//  IsBooked      – true once the room holds at least one reservation.
//  Customers     – reservations in booking order.
type Room struct {
	RoomID        int           `json:"roomId"`
	NumberOfSeats int           `json:"numberOfSeats"`
	Amenities     []string      `json:"amenities"`
	Price         float64       `json:"price"`
	IsBooked      bool          `json:"isBooked"`
	Customers     []Reservation `json:"customers"`
}

// Reservation records a single booked time slot in a room.  Dates are
// opaque strings compared only for equality; start and end times are
// hours of the day on a 24-hour clock.
//
// Fields:
//  CustomerName    – name of the booking customer, never empty.
//  BookedDate      – opaque date label, equality comparison only.
//  BookedStartTime – starting hour, 10..21.
//  BookedEndTime   – ending hour, 11..22.
type Reservation struct {
	CustomerName    string `json:"customerName"`
	BookedDate      string `json:"bookedDate"`
	BookedStartTime int    `json:"bookedStartTime"`
	BookedEndTime   int    `json:"bookedEndTime"`
}
