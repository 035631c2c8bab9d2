package repository // repository holds data access logic for domain entities

import (
	"sync"

	"github.com/kartik-3/hall-booking/internal/booking"
	"github.com/kartik-3/hall-booking/internal/model"
)

// Room capacity bounds enforced at creation time.
const (
	MinSeats = 50
	MaxSeats = 500
)

// RoomSpec carries the caller-supplied attributes of a new room.
type RoomSpec struct {
	NumberOfSeats int
	Amenities     []string
	Price         float64
}

// Confirmation echoes an admitted booking back to the caller.
type Confirmation struct {
	RoomID          int    `json:"roomId"`
	CustomerName    string `json:"customerName"`
	BookedDate      string `json:"bookedDate"`
	BookedStartTime int    `json:"bookedStartTime"`
	BookedEndTime   int    `json:"bookedEndTime"`
}

// RoomRepo is the registry of rooms and their reservations.  It is the
// sole owner of all room data for the life of the process.  Echo serves
// requests on multiple goroutines, so every operation takes the mutex;
// a booking's lookup, checks and commit happen in one critical section
// so no request ever observes a half-updated room.
type RoomRepo struct {
	mu    sync.Mutex
	rooms []*model.Room
}

// NewRoomRepo constructs an empty registry.
func NewRoomRepo() *RoomRepo {
	return &RoomRepo{}
}

// Create validates the spec and appends a new room to the registry.
// Room ids are sequential and 1-based: the first room gets id 1.  It
// returns the assigned id, or ErrInvalidRoomSpec when the capacity is
// outside [MinSeats, MaxSeats], no amenity is given, or the price is
// not positive.
func (r *RoomRepo) Create(spec RoomSpec) (int, error) {
	if spec.NumberOfSeats < MinSeats || spec.NumberOfSeats > MaxSeats {
		return 0, ErrInvalidRoomSpec
	}
	if len(spec.Amenities) == 0 {
		return 0, ErrInvalidRoomSpec
	}
	if spec.Price <= 0 {
		return 0, ErrInvalidRoomSpec
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	room := &model.Room{
		RoomID:        len(r.rooms) + 1,
		NumberOfSeats: spec.NumberOfSeats,
		Amenities:     spec.Amenities,
		Price:         spec.Price,
		IsBooked:      false,
		Customers:     []model.Reservation{},
	}
	r.rooms = append(r.rooms, room)
	return room.RoomID, nil
}

// List returns a snapshot of every room in creation order, or
// ErrNoRooms when the registry is empty.  The snapshot copies each
// room and its reservations so callers cannot mutate registry state.
func (r *RoomRepo) List() ([]model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rooms) == 0 {
		return nil, ErrNoRooms
	}
	out := make([]model.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, snapshot(room))
	}
	return out, nil
}

// Reservations returns all reservations of the identified room in
// booking order.  It returns ErrRoomMissing when the id matches no
// room and ErrNoBookings when the room has no reservations yet.
func (r *RoomRepo) Reservations(roomID int) ([]model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room := r.find(roomID)
	if room == nil {
		return nil, ErrRoomMissing
	}
	if len(room.Customers) == 0 {
		return nil, ErrNoBookings
	}
	out := make([]model.Reservation, len(room.Customers))
	copy(out, room.Customers)
	return out, nil
}

// Book admits a reservation against the identified room.  Checks run
// in a fixed order: field presence, room lookup, operating hours, then
// conflict against existing reservations.  Only when every check
// passes is the reservation appended and the room marked booked; a
// rejected request leaves the room untouched.
func (r *RoomRepo) Book(roomID int, res model.Reservation) (*Confirmation, error) {
	if res.CustomerName == "" || res.BookedDate == "" ||
		res.BookedStartTime == 0 || res.BookedEndTime == 0 {
		return nil, ErrIncompleteBooking
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	room := r.find(roomID)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if !booking.WithinOperatingHours(res.BookedStartTime, res.BookedEndTime) {
		return nil, ErrOutsideHours
	}
	if booking.Conflicts(room.Customers, res) {
		return nil, ErrSlotTaken
	}

	room.Customers = append(room.Customers, res)
	room.IsBooked = true
	return &Confirmation{
		RoomID:          room.RoomID,
		CustomerName:    res.CustomerName,
		BookedDate:      res.BookedDate,
		BookedStartTime: res.BookedStartTime,
		BookedEndTime:   res.BookedEndTime,
	}, nil
}

// find scans for a room by id.  Ids are sequential and never deleted,
// so a positional lookup would behave the same; the equality scan is
// kept so both read and write paths resolve rooms identically.
func (r *RoomRepo) find(roomID int) *model.Room {
	for _, room := range r.rooms {
		if room.RoomID == roomID {
			return room
		}
	}
	return nil
}

func snapshot(room *model.Room) model.Room {
	out := *room
	out.Amenities = append([]string(nil), room.Amenities...)
	out.Customers = append([]model.Reservation(nil), room.Customers...)
	return out
}
