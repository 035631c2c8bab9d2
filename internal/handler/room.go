package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kartik-3/hall-booking/internal/model"
	"github.com/kartik-3/hall-booking/internal/queue"
	"github.com/kartik-3/hall-booking/internal/repository"
	queue_publisher "github.com/kartik-3/hall-booking/internal/service"
)

// Response strings carried over from the legacy API.  Clients match on
// these sentences, so the wording must not change.
const (
	msgNoRooms        = "No room in the system. Please create rooms first."
	msgNoSuchRoom     = "No such room in the system."
	msgNoBookings     = "No valid bookings for the current room. Please book a room first."
	msgBadRoomSpec    = "Can not create room with these specifications."
	msgBadBookingKeys = "Incorrect specifications received. Please check your request."
	msgIncomplete     = "No room available with these specifications."
	msgRoomNotFound   = "No room found with the requested room ID."
	msgOutsideHours   = "A room can be booked between 10 AM and 10 PM."
	msgSlotTaken      = "This room is not available in the given time frame."
)

// createRoomRequest is the only accepted shape for POST /rooms.
// Decoding with DisallowUnknownFields rejects any extra key, so the
// field whitelist is enforced at the deserialization boundary.
type createRoomRequest struct {
	NumberOfSeats int      `json:"numberOfSeats"`
	Amenities     []string `json:"amenities"`
	Price         float64  `json:"price"`
}

// bookRoomRequest is the only accepted shape for POST /rooms/:id.
type bookRoomRequest struct {
	CustomerName    string `json:"customerName"`
	BookedDate      string `json:"bookedDate"`
	BookedStartTime int    `json:"bookedStartTime"`
	BookedEndTime   int    `json:"bookedEndTime"`
}

// RoomHandler exposes the room registry over HTTP.  All booking and
// admission rules live in the repository; the handler binds requests,
// translates sentinel errors into the legacy response sentences and
// renders listings.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

// NewRoomHandler constructs a RoomHandler.  The repository must be non-nil.
func NewRoomHandler(rooms *repository.RoomRepo) *RoomHandler {
	if rooms == nil {
		panic("nil repository passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms}
}

// CreateRoom handles POST /rooms.  The body must contain exactly the
// numberOfSeats, amenities and price fields; anything else, or any
// value outside the registry's constraints, yields the legacy
// rejection sentence with a 500 status.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req createRoomRequest
	if err := decodeStrict(c, &req); err != nil {
		return c.String(http.StatusInternalServerError, msgBadRoomSpec)
	}
	id, err := h.Rooms.Create(repository.RoomSpec{
		NumberOfSeats: req.NumberOfSeats,
		Amenities:     req.Amenities,
		Price:         req.Price,
	})
	if err != nil {
		return c.String(http.StatusInternalServerError, msgBadRoomSpec)
	}
	return c.String(http.StatusOK,
		"Created room with room number "+strconv.Itoa(id)+" successfully.")
}

// BookRoom handles POST /rooms/:id.  The body must contain exactly the
// customerName, bookedDate, bookedStartTime and bookedEndTime fields.
// On success the reservation is committed and a RoomBookedEvent is
// published fire-and-forget; publish failures never affect the response.
func (h *RoomHandler) BookRoom(c echo.Context) error {
	var req bookRoomRequest
	if err := decodeStrict(c, &req); err != nil {
		return c.String(http.StatusInternalServerError, msgBadBookingKeys)
	}
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// a non-numeric id can never match a room
		return c.String(http.StatusInternalServerError, msgRoomNotFound)
	}
	conf, err := h.Rooms.Book(roomID, model.Reservation{
		CustomerName:    req.CustomerName,
		BookedDate:      req.BookedDate,
		BookedStartTime: req.BookedStartTime,
		BookedEndTime:   req.BookedEndTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrIncompleteBooking):
			return c.String(http.StatusInternalServerError, msgIncomplete)
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.String(http.StatusInternalServerError, msgRoomNotFound)
		case errors.Is(err, repository.ErrOutsideHours):
			return c.String(http.StatusInternalServerError, msgOutsideHours)
		case errors.Is(err, repository.ErrSlotTaken):
			return c.String(http.StatusInternalServerError, msgSlotTaken)
		}
		return c.String(http.StatusInternalServerError, msgBadBookingKeys)
	}

	go publishBooked(*conf)

	return c.String(http.StatusOK, bookingSentence(conf))
}

// ListRooms handles GET /rooms.  It renders every room with its booked
// status and, for booked rooms, every reservation's details, in
// creation order.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.Rooms.List()
	if err != nil {
		return c.String(http.StatusInternalServerError, msgNoRooms)
	}
	var b strings.Builder
	for _, room := range rooms {
		b.WriteString("<p>Room Number - " + strconv.Itoa(room.RoomID))
		b.WriteString("<br/>Booked Status - " + strconv.FormatBool(room.IsBooked))
		if room.IsBooked {
			for _, r := range room.Customers {
				writeReservation(&b, r)
			}
		}
		b.WriteString("</p>")
	}
	return c.HTML(http.StatusOK, b.String())
}

// ListReservations handles GET /rooms/:id.  It renders every
// reservation of the identified room in booking order.
func (h *RoomHandler) ListReservations(c echo.Context) error {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.String(http.StatusInternalServerError, msgNoSuchRoom)
	}
	reservations, err := h.Rooms.Reservations(roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNoBookings) {
			return c.String(http.StatusInternalServerError, msgNoBookings)
		}
		return c.String(http.StatusInternalServerError, msgNoSuchRoom)
	}
	var b strings.Builder
	for _, r := range reservations {
		b.WriteString("<p>Room Number - " + strconv.Itoa(roomID))
		writeReservation(&b, r)
		b.WriteString("</p>")
	}
	return c.HTML(http.StatusOK, b.String())
}

// decodeStrict binds the request body into v, rejecting unknown fields.
func decodeStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeReservation(b *strings.Builder, r model.Reservation) {
	b.WriteString("<br/>Customer Name - " + r.CustomerName)
	b.WriteString("<br/>Booking Data - " + r.BookedDate)
	b.WriteString("<br/>Start Time - " + strconv.Itoa(r.BookedStartTime))
	b.WriteString("<br/>End Time - " + strconv.Itoa(r.BookedEndTime))
}

func bookingSentence(conf *repository.Confirmation) string {
	return "Room number " + strconv.Itoa(conf.RoomID) +
		" booked successfully for Mr/Ms. " + conf.CustomerName +
		" on date " + conf.BookedDate +
		" from " + strconv.Itoa(conf.BookedStartTime) +
		" till " + strconv.Itoa(conf.BookedEndTime) + "."
}

func publishBooked(conf repository.Confirmation) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue_publisher.PublishRoomBooked(ctx, queue.RoomBookedEvent{
		RoomID:          conf.RoomID,
		CustomerName:    conf.CustomerName,
		BookedDate:      conf.BookedDate,
		BookedStartTime: conf.BookedStartTime,
		BookedEndTime:   conf.BookedEndTime,
		ConfirmedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}
