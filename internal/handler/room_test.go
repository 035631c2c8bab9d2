package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartik-3/hall-booking/internal/repository"
)

func newServer() *echo.Echo {
	e := echo.New()
	h := NewRoomHandler(repository.NewRoomRepo())
	e.GET("/rooms", h.ListRooms)
	e.GET("/rooms/:id", h.ListReservations)
	e.POST("/rooms", h.CreateRoom)
	e.POST("/rooms/:id", h.BookRoom)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateRoomSuccess(t *testing.T) {
	e := newServer()
	rec := do(e, http.MethodPost, "/rooms",
		`{"numberOfSeats":100,"amenities":["wifi"],"price":20}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Created room with room number 1 successfully.", rec.Body.String())

	rec = do(e, http.MethodPost, "/rooms",
		`{"numberOfSeats":50,"amenities":["projector","whiteboard"],"price":35.5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Created room with room number 2 successfully.", rec.Body.String())
}

func TestCreateRoomRejections(t *testing.T) {
	e := newServer()
	bodies := []string{
		`{"numberOfSeats":49,"amenities":["wifi"],"price":20}`,
		`{"numberOfSeats":501,"amenities":["wifi"],"price":20}`,
		`{"numberOfSeats":100,"amenities":[],"price":20}`,
		`{"numberOfSeats":100,"price":20}`,
		`{"numberOfSeats":100,"amenities":["wifi"]}`,
		// unknown field fails even when everything else is valid
		`{"numberOfSeats":100,"amenities":["wifi"],"price":20,"color":"red"}`,
	}
	for _, body := range bodies {
		rec := do(e, http.MethodPost, "/rooms", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, body)
		assert.Equal(t, "Can not create room with these specifications.", rec.Body.String(), body)
	}
}

func TestListRoomsEmpty(t *testing.T) {
	e := newServer()
	rec := do(e, http.MethodGet, "/rooms", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "No room in the system. Please create rooms first.", rec.Body.String())
}

func TestListRoomsRendering(t *testing.T) {
	e := newServer()
	do(e, http.MethodPost, "/rooms", `{"numberOfSeats":100,"amenities":["wifi"],"price":20}`)
	do(e, http.MethodPost, "/rooms", `{"numberOfSeats":200,"amenities":["wifi"],"price":30}`)
	do(e, http.MethodPost, "/rooms/1",
		`{"customerName":"A","bookedDate":"2024-01-01","bookedStartTime":10,"bookedEndTime":12}`)

	rec := do(e, http.MethodGet, "/rooms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Room Number - 1")
	assert.Contains(t, body, "Booked Status - true")
	assert.Contains(t, body, "Customer Name - A")
	assert.Contains(t, body, "Room Number - 2")
	assert.Contains(t, body, "Booked Status - false")

	// listing twice without mutation returns identical content
	again := do(e, http.MethodGet, "/rooms", "")
	assert.Equal(t, body, again.Body.String())
}

func TestListReservations(t *testing.T) {
	e := newServer()
	rec := do(e, http.MethodGet, "/rooms/1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "No such room in the system.", rec.Body.String())

	do(e, http.MethodPost, "/rooms", `{"numberOfSeats":100,"amenities":["wifi"],"price":20}`)
	rec = do(e, http.MethodGet, "/rooms/1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "No valid bookings for the current room. Please book a room first.", rec.Body.String())

	do(e, http.MethodPost, "/rooms/1",
		`{"customerName":"A","bookedDate":"2024-01-01","bookedStartTime":10,"bookedEndTime":12}`)
	rec = do(e, http.MethodGet, "/rooms/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Room Number - 1")
	assert.Contains(t, body, "Customer Name - A")
	assert.Contains(t, body, "Start Time - 10")
	assert.Contains(t, body, "End Time - 12")
}

func TestBookRoomFailureMessages(t *testing.T) {
	e := newServer()
	do(e, http.MethodPost, "/rooms", `{"numberOfSeats":100,"amenities":["wifi"],"price":20}`)

	cases := []struct {
		name string
		path string
		body string
		want string
	}{
		{
			"unknown field",
			"/rooms/1",
			`{"customerName":"A","bookedDate":"2024-01-01","bookedStartTime":10,"bookedEndTime":12,"extra":1}`,
			"Incorrect specifications received. Please check your request.",
		},
		{
			"missing field",
			"/rooms/1",
			`{"customerName":"A","bookedDate":"2024-01-01","bookedStartTime":10}`,
			"No room available with these specifications.",
		},
		{
			"room not found",
			"/rooms/9",
			`{"customerName":"A","bookedDate":"2024-01-01","bookedStartTime":10,"bookedEndTime":12}`,
			"No room found with the requested room ID.",
		},
		{
			"before opening",
			"/rooms/1",
			`{"customerName":"A","bookedDate":"2024-01-01","bookedStartTime":9,"bookedEndTime":12}`,
			"A room can be booked between 10 AM and 10 PM.",
		},
		{
			"after closing",
			"/rooms/1",
			`{"customerName":"A","bookedDate":"2024-01-01","bookedStartTime":10,"bookedEndTime":23}`,
			"A room can be booked between 10 AM and 10 PM.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tc.want, rec.Body.String())
		})
	}
}

func TestBookingScenario(t *testing.T) {
	e := newServer()

	rec := do(e, http.MethodPost, "/rooms", `{"numberOfSeats":100,"amenities":["wifi"],"price":20}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Created room with room number 1 successfully.", rec.Body.String())

	rec = do(e, http.MethodPost, "/rooms/1",
		`{"customerName":"A","bookedDate":"2024-01-01","bookedStartTime":10,"bookedEndTime":12}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Room number 1 booked successfully for Mr/Ms. A on date 2024-01-01 from 10 till 12.", rec.Body.String())

	// overlapping slot on the same date
	rec = do(e, http.MethodPost, "/rooms/1",
		`{"customerName":"B","bookedDate":"2024-01-01","bookedStartTime":11,"bookedEndTime":13}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "This room is not available in the given time frame.", rec.Body.String())

	// touching the boundary at hour 12 also conflicts
	rec = do(e, http.MethodPost, "/rooms/1",
		`{"customerName":"C","bookedDate":"2024-01-01","bookedStartTime":12,"bookedEndTime":14}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "This room is not available in the given time frame.", rec.Body.String())

	// disjoint slot is admitted
	rec = do(e, http.MethodPost, "/rooms/1",
		`{"customerName":"D","bookedDate":"2024-01-01","bookedStartTime":13,"bookedEndTime":14}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Room number 1 booked successfully for Mr/Ms. D on date 2024-01-01 from 13 till 14.", rec.Body.String())

	// same slot on a different date is admitted
	rec = do(e, http.MethodPost, "/rooms/1",
		`{"customerName":"E","bookedDate":"2024-01-02","bookedStartTime":10,"bookedEndTime":12}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
