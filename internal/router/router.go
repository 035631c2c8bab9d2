package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/kartik-3/hall-booking/internal/handler"
)

// RegisterRoutes wires the room registry endpoints and the health
// check onto the provided Echo instance.  The four room routes mirror
// the legacy API surface exactly.
func RegisterRoutes(e *echo.Echo, h *handler.RoomHandler) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// List every room with its booking status.
	e.GET("/rooms", h.ListRooms)
	// List all reservations of one room.
	e.GET("/rooms/:id", h.ListReservations)
	// Create a new room.
	e.POST("/rooms", h.CreateRoom)
	// Book a time slot in a room.
	e.POST("/rooms/:id", h.BookRoom)
}
