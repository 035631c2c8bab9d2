// Package queue defines message payloads exchanged over the message broker.
package queue

// RoomBookedEvent is published when a reservation is admitted. It
// carries enough information for downstream consumers to log or notify
// without querying the registry.
type RoomBookedEvent struct {
	RoomID          int    `json:"room_id"`
	CustomerName    string `json:"customer_name"`
	BookedDate      string `json:"booked_date"`
	BookedStartTime int    `json:"booked_start_time"`
	BookedEndTime   int    `json:"booked_end_time"`
	ConfirmedAt     string `json:"confirmed_at"`
}
