// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published after a booking is persisted. It carries
// enough for downstream consumers to log or notify without querying the
// primary database.
type BookingCreatedEvent struct {
	BookingID        uint64 `json:"booking_id"`
	AdminID          string `json:"admin_id"`
	WorkerID         string `json:"worker_id"`
	GuestName        string `json:"guest_name"`
	NumberOfPersons  int    `json:"number_of_persons"`
	BookingType      string `json:"booking_type"`
	BookingDate      string `json:"booking_date"`
	InTime           string `json:"in_time"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
}
