// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published when a guest-apartment booking is
// confirmed.  It carries enough detail for downstream consumers to
// log or notify without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID     uint64 `json:"booking_id"`
	UserID        uint64 `json:"user_id"`
	GuestName     string `json:"guest_name"`
	GuestEmail    string `json:"guest_email"`
	ApartmentID   uint64 `json:"apartment_id"`
	ApartmentName string `json:"apartment_name"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Nights        int    `json:"nights"`
	TotalPrice    int64  `json:"total_price"`
	ConfirmedAt   string `json:"confirmed_at"`
}
