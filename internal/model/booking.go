package model

import (
	"time"

	"github.com/almhaga/brf-intranet/internal/booking"
)

// Booking statuses.  Bookings created through the API are confirmed
// immediately; pending and rejected exist for rows managed elsewhere
// and rejected bookings never block the calendar.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
)

// Booking records a guest-apartment stay as stored in the `bookings`
// table.  StartDate and EndDate are inclusive calendar days; the end
// date is the checkout day and is not charged.
//
// Fields:
//  ID          – primary key identifier.
//  ApartmentID – apartment being booked.
//  UserID      – resident who made the booking.
//  StartDate   – first day of the stay (inclusive).
//  EndDate     – checkout day (inclusive in the blocked range).
//  Status      – pending, confirmed or rejected.
//  GuestName   – name of the guest staying in the apartment.
//  Phone       – optional contact phone number.
//  Notes       – optional free-text notes.
//  CreatedAt   – creation timestamp.
type Booking struct {
	ID          uint64       // bookings.id
	ApartmentID uint64       // bookings.apartment_id
	UserID      uint64       // bookings.user_id
	StartDate   booking.Date // bookings.start_date (DATE)
	EndDate     booking.Date // bookings.end_date (DATE)
	Status      string       // bookings.status
	GuestName   string       // bookings.guest_name
	Phone       string       // bookings.phone_number
	Notes       string       // bookings.notes
	CreatedAt   time.Time    // bookings.created_at
}
