package model

import "time"

// Apartment is a bookable guest apartment owned by the association.
// Apartments are managed by an administrative surface outside this
// service; the booking flow only reads them.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name.
//  Description   – free-text description shown on the booking page.
//  PricePerNight – base nightly price in whole kronor, used for years
//                  without a season table.
//  MaxGuests     – maximum occupancy.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Apartment struct {
	ID            uint64    // apartments.id
	Name          string    // apartments.name
	Description   string    // apartments.description
	PricePerNight int64     // apartments.price_per_night
	MaxGuests     uint32    // apartments.max_guests
	CreatedAt     time.Time // apartments.created_at
	UpdatedAt     time.Time // apartments.updated_at
}
