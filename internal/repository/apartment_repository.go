package repository

import (
	"context"
	"database/sql"

	"github.com/almhaga/brf-intranet/internal/model"
)

// ApartmentRepo reads guest apartments.  Apartments are managed by an
// external administrative surface, so this repository is read-only.
type ApartmentRepo struct {
	db *sql.DB
}

// NewApartmentRepo returns an ApartmentRepo bound to the given database.
func NewApartmentRepo(db *sql.DB) *ApartmentRepo { return &ApartmentRepo{db: db} }

const apartmentColumns = `id, name, description, price_per_night, max_guests, created_at, updated_at`

// List returns all apartments ordered by name.
func (r *ApartmentRepo) List(ctx context.Context) ([]model.Apartment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+apartmentColumns+` FROM apartments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Apartment, 0)
	for rows.Next() {
		var a model.Apartment
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.PricePerNight,
			&a.MaxGuests, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Get returns one apartment by id, or ErrNotFound.
func (r *ApartmentRepo) Get(ctx context.Context, id uint64) (*model.Apartment, error) {
	var a model.Apartment
	err := r.db.QueryRowContext(ctx,
		`SELECT `+apartmentColumns+` FROM apartments WHERE id = ?`, id).
		Scan(&a.ID, &a.Name, &a.Description, &a.PricePerNight,
			&a.MaxGuests, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
