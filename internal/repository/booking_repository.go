package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/almhaga/brf-intranet/internal/booking"
	"github.com/almhaga/brf-intranet/internal/model"
)

// BookingRepo provides CRUD operations for guest-apartment bookings.
// Start and end dates are stored as DATE columns and surfaced as
// booking.Date values, so no timezone conversion can shift a stay.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle for transaction management.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// BookingDetail is a booking joined with the resident who made it,
// returned by List for display in the booking table.
type BookingDetail struct {
	ID          uint64 `json:"id"`
	ApartmentID uint64 `json:"apartment_id"`
	UserID      uint64 `json:"user_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	GuestName   string `json:"guest_name"`
	Phone       string `json:"phone_number,omitempty"`
	Notes       string `json:"notes,omitempty"`
	UserEmail   string `json:"user_email"`
	UserName    string `json:"user_full_name,omitempty"`
	CreatedAt   string `json:"created_at"`
}

const bookingColumns = `b.id, b.apartment_id, b.user_id, b.start_date, b.end_date,
                        b.status, b.guest_name, b.phone_number, b.notes, b.created_at`

// List returns bookings joined with user info, ordered by start date
// ascending.  Pass apartmentID 0 to list bookings for all apartments.
func (r *BookingRepo) List(ctx context.Context, apartmentID uint64) ([]BookingDetail, error) {
	q := `SELECT ` + bookingColumns + `, u.email, u.full_name
	      FROM bookings b
	      JOIN users u ON u.id = b.user_id`
	args := []interface{}{}
	if apartmentID != 0 {
		q += ` WHERE b.apartment_id = ?`
		args = append(args, apartmentID)
	}
	q += ` ORDER BY b.start_date ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]BookingDetail, 0)
	for rows.Next() {
		var (
			d          BookingDetail
			start, end time.Time
			phone      sql.NullString
			notes      sql.NullString
			fullName   sql.NullString
			createdAt  time.Time
		)
		if err := rows.Scan(
			&d.ID, &d.ApartmentID, &d.UserID, &start, &end,
			&d.Status, &d.GuestName, &phone, &notes, &createdAt,
			&d.UserEmail, &fullName,
		); err != nil {
			return nil, err
		}
		d.StartDate = booking.DateOf(start).String()
		d.EndDate = booking.DateOf(end).String()
		d.Phone = phone.String
		d.Notes = notes.String
		d.UserName = fullName.String
		d.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		details = append(details, d)
	}
	return details, rows.Err()
}

// Stays returns the date ranges of all bookings for an apartment in
// the availability engine's form.  Rejected bookings are included with
// their flag set; the engine ignores them.
func (r *BookingRepo) Stays(ctx context.Context, apartmentID uint64) ([]booking.Stay, error) {
	const q = `SELECT start_date, end_date, status FROM bookings WHERE apartment_id = ?`
	rows, err := r.db.QueryContext(ctx, q, apartmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStays(rows)
}

func scanStays(rows *sql.Rows) ([]booking.Stay, error) {
	stays := make([]booking.Stay, 0)
	for rows.Next() {
		var (
			start, end time.Time
			status     string
		)
		if err := rows.Scan(&start, &end, &status); err != nil {
			return nil, err
		}
		stays = append(stays, booking.Stay{
			Start:    booking.DateOf(start),
			End:      booking.DateOf(end),
			Rejected: status == model.BookingRejected,
		})
	}
	return stays, rows.Err()
}

// Create inserts a new booking after re-checking availability inside a
// transaction.  The apartment's booking rows are read FOR UPDATE so
// that two residents confirming overlapping stays at the same moment
// serialize at the database; the loser gets ErrBookingConflict instead
// of a double booking.  On success the generated ID and creation
// timestamp are populated on b.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const lockQ = `SELECT start_date, end_date, status FROM bookings
	               WHERE apartment_id = ? FOR UPDATE`
	rows, err := tx.QueryContext(ctx, lockQ, b.ApartmentID)
	if err != nil {
		return err
	}
	stays, err := scanStays(rows)
	rows.Close()
	if err != nil {
		return err
	}
	if booking.HasConflict(stays, b.StartDate, b.EndDate) {
		return ErrBookingConflict
	}

	const ins = `INSERT INTO bookings
	             (apartment_id, user_id, start_date, end_date, status, guest_name, phone_number, notes)
	             VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, ins,
		b.ApartmentID, b.UserID, b.StartDate.String(), b.EndDate.String(),
		b.Status, b.GuestName, b.Phone, b.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const sel = `SELECT created_at FROM bookings WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, b.ID).Scan(&b.CreatedAt); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Get returns a single booking by id, or ErrNotFound.
func (r *BookingRepo) Get(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT id, apartment_id, user_id, start_date, end_date, status,
	                  guest_name, phone_number, notes, created_at
	           FROM bookings WHERE id = ?`
	var (
		b          model.Booking
		start, end time.Time
		phone      sql.NullString
		notes      sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.ApartmentID, &b.UserID, &start, &end, &b.Status,
		&b.GuestName, &phone, &notes, &b.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b.StartDate = booking.DateOf(start)
	b.EndDate = booking.DateOf(end)
	b.Phone = phone.String
	b.Notes = notes.String
	return &b, nil
}

// Delete removes a booking.  Deleting a booking that no longer exists
// is a success: the desired end state, the reservation being absent,
// already holds.  The returned flag reports whether a row was removed.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
