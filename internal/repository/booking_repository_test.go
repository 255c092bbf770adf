package repository

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteBookingIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	// The first delete removes the row; repeating it matches nothing
	// and is still a success, since the booking being absent is the
	// requested end state.
	mock.ExpectExec("DELETE FROM bookings").WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM bookings").WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM bookings").WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, removed)

	for i := 0; i < 2; i++ {
		removed, err = repo.Delete(context.Background(), 42)
		require.NoError(t, err)
		assert.False(t, removed)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingMissingMapsToNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").WithArgs(uint64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.Get(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
