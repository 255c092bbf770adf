package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almhaga/brf-intranet/internal/model"
	"github.com/almhaga/brf-intranet/internal/repository"
)

func TestParseStayRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		wantErr    string
	}{
		{"valid two nights", "2025-07-04", "2025-07-06", ""},
		{"single night", "2025-07-04", "2025-07-05", ""},
		{"missing start", "", "2025-07-06", "start and end dates required"},
		{"missing end", "2025-07-04", "", "start and end dates required"},
		{"bad start format", "04/07/2025", "2025-07-06", "invalid start date"},
		{"bad end format", "2025-07-04", "July 6", "invalid end date"},
		{"zero nights", "2025-07-04", "2025-07-04", "end date must be after start date"},
		{"reversed", "2025-07-06", "2025-07-04", "end date must be after start date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, errMsg := parseStayRange(tc.start, tc.end)
			assert.Equal(t, tc.wantErr, errMsg)
			if tc.wantErr == "" {
				assert.Equal(t, tc.start, start.String())
				assert.Equal(t, tc.end, end.String())
				assert.True(t, end.After(start))
			}
		})
	}
}

func TestDeleteMissingBookingReturnsNoContent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h := NewBookingHandler(
		repository.NewBookingRepo(db),
		repository.NewApartmentRepo(db),
		repository.NewSeasonRepo(db),
		repository.NewUserRepo(db),
	)
	e := echo.New()

	// Cancelling an id that no longer exists succeeds every time: the
	// reservation being gone is already the requested end state.
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").WithArgs(uint64(42)).
			WillReturnError(sql.ErrNoRows)

		req := httptest.NewRequest(http.MethodDelete, "/v1/bookings/42", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/bookings/:id")
		c.SetParamNames("id")
		c.SetParamValues("42")
		c.Set("user_id", uint64(7))
		c.Set("role", model.RoleMember)

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
