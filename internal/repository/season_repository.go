package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/almhaga/brf-intranet/internal/booking"
	"github.com/almhaga/brf-intranet/internal/model"
)

// SeasonRepo manages per-year season prices and the week-to-season
// assignments that drive the pricing resolver.  The `season_settings`
// table carries a unique key on year, so at most one table per year
// can exist.
type SeasonRepo struct {
	db *sql.DB
}

// NewSeasonRepo returns a SeasonRepo bound to the given database.
func NewSeasonRepo(db *sql.DB) *SeasonRepo { return &SeasonRepo{db: db} }

const seasonColumns = `id, year, low_season_price, high_season_price, tennis_season_price, created_at, updated_at`

// ListSettings returns all season tables, newest year first.
func (r *SeasonRepo) ListSettings(ctx context.Context) ([]model.SeasonSetting, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+seasonColumns+` FROM season_settings ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SeasonSetting, 0)
	for rows.Next() {
		var s model.SeasonSetting
		if err := rows.Scan(&s.ID, &s.Year, &s.LowPrice, &s.HighPrice,
			&s.TennisPrice, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSetting returns the season table for a year, or ErrNotFound.
func (r *SeasonRepo) GetSetting(ctx context.Context, year int) (*model.SeasonSetting, error) {
	var s model.SeasonSetting
	err := r.db.QueryRowContext(ctx,
		`SELECT `+seasonColumns+` FROM season_settings WHERE year = ?`, year).
		Scan(&s.ID, &s.Year, &s.LowPrice, &s.HighPrice,
			&s.TennisPrice, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSetting inserts a season table for a year.  A second table for
// the same year violates the unique key and maps to ErrDuplicateYear.
func (r *SeasonRepo) CreateSetting(ctx context.Context, s *model.SeasonSetting) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO season_settings (year, low_season_price, high_season_price, tennis_season_price)
		 VALUES (?, ?, ?, ?)`,
		s.Year, s.LowPrice, s.HighPrice, s.TennisPrice)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicateYear
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// UpdateSetting overwrites the prices of an existing year's table.
// Returns ErrNotFound when the year has no table.
func (r *SeasonRepo) UpdateSetting(ctx context.Context, s *model.SeasonSetting) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE season_settings
		 SET low_season_price = ?, high_season_price = ?, tennis_season_price = ?, updated_at = NOW()
		 WHERE year = ?`,
		s.LowPrice, s.HighPrice, s.TennisPrice, s.Year)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish "no such year" from "prices already identical".
		if _, err := r.GetSetting(ctx, s.Year); err != nil {
			return err
		}
	}
	return nil
}

// ListWeeks returns every explicit week-to-season assignment.
func (r *SeasonRepo) ListWeeks(ctx context.Context) ([]model.SeasonWeek, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, year, week_number, season_type FROM season_weeks ORDER BY year, week_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SeasonWeek, 0)
	for rows.Next() {
		var w model.SeasonWeek
		if err := rows.Scan(&w.ID, &w.Year, &w.WeekNumber, &w.SeasonType); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// ReplaceWeeks swaps a year's week assignments for a new set inside a
// transaction, so readers never observe a half-written season map.
func (r *SeasonRepo) ReplaceWeeks(ctx context.Context, year int, weeks []model.SeasonWeek) error {
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

	if _, err := tx.ExecContext(ctx, `DELETE FROM season_weeks WHERE year = ?`, year); err != nil {
		return err
	}
	if len(weeks) > 0 {
		q := `INSERT INTO season_weeks (year, week_number, season_type) VALUES `
		args := make([]interface{}, 0, len(weeks)*3)
		for i, w := range weeks {
			if i > 0 {
				q += ","
			}
			q += "(?, ?, ?)"
			args = append(args, year, w.WeekNumber, w.SeasonType)
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// PriceTable assembles the pricing resolver's input from the season
// tables and week assignments, with the apartment's base price as the
// fallback for years without a table.
func (r *SeasonRepo) PriceTable(ctx context.Context, basePrice int64) (*booking.PriceTable, error) {
	settings, err := r.ListSettings(ctx)
	if err != nil {
		return nil, err
	}
	weeks, err := r.ListWeeks(ctx)
	if err != nil {
		return nil, err
	}

	pt := &booking.PriceTable{
		Rates:     make(map[int]booking.Rates, len(settings)),
		Seasons:   make(map[int]map[int]booking.SeasonKind),
		BasePrice: basePrice,
	}
	for _, s := range settings {
		pt.Rates[s.Year] = booking.Rates{
			Year:   s.Year,
			Low:    s.LowPrice,
			High:   s.HighPrice,
			Tennis: s.TennisPrice,
		}
	}
	for _, w := range weeks {
		byWeek, ok := pt.Seasons[w.Year]
		if !ok {
			byWeek = make(map[int]booking.SeasonKind)
			pt.Seasons[w.Year] = byWeek
		}
		byWeek[w.WeekNumber] = booking.SeasonKind(w.SeasonType)
	}
	return pt, nil
}
