package model

import "time"

// SeasonSetting holds one year's nightly prices as stored in the
// `season_settings` table.  At most one row exists per year.
//
// Fields:
//  ID          – primary key identifier.
//  Year        – calendar year the prices apply to.
//  LowPrice    – low season nightly price in whole kronor.
//  HighPrice   – high season nightly price.
//  TennisPrice – tennis season nightly price.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type SeasonSetting struct {
	ID          uint64    // season_settings.id
	Year        int       // season_settings.year
	LowPrice    int64     // season_settings.low_season_price
	HighPrice   int64     // season_settings.high_season_price
	TennisPrice int64     // season_settings.tennis_season_price
	CreatedAt   time.Time // season_settings.created_at
	UpdatedAt   time.Time // season_settings.updated_at
}

// SeasonWeek assigns one ISO week of a year to a season kind.  Weeks
// without a row default to low season.
type SeasonWeek struct {
	ID         uint64 // season_weeks.id
	Year       int    // season_weeks.year
	WeekNumber int    // season_weeks.week_number
	SeasonType string // season_weeks.season_type (low|high|tennis)
}
