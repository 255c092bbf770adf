package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/almhaga/brf-intranet/internal/booking"
	"github.com/almhaga/brf-intranet/internal/model"
	"github.com/almhaga/brf-intranet/internal/repository"
)

// SeasonHandler serves season prices and week assignments.  Reading is
// open to all residents; mutation is admin-only and guarded in the
// router.
type SeasonHandler struct {
	Seasons *repository.SeasonRepo
}

func NewSeasonHandler(s *repository.SeasonRepo) *SeasonHandler {
	return &SeasonHandler{Seasons: s}
}

type seasonSettingResp struct {
	Year        int   `json:"year"`
	LowPrice    int64 `json:"low_season_price"`
	HighPrice   int64 `json:"high_season_price"`
	TennisPrice int64 `json:"tennis_season_price"`
}

type seasonWeekResp struct {
	Year       int    `json:"year"`
	WeekNumber int    `json:"week_number"`
	SeasonType string `json:"season_type"`
}

// List returns every year's prices and all week assignments in one
// response, enough to rebuild the pricing table client-side.
func (h *SeasonHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	settings, err := h.Seasons.ListSettings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list seasons failed"})
	}
	weeks, err := h.Seasons.ListWeeks(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list season weeks failed"})
	}

	settingsOut := make([]seasonSettingResp, 0, len(settings))
	for _, s := range settings {
		settingsOut = append(settingsOut, seasonSettingResp{
			Year:        s.Year,
			LowPrice:    s.LowPrice,
			HighPrice:   s.HighPrice,
			TennisPrice: s.TennisPrice,
		})
	}
	weeksOut := make([]seasonWeekResp, 0, len(weeks))
	for _, w := range weeks {
		weeksOut = append(weeksOut, seasonWeekResp{
			Year:       w.Year,
			WeekNumber: w.WeekNumber,
			SeasonType: w.SeasonType,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"settings": settingsOut,
		"weeks":    weeksOut,
	})
}

type createSeasonReq struct {
	Year        int   `json:"year"`
	LowPrice    int64 `json:"low_season_price"`
	HighPrice   int64 `json:"high_season_price"`
	TennisPrice int64 `json:"tennis_season_price"`
}

// CreateSetting adds a new year's season table.  Unlike the PUT
// upsert, creating a year that already has one is a 409.
func (h *SeasonHandler) CreateSetting(c echo.Context) error {
	var req createSeasonReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Year < 1970 || req.Year > 2200 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
	}
	if req.LowPrice < 0 || req.HighPrice < 0 || req.TennisPrice < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "prices must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := model.SeasonSetting{
		Year:        req.Year,
		LowPrice:    req.LowPrice,
		HighPrice:   req.HighPrice,
		TennisPrice: req.TennisPrice,
	}
	if err := h.Seasons.CreateSetting(ctx, &s); err != nil {
		if err == repository.ErrDuplicateYear {
			return c.JSON(http.StatusConflict, echo.Map{"error": "season table for year already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create season failed"})
	}
	return c.JSON(http.StatusCreated, seasonSettingResp{
		Year:        s.Year,
		LowPrice:    s.LowPrice,
		HighPrice:   s.HighPrice,
		TennisPrice: s.TennisPrice,
	})
}

type upsertSeasonReq struct {
	LowPrice    int64 `json:"low_season_price"`
	HighPrice   int64 `json:"high_season_price"`
	TennisPrice int64 `json:"tennis_season_price"`
}

// UpsertSetting creates or updates one year's season prices.  Creating
// a year that appears concurrently still cannot produce two tables:
// the unique key makes the second insert fail and the request retries
// as an update.
func (h *SeasonHandler) UpsertSetting(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > 2200 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
	}
	var req upsertSeasonReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.LowPrice < 0 || req.HighPrice < 0 || req.TennisPrice < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "prices must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := model.SeasonSetting{
		Year:        year,
		LowPrice:    req.LowPrice,
		HighPrice:   req.HighPrice,
		TennisPrice: req.TennisPrice,
	}

	if _, err := h.Seasons.GetSetting(ctx, year); err == repository.ErrNotFound {
		switch err := h.Seasons.CreateSetting(ctx, &s); err {
		case nil:
			return c.JSON(http.StatusCreated, req.toResp(year))
		case repository.ErrDuplicateYear:
			// Lost a create race; fall through to update.
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create season failed"})
		}
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load season failed"})
	}

	if err := h.Seasons.UpdateSetting(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update season failed"})
	}
	return c.JSON(http.StatusOK, req.toResp(year))
}

func (r upsertSeasonReq) toResp(year int) seasonSettingResp {
	return seasonSettingResp{
		Year:        year,
		LowPrice:    r.LowPrice,
		HighPrice:   r.HighPrice,
		TennisPrice: r.TennisPrice,
	}
}

type replaceWeeksReq struct {
	Weeks []struct {
		WeekNumber int    `json:"week_number"`
		SeasonType string `json:"season_type"`
	} `json:"weeks"`
}

// ReplaceWeeks swaps one year's week-to-season assignments for the
// submitted set.  Weeks not listed fall back to low season.
func (h *SeasonHandler) ReplaceWeeks(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > 2200 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
	}
	var req replaceWeeksReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	maxWeek := booking.WeeksInYear(year)
	weeks := make([]model.SeasonWeek, 0, len(req.Weeks))
	seen := make(map[int]bool, len(req.Weeks))
	for _, w := range req.Weeks {
		if w.WeekNumber < 1 || w.WeekNumber > maxWeek {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "week_number out of range"})
		}
		if !booking.ValidSeason(booking.SeasonKind(w.SeasonType)) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid season_type"})
		}
		if seen[w.WeekNumber] {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "duplicate week_number"})
		}
		seen[w.WeekNumber] = true
		weeks = append(weeks, model.SeasonWeek{
			Year:       year,
			WeekNumber: w.WeekNumber,
			SeasonType: w.SeasonType,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Seasons.ReplaceWeeks(ctx, year, weeks); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "replace weeks failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"year": year, "weeks": len(weeks)})
}
