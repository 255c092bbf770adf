package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/almhaga/brf-intranet/internal/booking"
	"github.com/almhaga/brf-intranet/internal/model"
	"github.com/almhaga/brf-intranet/internal/queue"
	"github.com/almhaga/brf-intranet/internal/repository"
	"github.com/almhaga/brf-intranet/internal/service"
)

// BookingHandler serves the booking calendar, price quotes and the
// booking lifecycle.
type BookingHandler struct {
	Bookings   *repository.BookingRepo
	Apartments *repository.ApartmentRepo
	Seasons    *repository.SeasonRepo
	Users      *repository.UserRepo
}

func NewBookingHandler(b *repository.BookingRepo, a *repository.ApartmentRepo, s *repository.SeasonRepo, u *repository.UserRepo) *BookingHandler {
	return &BookingHandler{Bookings: b, Apartments: a, Seasons: s, Users: u}
}

// ListForApartment returns all bookings for one apartment, start date
// ascending, joined with the booking resident.
func (h *BookingHandler) ListForApartment(c echo.Context) error {
	apartmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || apartmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid apartment id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Apartments.Get(ctx, apartmentID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "apartment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load apartment failed"})
	}

	details, err := h.Bookings.List(ctx, apartmentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": details})
}

// Calendar returns the month grid for an apartment: Monday-first rows
// of day cells carrying ISO week numbers and booked markers.  Optional
// sel_start/sel_end query params mark a tentative selection.
func (h *BookingHandler) Calendar(c echo.Context) error {
	apartmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || apartmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid apartment id"})
	}
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 1970 || year > 2200 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
	}
	monthNum, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month"})
	}

	var sel booking.Selection
	if s := c.QueryParam("sel_start"); s != "" {
		d, err := booking.ParseDate(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sel_start"})
		}
		sel.Start = d
	}
	if s := c.QueryParam("sel_end"); s != "" {
		d, err := booking.ParseDate(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sel_end"})
		}
		sel.End = d
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Apartments.Get(ctx, apartmentID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "apartment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load apartment failed"})
	}
	stays, err := h.Bookings.Stays(ctx, apartmentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}

	today := booking.DateOf(time.Now().UTC())
	grid := booking.BuildMonthGrid(year, time.Month(monthNum), stays, sel, today)
	return c.JSON(http.StatusOK, grid)
}

type quoteResp struct {
	ApartmentID uint64       `json:"apartment_id"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Nights      int          `json:"nights"`
	PerNight    []nightPrice `json:"per_night"`
	TotalPrice  int64        `json:"total_price"`
}

type nightPrice struct {
	Date   string             `json:"date"`
	Week   int                `json:"week"`
	Season booking.SeasonKind `json:"season"`
	Price  int64              `json:"price"`
}

// Quote prices a stay without creating anything.  The checkout day is
// not charged; each night is priced by its own ISO week's season.
func (h *BookingHandler) Quote(c echo.Context) error {
	apartmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || apartmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid apartment id"})
	}
	start, end, errMsg := parseStayRange(c.QueryParam("start"), c.QueryParam("end"))
	if errMsg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errMsg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	apartment, err := h.Apartments.Get(ctx, apartmentID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "apartment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load apartment failed"})
	}
	table, err := h.Seasons.PriceTable(ctx, apartment.PricePerNight)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load prices failed"})
	}

	resp := quoteResp{
		ApartmentID: apartmentID,
		StartDate:   start.String(),
		EndDate:     end.String(),
		Nights:      booking.Nights(start, end),
	}
	for d := start; d.Before(end); d = d.AddDays(1) {
		week := booking.ISOWeek(d)
		price := table.PriceForNight(d)
		resp.PerNight = append(resp.PerNight, nightPrice{
			Date:   d.String(),
			Week:   week,
			Season: table.SeasonForWeek(d.Year, week),
			Price:  price,
		})
		resp.TotalPrice += price
	}
	return c.JSON(http.StatusOK, resp)
}

type createBookingReq struct {
	ApartmentID uint64 `json:"apartment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GuestName   string `json:"guest_name"`
	Phone       string `json:"phone_number"`
	Notes       string `json:"notes"`
}

type bookingResp struct {
	ID          uint64 `json:"id"`
	ApartmentID uint64 `json:"apartment_id"`
	UserID      uint64 `json:"user_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	GuestName   string `json:"guest_name"`
	Phone       string `json:"phone_number,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Nights      int    `json:"nights"`
	TotalPrice  int64  `json:"total_price"`
	CreatedAt   string `json:"created_at"`
}

// Create books a stay for the authenticated resident.  Availability is
// re-checked inside the insert transaction, so a stale calendar can
// never produce a double booking; the loser gets 409.
func (h *BookingHandler) Create(c echo.Context) error {
	uid, _ := c.Get("user_id").(uint64)

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ApartmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "apartment_id required"})
	}
	req.GuestName = strings.TrimSpace(req.GuestName)
	if req.GuestName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest_name required"})
	}
	start, end, errMsg := parseStayRange(req.StartDate, req.EndDate)
	if errMsg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errMsg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	apartment, err := h.Apartments.Get(ctx, req.ApartmentID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "apartment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load apartment failed"})
	}

	// Cheap pre-check against fresh data for the common case; the
	// insert transaction re-checks under lock either way.
	stays, err := h.Bookings.Stays(ctx, req.ApartmentID)
	if err != nil {
		c.Logger().Warnf("booking pre-check skipped for apartment %d: %v", req.ApartmentID, err)
	} else if booking.HasConflict(stays, start, end) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "dates overlap an existing booking"})
	}

	b := &model.Booking{
		ApartmentID: req.ApartmentID,
		UserID:      uid,
		StartDate:   start,
		EndDate:     end,
		Status:      model.BookingConfirmed,
		GuestName:   req.GuestName,
		Phone:       strings.TrimSpace(req.Phone),
		Notes:       strings.TrimSpace(req.Notes),
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		if err == repository.ErrBookingConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "dates overlap an existing booking"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	table, err := h.Seasons.PriceTable(ctx, apartment.PricePerNight)
	var total int64
	if err == nil {
		total = table.TotalPrice(start, end)
	}

	h.publishConfirmed(ctx, b, apartment, total)

	return c.JSON(http.StatusCreated, bookingResp{
		ID:          b.ID,
		ApartmentID: b.ApartmentID,
		UserID:      b.UserID,
		StartDate:   b.StartDate.String(),
		EndDate:     b.EndDate.String(),
		Status:      b.Status,
		GuestName:   b.GuestName,
		Phone:       b.Phone,
		Notes:       b.Notes,
		Nights:      booking.Nights(start, end),
		TotalPrice:  total,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// Delete cancels a booking.  Residents may only cancel their own;
// admins may cancel any.  Deleting an absent booking still returns
// 204: the reservation being gone is the requested end state.
func (h *BookingHandler) Delete(c echo.Context) error {
	uid, _ := c.Get("user_id").(uint64)
	role, _ := c.Get("role").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.Get(ctx, id)
	if err == repository.ErrNotFound {
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
	}
	if b.UserID != uid && role != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	if _, err := h.Bookings.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete booking failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// publishConfirmed emits the booking.confirmed event.  Publishing is
// best-effort and never fails the request.
func (h *BookingHandler) publishConfirmed(ctx context.Context, b *model.Booking, apartment *model.Apartment, total int64) {
	var guestEmail string
	if u, err := h.Users.GetByID(ctx, b.UserID); err == nil {
		guestEmail = u.Email
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:     b.ID,
		UserID:        b.UserID,
		GuestName:     b.GuestName,
		GuestEmail:    guestEmail,
		ApartmentID:   apartment.ID,
		ApartmentName: apartment.Name,
		StartDate:     b.StartDate.String(),
		EndDate:       b.EndDate.String(),
		Nights:        booking.Nights(b.StartDate, b.EndDate),
		TotalPrice:    total,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = service.PublishBookingConfirmed(pubCtx, ev)
	}()
}

// parseStayRange validates a start/end date pair.  Checkout must fall
// strictly after check-in, so zero-night stays are rejected.
func parseStayRange(startStr, endStr string) (start, end booking.Date, errMsg string) {
	if startStr == "" || endStr == "" {
		return start, end, "start and end dates required"
	}
	start, err := booking.ParseDate(startStr)
	if err != nil {
		return start, end, "invalid start date"
	}
	end, err = booking.ParseDate(endStr)
	if err != nil {
		return start, end, "invalid end date"
	}
	if !end.After(start) {
		return start, end, "end date must be after start date"
	}
	return start, end, ""
}
