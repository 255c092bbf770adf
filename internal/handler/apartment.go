package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/almhaga/brf-intranet/internal/model"
	"github.com/almhaga/brf-intranet/internal/repository"
)

// ApartmentHandler serves the guest apartment catalogue.
type ApartmentHandler struct {
	Apartments *repository.ApartmentRepo
}

func NewApartmentHandler(a *repository.ApartmentRepo) *ApartmentHandler {
	return &ApartmentHandler{Apartments: a}
}

type apartmentResp struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	PricePerNight int64  `json:"price_per_night"`
	MaxGuests     uint32 `json:"max_guests"`
}

func toApartmentResp(a model.Apartment) apartmentResp {
	return apartmentResp{
		ID:            a.ID,
		Name:          a.Name,
		Description:   a.Description,
		PricePerNight: a.PricePerNight,
		MaxGuests:     a.MaxGuests,
	}
}

// List returns all apartments ordered by name.
func (h *ApartmentHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	apartments, err := h.Apartments.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list apartments failed"})
	}
	out := make([]apartmentResp, 0, len(apartments))
	for _, a := range apartments {
		out = append(out, toApartmentResp(a))
	}
	return c.JSON(http.StatusOK, echo.Map{"apartments": out})
}

// Get returns one apartment by id.
func (h *ApartmentHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid apartment id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Apartments.Get(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "apartment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load apartment failed"})
	}
	return c.JSON(http.StatusOK, toApartmentResp(*a))
}
