// Package repository implements data access against MySQL.  This file
// defines sentinel errors shared across repositories so that handlers
// can map failure scenarios to HTTP statuses without inspecting SQL
// errors themselves.
package repository

import "errors"

// ErrBookingConflict is returned when a candidate stay overlaps an
// existing non-rejected booking for the same apartment.  Handlers
// should translate this into an HTTP 409 response and keep the
// caller's date selection intact.
var ErrBookingConflict = errors.New("booking dates unavailable")

// ErrDuplicateYear is returned when creating a season table for a year
// that already has one.  Handlers should translate this into an HTTP
// 409 response.
var ErrDuplicateYear = errors.New("season settings for year already exist")

// ErrNotFound is returned by lookups whose target row does not exist,
// where sql.ErrNoRows would leak storage details to callers.
var ErrNotFound = errors.New("not found")
