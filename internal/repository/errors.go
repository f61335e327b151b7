// Package repository holds the in-memory data stores of the service:
// the room catalog, the reservation ledger and the supporting user,
// token and complaint stores.  This file defines the sentinel error
// values shared by the stores so that handlers can translate failure
// modes into HTTP status codes with errors.Is.
package repository

import (
    "errors"
    "fmt"
    "strings"
)

// ErrNotFound is returned when a reservation, room or user lookup
// misses.  Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the requester neither owns the target
// reservation nor holds administrator privileges.  Handlers should
// translate this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidDate is returned when a date string is not a valid
// YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

// ErrInvalidDateRange is returned when a checkout date is not strictly
// after the check-in date, or when either date lies before the
// reference date.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrNoVacancy is returned when no room of the requested type is free
// for the requested date range.
var ErrNoVacancy = errors.New("no vacancy")

// ErrPaymentFailed is returned when checkout is aborted because the
// payment collaborator did not confirm the charge.  The reservation
// and room state are left untouched.
var ErrPaymentFailed = errors.New("payment failed")

// ErrEmailExists is returned when registering or updating a profile
// with an email address that another user already holds.
var ErrEmailExists = errors.New("email already registered")

// ConflictError reports that a requested date range collides with
// existing reservations on the same room.  It wraps the conflicting
// reservations so callers can show the guest which ranges are taken.
type ConflictError struct {
    RoomNumber int
    Conflicts  []ConflictRange
}

// ConflictRange is one already-booked interval on the contested room.
type ConflictRange struct {
    ReservationID int64  `json:"reservation_id"`
    CheckIn       string `json:"check_in"`
    CheckOut      string `json:"check_out"`
}

func (e *ConflictError) Error() string {
    parts := make([]string, 0, len(e.Conflicts))
    for _, c := range e.Conflicts {
        parts = append(parts, fmt.Sprintf("%s to %s", c.CheckIn, c.CheckOut))
    }
    return fmt.Sprintf("room %d already booked: %s", e.RoomNumber, strings.Join(parts, ", "))
}
