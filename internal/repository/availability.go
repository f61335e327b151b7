package repository

import (
    "time"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// Availability checks are pure functions over a set of reservations
// and a candidate [checkIn, checkOut) range.  Both the self-service
// booking path and the admin booking path go through the same
// predicate, and modification re-checks the same way while excluding
// the reservation being edited.

// rangesConflict reports whether a requested stay [in, out) collides
// with an existing stay [existIn, existOut).  The boundary is
// deliberately non-strict: a checkout on another booking's checkout
// day still counts as a conflict.  Callers depend on this exact
// behaviour, so do not tighten it to half-open interval overlap.
func rangesConflict(in, out, existIn, existOut time.Time) bool {
    return !(out.Before(existIn) || in.After(existOut))
}

// conflictsWith returns the reservations in rs whose date ranges
// conflict with [in, out).  A reservation with ID excludeID is skipped,
// which lets a modification ignore the booking being changed; pass a
// non-positive excludeID to consider every reservation.
func conflictsWith(rs []*model.Reservation, in, out time.Time, excludeID int64) []*model.Reservation {
    var out2 []*model.Reservation
    for _, r := range rs {
        if excludeID > 0 && r.ID == excludeID {
            continue
        }
        if rangesConflict(in, out, r.CheckIn, r.CheckOut) {
            out2 = append(out2, r)
        }
    }
    return out2
}

// conflictRanges converts conflicting reservations into the wire shape
// embedded in a ConflictError.
func conflictRanges(rs []*model.Reservation) []ConflictRange {
    out := make([]ConflictRange, 0, len(rs))
    for _, r := range rs {
        out = append(out, ConflictRange{
            ReservationID: r.ID,
            CheckIn:       r.CheckInString(),
            CheckOut:      r.CheckOutString(),
        })
    }
    return out
}
