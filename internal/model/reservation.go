package model

import "time"

// DateLayout is the wire format for calendar dates.  All dates in the
// system are plain calendar days in UTC; there is no partial-day or
// timezone handling.
const DateLayout = "2006-01-02"

// Reservation records a user's booking of a room for a half-open date
// range [CheckIn, CheckOut).  A reservation exists only while it is
// active: cancellation and checkout remove it from the ledger entirely.
//
// Fields:
//  ID         – unique identifier assigned by the ledger from a
//               monotonic counter.  IDs are never reused.
//  UserID     – user who owns the reservation (e.g. "U002").
//  RoomNumber – room the reservation is attached to.
//  CheckIn    – first night of the stay.
//  CheckOut   – day the guest leaves; strictly after CheckIn.
//  BillAmount – total charge for the stay, at least one night's rate.
type Reservation struct {
    ID         int64     `json:"reservation_id"`
    UserID     string    `json:"user_id"`
    RoomNumber int       `json:"room_number"`
    CheckIn    time.Time `json:"-"`
    CheckOut   time.Time `json:"-"`
    BillAmount float64   `json:"bill_amount"`
}

// Nights returns the length of the stay in whole days, clamped to a
// minimum of one night so that a degenerate range still bills a night.
func (r *Reservation) Nights() int64 {
    n := int64(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
    if n <= 0 {
        n = 1
    }
    return n
}

// CheckInString and CheckOutString render the date range in the wire
// format used by the HTTP layer and the event payloads.
func (r *Reservation) CheckInString() string  { return r.CheckIn.Format(DateLayout) }
func (r *Reservation) CheckOutString() string { return r.CheckOut.Format(DateLayout) }
