package repository

import (
    "fmt"
    "time"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// Read-only views over the ledger.  All partitioning uses the same
// reference clock as the mutating operations, so a reservation shows
// up in exactly one of history and upcoming.

// RoomStatus is one row of the room status report: whether the room is
// occupied on the queried date and the earliest date it is free from.
type RoomStatus struct {
    Room          *model.Room
    Occupied      bool
    AvailableFrom time.Time
}

// Invoice couples a reservation with its room and the billed amount.
type Invoice struct {
    Reservation *model.Reservation
    Room        *model.Room
    Amount      float64
}

// History returns the requester's past reservations: those whose
// check-in lies strictly before the reference date.  Administrators
// see every user's past reservations.
func (r *ReservationRepo) History(requester Identity) []*model.Reservation {
    return r.filter(func(res *model.Reservation) bool {
        return r.visibleTo(requester, res) && res.CheckIn.Before(r.clock.Today())
    })
}

// HistoryForUser returns the past reservations of one specific user.
// Role enforcement is the caller's concern; the admin routes are the
// only ones wired to it.
func (r *ReservationRepo) HistoryForUser(userID string) []*model.Reservation {
    return r.filter(func(res *model.Reservation) bool {
        return res.UserID == userID && res.CheckIn.Before(r.clock.Today())
    })
}

// Upcoming returns the requester's reservations with a check-in on or
// after the reference date, with the same scoping as History.
func (r *ReservationRepo) Upcoming(requester Identity) []*model.Reservation {
    return r.filter(func(res *model.Reservation) bool {
        return r.visibleTo(requester, res) && !res.CheckIn.Before(r.clock.Today())
    })
}

// UpcomingForUser returns one user's upcoming reservations.
func (r *ReservationRepo) UpcomingForUser(userID string) []*model.Reservation {
    return r.filter(func(res *model.Reservation) bool {
        return res.UserID == userID && !res.CheckIn.Before(r.clock.Today())
    })
}

// RoomStatus reports, for every room in the catalog, whether it is
// occupied on asOf and the earliest date it becomes free.  A room is
// occupied when some reservation satisfies checkIn <= asOf < checkOut.
// The earliest available date starts at the reference date and moves to
// the day after the latest checkout among the room's reservations.
// Dates before the reference date cannot be queried.
func (r *ReservationRepo) RoomStatus(asOf string) ([]RoomStatus, error) {
    date, err := ParseDate(asOf)
    if err != nil {
        return nil, err
    }
    today := r.clock.Today()
    if date.Before(today) {
        return nil, fmt.Errorf("%w: status is only available for today or a future date", ErrInvalidDateRange)
    }

    r.mu.RLock()
    defer r.mu.RUnlock()

    rooms := r.rooms.List()
    out := make([]RoomStatus, 0, len(rooms))
    for _, room := range rooms {
        occupied := false
        for _, res := range r.byRoom[room.RoomNumber] {
            if !date.Before(res.CheckIn) && date.Before(res.CheckOut) {
                occupied = true
                break
            }
        }
        earliest := today
        for _, res := range r.all {
            if res.RoomNumber == room.RoomNumber && res.CheckOut.After(earliest) {
                earliest = res.CheckOut.AddDate(0, 0, 1)
            }
        }
        out = append(out, RoomStatus{Room: room, Occupied: occupied, AvailableFrom: earliest})
    }
    return out, nil
}

// Invoice returns the reservation with the given ID if it belongs to
// the given user, together with its room and billed amount.
func (r *ReservationRepo) Invoice(id int64, userID string) (*Invoice, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()

    for _, res := range r.all {
        if res.ID == id && res.UserID == userID {
            room, err := r.rooms.FindByNumber(res.RoomNumber)
            if err != nil {
                return nil, err
            }
            cp := *res
            return &Invoice{Reservation: &cp, Room: room, Amount: cp.BillAmount}, nil
        }
    }
    return nil, ErrNotFound
}

// visibleTo implements the query scoping rule: customers see their own
// reservations, administrators see all of them.
func (r *ReservationRepo) visibleTo(requester Identity, res *model.Reservation) bool {
    return requester.Admin || res.UserID == requester.UserID
}

// filter snapshots the matching reservations under the read lock.
func (r *ReservationRepo) filter(keep func(*model.Reservation) bool) []*model.Reservation {
    r.mu.RLock()
    defer r.mu.RUnlock()
    out := make([]*model.Reservation, 0)
    for _, res := range r.all {
        if keep(res) {
            cp := *res
            out = append(out, &cp)
        }
    }
    return out
}
