package repository

import (
    "fmt"
    "sync"
    "time"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// Identity describes the requester of a ledger or query operation.
// Authorization is decided from these two fields alone; there is no
// ambient "current user" state anywhere in the core.
type Identity struct {
    UserID string
    Admin  bool
}

// ReservationRepo is the reservation ledger: the authoritative
// collection of active reservations.  It owns ID assignment, consults
// the availability predicate before every mutation and keeps the
// per-room index in sync with the global list.  All mutating
// operations take the write lock, so concurrent HTTP requests cannot
// double-book a room or race the ID counter.
type ReservationRepo struct {
    mu     sync.RWMutex
    rooms  *RoomRepo
    clock  Clock
    nextID int64
    all    []*model.Reservation
    byRoom map[int][]*model.Reservation
}

// NewReservationRepo returns an empty ledger bound to the given room
// catalog and reference clock.
func NewReservationRepo(rooms *RoomRepo, clock Clock) *ReservationRepo {
    if rooms == nil || clock == nil {
        panic("nil dependency passed to NewReservationRepo")
    }
    return &ReservationRepo{
        rooms:  rooms,
        clock:  clock,
        byRoom: make(map[int][]*model.Reservation),
    }
}

// Book creates a reservation for the given user on the first free room
// of the requested type.  Dates arrive as YYYY-MM-DD strings.  The
// check-in must not precede the reference date and the checkout must be
// strictly after the check-in.  On success the reservation is billed,
// appended to the ledger and to the room's index, and a copy is
// returned.  ErrNoVacancy is returned when every room of the type is
// taken for the range.
func (r *ReservationRepo) Book(userID string, roomType model.RoomType, checkIn, checkOut string) (*model.Reservation, error) {
    in, out, err := r.validateRange(checkIn, checkOut)
    if err != nil {
        return nil, err
    }

    r.mu.Lock()
    defer r.mu.Unlock()

    var room *model.Room
    for _, cand := range r.rooms.List() {
        if cand.Type != roomType {
            continue
        }
        if len(conflictsWith(r.byRoom[cand.RoomNumber], in, out, 0)) == 0 {
            room = cand
            break
        }
    }
    if room == nil {
        return nil, fmt.Errorf("%w: no vacant %s rooms for these dates", ErrNoVacancy, roomType)
    }

    r.nextID++
    res := &model.Reservation{
        ID:         r.nextID,
        UserID:     userID,
        RoomNumber: room.RoomNumber,
        CheckIn:    in,
        CheckOut:   out,
        BillAmount: ComputeBill(in, out, room.PricePerNight),
    }
    r.all = append(r.all, res)
    r.byRoom[room.RoomNumber] = append(r.byRoom[room.RoomNumber], res)

    cp := *res
    return &cp, nil
}

// BookOnBehalfOf books a room for another user.  Only administrators
// may call it; the availability check is exactly the one used by
// self-service booking, so the two paths cannot disagree about what
// counts as free.
func (r *ReservationRepo) BookOnBehalfOf(requester Identity, userID string, roomType model.RoomType, checkIn, checkOut string) (*model.Reservation, error) {
    if !requester.Admin {
        return nil, ErrForbidden
    }
    return r.Book(userID, roomType, checkIn, checkOut)
}

// ModifyDates moves an existing reservation to a new date range.  The
// requester must own the reservation or be an administrator.  The new
// range is validated like a fresh booking and re-checked for conflicts
// against the room's other reservations, excluding the reservation
// being modified.  On conflict a *ConflictError listing the occupied
// ranges is returned and nothing changes.  On success the dates are
// updated and the bill is recomputed at the room's nightly rate.
func (r *ReservationRepo) ModifyDates(requester Identity, id int64, newCheckIn, newCheckOut string) (*model.Reservation, error) {
    in, out, err := r.validateRange(newCheckIn, newCheckOut)
    if err != nil {
        return nil, err
    }

    r.mu.Lock()
    defer r.mu.Unlock()

    res := r.findLocked(id)
    if res == nil {
        return nil, ErrNotFound
    }
    if res.UserID != requester.UserID && !requester.Admin {
        return nil, ErrForbidden
    }

    conflicts := conflictsWith(r.byRoom[res.RoomNumber], in, out, res.ID)
    if len(conflicts) > 0 {
        return nil, &ConflictError{RoomNumber: res.RoomNumber, Conflicts: conflictRanges(conflicts)}
    }

    room, err := r.rooms.FindByNumber(res.RoomNumber)
    if err != nil {
        return nil, err
    }
    res.CheckIn = in
    res.CheckOut = out
    res.BillAmount = ComputeBill(in, out, room.PricePerNight)

    cp := *res
    return &cp, nil
}

// Cancel removes a reservation from the ledger and from its room's
// index.  The requester must own the reservation or be an
// administrator.
func (r *ReservationRepo) Cancel(requester Identity, id int64) error {
    r.mu.Lock()
    defer r.mu.Unlock()

    res := r.findLocked(id)
    if res == nil {
        return ErrNotFound
    }
    if res.UserID != requester.UserID && !requester.Admin {
        return ErrForbidden
    }
    r.removeLocked(res)
    return nil
}

// Checkout settles a reservation.  The requester must own it.  The
// confirm callback performs the external payment for the bill amount;
// when it fails the ledger is left untouched and ErrPaymentFailed is
// returned.  On success the reservation is removed and a copy of the
// settled record is returned so the caller can report it.
func (r *ReservationRepo) Checkout(requester Identity, id int64, confirm func(amount float64) error) (*model.Reservation, error) {
    r.mu.Lock()
    defer r.mu.Unlock()

    res := r.findLocked(id)
    if res == nil || res.UserID != requester.UserID {
        return nil, ErrNotFound
    }
    if confirm != nil {
        if err := confirm(res.BillAmount); err != nil {
            return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
        }
    }
    r.removeLocked(res)
    cp := *res
    return &cp, nil
}

// CancelAllForUser removes every reservation owned by the given user
// and reports how many were dropped.  Used when a profile is deleted.
func (r *ReservationRepo) CancelAllForUser(userID string) int {
    r.mu.Lock()
    defer r.mu.Unlock()

    var doomed []*model.Reservation
    for _, res := range r.all {
        if res.UserID == userID {
            doomed = append(doomed, res)
        }
    }
    for _, res := range doomed {
        r.removeLocked(res)
    }
    return len(doomed)
}

// validateRange parses both dates and enforces the ordering rules
// before any state is touched.
func (r *ReservationRepo) validateRange(checkIn, checkOut string) (in, out time.Time, err error) {
    in, err = ParseDate(checkIn)
    if err != nil {
        return
    }
    out, err = ParseDate(checkOut)
    if err != nil {
        return
    }
    today := r.clock.Today()
    if in.Before(today) || out.Before(today) {
        err = fmt.Errorf("%w: dates cannot be in the past", ErrInvalidDateRange)
        return
    }
    if !out.After(in) {
        err = fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDateRange)
        return
    }
    return
}

// findLocked returns the live reservation with the given ID or nil.
// Callers must hold the lock.
func (r *ReservationRepo) findLocked(id int64) *model.Reservation {
    for _, res := range r.all {
        if res.ID == id {
            return res
        }
    }
    return nil
}

// removeLocked drops a reservation from the global list and the room
// index.  Callers must hold the write lock.
func (r *ReservationRepo) removeLocked(res *model.Reservation) {
    for i, cand := range r.all {
        if cand == res {
            r.all = append(r.all[:i], r.all[i+1:]...)
            break
        }
    }
    local := r.byRoom[res.RoomNumber]
    for i, cand := range local {
        if cand == res {
            r.byRoom[res.RoomNumber] = append(local[:i], local[i+1:]...)
            break
        }
    }
}
