package repository

import (
    "errors"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// testClock is a settable clock so tests can book a stay and then move
// the reference date past it.
type testClock struct {
    d time.Time
}

func (c *testClock) Today() time.Time { return c.d }

func newTestLedger(t *testing.T) (*ReservationRepo, *RoomRepo, *testClock) {
    t.Helper()
    rooms := NewRoomRepo()
    seed := []*model.Room{
        {RoomNumber: 101, Type: model.RoomTypeSingle, PricePerNight: 50, Place: "Downtown"},
        {RoomNumber: 201, Type: model.RoomTypeDouble, PricePerNight: 80, Place: "Downtown"},
        {RoomNumber: 301, Type: model.RoomTypeSuite, PricePerNight: 150, Place: "Downtown"},
        {RoomNumber: 102, Type: model.RoomTypeSingle, PricePerNight: 50, Place: "Downtown"},
        {RoomNumber: 202, Type: model.RoomTypeDouble, PricePerNight: 80, Place: "Downtown"},
    }
    for _, room := range seed {
        require.NoError(t, rooms.Add(room))
    }
    clock := &testClock{d: day(t, "2025-04-05")}
    return NewReservationRepo(rooms, clock), rooms, clock
}

func TestBookPicksFirstFreeRoomOfType(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    first, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-13")
    require.NoError(t, err)
    assert.Equal(t, 101, first.RoomNumber)
    assert.Equal(t, 150.0, first.BillAmount)

    second, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-13")
    require.NoError(t, err)
    assert.Equal(t, 102, second.RoomNumber)

    _, err = ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-13")
    assert.ErrorIs(t, err, ErrNoVacancy)
}

func TestBookValidatesDates(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    _, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-01", "2025-04-10")
    assert.ErrorIs(t, err, ErrInvalidDateRange, "check-in before the reference date")

    _, err = ledger.Book("U002", model.RoomTypeSingle, "2025-04-12", "2025-04-10")
    assert.ErrorIs(t, err, ErrInvalidDateRange, "checkout before check-in")

    _, err = ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-10")
    assert.ErrorIs(t, err, ErrInvalidDateRange, "zero-length stay")

    _, err = ledger.Book("U002", model.RoomTypeSingle, "2025-4-10", "2025-04-12")
    assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestReservationIDsNeverReused(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    a, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-12")
    require.NoError(t, err)
    b, err := ledger.Book("U002", model.RoomTypeDouble, "2025-04-10", "2025-04-12")
    require.NoError(t, err)
    assert.Equal(t, int64(1), a.ID)
    assert.Equal(t, int64(2), b.ID)

    require.NoError(t, ledger.Cancel(Identity{UserID: "U002"}, a.ID))

    c, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-12")
    require.NoError(t, err)
    assert.Equal(t, int64(3), c.ID, "IDs keep counting after a cancellation")
}

func TestBookOnBehalfOfRequiresAdmin(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    _, err := ledger.BookOnBehalfOf(Identity{UserID: "U002"}, "U003", model.RoomTypeSuite, "2025-04-10", "2025-04-12")
    assert.ErrorIs(t, err, ErrForbidden)

    res, err := ledger.BookOnBehalfOf(Identity{UserID: "U001", Admin: true}, "U003", model.RoomTypeSuite, "2025-04-10", "2025-04-12")
    require.NoError(t, err)
    assert.Equal(t, "U003", res.UserID)
    assert.Equal(t, 301, res.RoomNumber)
}

func TestAdminBookingSeesSameAvailability(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    _, err := ledger.Book("U002", model.RoomTypeSuite, "2025-04-10", "2025-04-12")
    require.NoError(t, err)

    _, err = ledger.BookOnBehalfOf(Identity{UserID: "U001", Admin: true}, "U003", model.RoomTypeSuite, "2025-04-11", "2025-04-13")
    assert.ErrorIs(t, err, ErrNoVacancy)
}

func TestModifyDatesRecomputesBill(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    res, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-12")
    require.NoError(t, err)
    assert.Equal(t, 100.0, res.BillAmount)

    moved, err := ledger.ModifyDates(Identity{UserID: "U002"}, res.ID, "2025-04-20", "2025-04-25")
    require.NoError(t, err)
    assert.Equal(t, "2025-04-20", moved.CheckInString())
    assert.Equal(t, "2025-04-25", moved.CheckOutString())
    assert.Equal(t, 250.0, moved.BillAmount)
}

func TestModifyDatesReportsConflicts(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    // Both stays land on the only suite, back to back.
    a, err := ledger.Book("U002", model.RoomTypeSuite, "2025-05-01", "2025-05-05")
    require.NoError(t, err)
    b, err := ledger.Book("U003", model.RoomTypeSuite, "2025-05-06", "2025-05-08")
    require.NoError(t, err)
    assert.Equal(t, a.RoomNumber, b.RoomNumber)

    _, err = ledger.ModifyDates(Identity{UserID: "U002"}, a.ID, "2025-05-03", "2025-05-07")
    var conflict *ConflictError
    require.ErrorAs(t, err, &conflict)
    assert.Equal(t, a.RoomNumber, conflict.RoomNumber)
    require.Len(t, conflict.Conflicts, 1)
    assert.Equal(t, b.ID, conflict.Conflicts[0].ReservationID)
    assert.Equal(t, "2025-05-06", conflict.Conflicts[0].CheckIn)

    // The failed modification must not have moved anything.
    unchanged, err := ledger.Invoice(a.ID, "U002")
    require.NoError(t, err)
    assert.Equal(t, "2025-05-01", unchanged.Reservation.CheckInString())
    assert.Equal(t, 600.0, unchanged.Amount)
}

func TestModifyDatesIgnoresOwnRange(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    res, err := ledger.Book("U002", model.RoomTypeSuite, "2025-05-01", "2025-05-05")
    require.NoError(t, err)

    // Shifting within a range that overlaps itself is fine.
    moved, err := ledger.ModifyDates(Identity{UserID: "U002"}, res.ID, "2025-05-02", "2025-05-06")
    require.NoError(t, err)
    assert.Equal(t, "2025-05-02", moved.CheckInString())
}

func TestModifyDatesAuthorization(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    res, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-12")
    require.NoError(t, err)

    _, err = ledger.ModifyDates(Identity{UserID: "U003"}, res.ID, "2025-04-15", "2025-04-17")
    assert.ErrorIs(t, err, ErrForbidden)

    _, err = ledger.ModifyDates(Identity{UserID: "U001", Admin: true}, res.ID, "2025-04-15", "2025-04-17")
    assert.NoError(t, err, "administrators may modify any reservation")

    _, err = ledger.ModifyDates(Identity{UserID: "U002"}, 999, "2025-04-15", "2025-04-17")
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelFreesTheRoom(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    res, err := ledger.Book("U002", model.RoomTypeSuite, "2025-04-10", "2025-04-12")
    require.NoError(t, err)
    require.NoError(t, ledger.Cancel(Identity{UserID: "U002"}, res.ID))

    assert.ErrorIs(t, ledger.Cancel(Identity{UserID: "U002"}, res.ID), ErrNotFound)

    again, err := ledger.Book("U003", model.RoomTypeSuite, "2025-04-10", "2025-04-12")
    require.NoError(t, err)
    assert.Equal(t, res.RoomNumber, again.RoomNumber)
}

func TestCheckoutSettlesAndRemoves(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    res, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-13")
    require.NoError(t, err)

    var charged float64
    settled, err := ledger.Checkout(Identity{UserID: "U002"}, res.ID, func(amount float64) error {
        charged = amount
        return nil
    })
    require.NoError(t, err)
    assert.Equal(t, 150.0, charged)
    assert.Equal(t, res.ID, settled.ID)

    _, err = ledger.Invoice(res.ID, "U002")
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckoutPaymentFailureLeavesLedgerUntouched(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    res, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-13")
    require.NoError(t, err)

    _, err = ledger.Checkout(Identity{UserID: "U002"}, res.ID, func(float64) error {
        return errors.New("card declined")
    })
    assert.ErrorIs(t, err, ErrPaymentFailed)

    inv, err := ledger.Invoice(res.ID, "U002")
    require.NoError(t, err)
    assert.Equal(t, 150.0, inv.Amount)
}

func TestCheckoutIsOwnerOnly(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    res, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-13")
    require.NoError(t, err)

    // Even an administrator cannot settle someone else's stay.
    _, err = ledger.Checkout(Identity{UserID: "U001", Admin: true}, res.ID, nil)
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelAllForUser(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    _, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-12")
    require.NoError(t, err)
    _, err = ledger.Book("U002", model.RoomTypeDouble, "2025-04-10", "2025-04-12")
    require.NoError(t, err)
    keep, err := ledger.Book("U003", model.RoomTypeSuite, "2025-04-10", "2025-04-12")
    require.NoError(t, err)

    assert.Equal(t, 2, ledger.CancelAllForUser("U002"))
    assert.Equal(t, 0, ledger.CancelAllForUser("U002"))

    _, err = ledger.Invoice(keep.ID, "U003")
    assert.NoError(t, err)
}
