package repository

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

func TestHistoryUpcomingPartition(t *testing.T) {
    ledger, _, clock := newTestLedger(t)

    // Book while the reference date is early, then advance it so the
    // first stay falls into history.
    clock.d = day(t, "2025-03-01")
    past, err := ledger.Book("U002", model.RoomTypeSingle, "2025-03-10", "2025-03-12")
    require.NoError(t, err)

    clock.d = day(t, "2025-04-05")
    today, err := ledger.Book("U002", model.RoomTypeDouble, "2025-04-05", "2025-04-07")
    require.NoError(t, err)
    future, err := ledger.Book("U002", model.RoomTypeSuite, "2025-04-20", "2025-04-22")
    require.NoError(t, err)

    me := Identity{UserID: "U002"}
    history := ledger.History(me)
    require.Len(t, history, 1)
    assert.Equal(t, past.ID, history[0].ID)

    // A check-in on the reference date itself counts as upcoming.
    upcoming := ledger.Upcoming(me)
    require.Len(t, upcoming, 2)
    assert.Equal(t, today.ID, upcoming[0].ID)
    assert.Equal(t, future.ID, upcoming[1].ID)
}

func TestQueriesScopeByIdentity(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    mine, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-12")
    require.NoError(t, err)
    theirs, err := ledger.Book("U003", model.RoomTypeDouble, "2025-04-10", "2025-04-12")
    require.NoError(t, err)

    upcoming := ledger.Upcoming(Identity{UserID: "U002"})
    require.Len(t, upcoming, 1)
    assert.Equal(t, mine.ID, upcoming[0].ID)

    all := ledger.Upcoming(Identity{UserID: "U001", Admin: true})
    assert.Len(t, all, 2)

    forUser := ledger.UpcomingForUser("U003")
    require.Len(t, forUser, 1)
    assert.Equal(t, theirs.ID, forUser[0].ID)
    assert.Empty(t, ledger.HistoryForUser("U003"))
}

func TestRoomStatusReport(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    res, err := ledger.Book("U002", model.RoomTypeSingle, "2025-04-10", "2025-04-13")
    require.NoError(t, err)
    require.Equal(t, 101, res.RoomNumber)

    rows, err := ledger.RoomStatus("2025-04-11")
    require.NoError(t, err)
    require.Len(t, rows, 5)

    byNumber := make(map[int]RoomStatus, len(rows))
    for _, row := range rows {
        byNumber[row.Room.RoomNumber] = row
    }

    assert.True(t, byNumber[101].Occupied)
    assert.Equal(t, "2025-04-14", byNumber[101].AvailableFrom.Format(model.DateLayout),
        "free the day after the latest checkout")

    assert.False(t, byNumber[102].Occupied)
    assert.Equal(t, "2025-04-05", byNumber[102].AvailableFrom.Format(model.DateLayout),
        "an unbooked room is free from the reference date")
}

func TestRoomStatusOccupancyBoundaries(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    _, err := ledger.Book("U002", model.RoomTypeSuite, "2025-04-10", "2025-04-13")
    require.NoError(t, err)

    occupiedOn := func(date string) bool {
        rows, err := ledger.RoomStatus(date)
        require.NoError(t, err)
        for _, row := range rows {
            if row.Room.RoomNumber == 301 {
                return row.Occupied
            }
        }
        t.Fatalf("room 301 missing from report")
        return false
    }

    assert.False(t, occupiedOn("2025-04-09"))
    assert.True(t, occupiedOn("2025-04-10"), "occupied from check-in day")
    assert.True(t, occupiedOn("2025-04-12"))
    assert.False(t, occupiedOn("2025-04-13"), "checkout day is not occupied")
}

func TestRoomStatusRejectsPastDates(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    _, err := ledger.RoomStatus("2025-04-04")
    assert.ErrorIs(t, err, ErrInvalidDateRange)

    _, err = ledger.RoomStatus("04-05-2025")
    assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestInvoiceRequiresMatchingUser(t *testing.T) {
    ledger, _, _ := newTestLedger(t)

    res, err := ledger.Book("U002", model.RoomTypeDouble, "2025-04-10", "2025-04-12")
    require.NoError(t, err)

    inv, err := ledger.Invoice(res.ID, "U002")
    require.NoError(t, err)
    assert.Equal(t, 160.0, inv.Amount)
    assert.Equal(t, model.RoomTypeDouble, inv.Room.Type)

    _, err = ledger.Invoice(res.ID, "U003")
    assert.ErrorIs(t, err, ErrNotFound)

    _, err = ledger.Invoice(999, "U002")
    assert.ErrorIs(t, err, ErrNotFound)
}
