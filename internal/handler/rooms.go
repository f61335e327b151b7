package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// RoomHandler serves the room catalog and the occupancy report.
type RoomHandler struct {
    Rooms  *repository.RoomRepo
    Ledger *repository.ReservationRepo
}

// List returns the room catalog.  Public, no authentication needed.
// GET /v1/rooms
func (h *RoomHandler) List(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"rooms": h.Rooms.List()})
}

// roomStatusView is one row of the status report.
type roomStatusView struct {
    RoomNumber    int            `json:"room_number"`
    Type          model.RoomType `json:"type"`
    Place         string         `json:"place"`
    PricePerNight float64        `json:"price_per_night"`
    Occupied      bool           `json:"occupied"`
    AvailableFrom string         `json:"available_from"`
}

// Status reports every room's occupancy on the queried date and the
// earliest date it becomes free.  GET /v1/rooms/status?date=YYYY-MM-DD
func (h *RoomHandler) Status(c echo.Context) error {
    date := c.QueryParam("date")
    if date == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date query parameter is required"})
    }
    rows, err := h.Ledger.RoomStatus(date)
    if err != nil {
        return writeRepoError(c, err)
    }
    out := make([]roomStatusView, 0, len(rows))
    for _, row := range rows {
        out = append(out, roomStatusView{
            RoomNumber:    row.Room.RoomNumber,
            Type:          row.Room.Type,
            Place:         row.Room.Place,
            PricePerNight: row.Room.PricePerNight,
            Occupied:      row.Occupied,
            AvailableFrom: row.AvailableFrom.Format(model.DateLayout),
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"date": date, "rooms": out})
}
