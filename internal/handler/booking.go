package handler

import (
    "context"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/payment"
    "github.com/iliyamo/hotel-reservation/internal/queue"
    "github.com/iliyamo/hotel-reservation/internal/repository"
    queue_publisher "github.com/iliyamo/hotel-reservation/internal/service"
)

// BookingHandler owns the customer-facing reservation endpoints.
type BookingHandler struct {
    Ledger *repository.ReservationRepo
    Rooms  *repository.RoomRepo
    Pay    payment.Processor
}

type bookRequest struct {
    RoomType string `json:"room_type"`
    CheckIn  string `json:"check_in"`
    CheckOut string `json:"check_out"`
}

// Book reserves the first free room of the requested type for the
// authenticated user.  POST /v1/reservations
func (h *BookingHandler) Book(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body bookRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    rt, ok := model.ParseRoomType(body.RoomType)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_type must be Single, Double or Suite"})
    }
    res, err := h.Ledger.Book(req.UserID, rt, body.CheckIn, body.CheckOut)
    if err != nil {
        return writeRepoError(c, err)
    }
    announceBooking(h.Rooms, res, req.UserID)
    return c.JSON(http.StatusCreated, viewOf(res))
}

// Modify moves a reservation to new dates and re-bills it at the
// room's nightly rate.  PATCH /v1/reservations/:id
func (h *BookingHandler) Modify(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := reservationID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    var body struct {
        CheckIn  string `json:"check_in"`
        CheckOut string `json:"check_out"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    res, err := h.Ledger.ModifyDates(req, id, body.CheckIn, body.CheckOut)
    if err != nil {
        return writeRepoError(c, err)
    }
    return c.JSON(http.StatusOK, viewOf(res))
}

// Cancel removes a reservation.  DELETE /v1/reservations/:id
func (h *BookingHandler) Cancel(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := reservationID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    if err := h.Ledger.Cancel(req, id); err != nil {
        return writeRepoError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "reservation cancelled"})
}

// Checkout settles a reservation: the card is charged for the billed
// amount and, only if that succeeds, the reservation is removed.
// POST /v1/reservations/:id/checkout
func (h *BookingHandler) Checkout(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := reservationID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    var card payment.Card
    if err := c.Bind(&card); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }

    var receipt payment.Receipt
    res, err := h.Ledger.Checkout(req, id, func(amount float64) error {
        r, err := h.Pay.Charge(card, amount)
        if err != nil {
            return err
        }
        receipt = r
        return nil
    })
    if err != nil {
        return writeRepoError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "message":     "checked out",
        "reservation": viewOf(res),
        "receipt":     receipt,
    })
}

// History lists past reservations: check-in before the reference
// date.  Administrators see everyone's.  GET /v1/bookings/history
func (h *BookingHandler) History(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    return c.JSON(http.StatusOK, echo.Map{"reservations": viewsOf(h.Ledger.History(req))})
}

// Upcoming lists reservations with a check-in on or after the
// reference date.  GET /v1/bookings/upcoming
func (h *BookingHandler) Upcoming(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    return c.JSON(http.StatusOK, echo.Map{"reservations": viewsOf(h.Ledger.Upcoming(req))})
}

// Invoice returns the bill for one of the requester's reservations.
// GET /v1/invoices/:id
func (h *BookingHandler) Invoice(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := reservationID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    inv, err := h.Ledger.Invoice(id, req.UserID)
    if err != nil {
        return writeRepoError(c, err)
    }
    return c.JSON(http.StatusOK, invoiceViewOf(inv))
}

// announceBooking publishes a confirmation event in the background.
// The broker being down must never fail the booking, so errors are
// only logged by the publisher.
func announceBooking(rooms *repository.RoomRepo, res *model.Reservation, bookedBy string) {
    room, err := rooms.FindByNumber(res.RoomNumber)
    if err != nil {
        return
    }
    ev := queue.BookingConfirmedEvent{
        ReservationID: res.ID,
        UserID:        res.UserID,
        BookedBy:      bookedBy,
        RoomNumber:    room.RoomNumber,
        RoomType:      string(room.Type),
        Place:         room.Place,
        CheckIn:       res.CheckInString(),
        CheckOut:      res.CheckOutString(),
        Nights:        res.Nights(),
        BillAmount:    res.BillAmount,
        ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = queue_publisher.PublishBookingConfirmed(ctx, ev)
    }()
}

// invoiceView flattens an invoice for JSON.
type invoiceView struct {
    Reservation reservationView `json:"reservation"`
    RoomType    string          `json:"room_type"`
    Place       string          `json:"place"`
    NightlyRate float64         `json:"nightly_rate"`
    Amount      float64         `json:"amount"`
}

func invoiceViewOf(inv *repository.Invoice) invoiceView {
    return invoiceView{
        Reservation: viewOf(inv.Reservation),
        RoomType:    string(inv.Room.Type),
        Place:       inv.Room.Place,
        NightlyRate: inv.Room.PricePerNight,
        Amount:      inv.Amount,
    }
}

func reservationID(c echo.Context) (int64, error) {
    return strconv.ParseInt(c.Param("id"), 10, 64)
}
