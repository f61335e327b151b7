package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// AdminHandler owns the administrator-only endpoints.  Every route it
// serves sits behind the ADMIN role middleware, but the ledger still
// re-checks the identity on operations that care.
type AdminHandler struct {
    Ledger     *repository.ReservationRepo
    Rooms      *repository.RoomRepo
    Users      *repository.UserRepo
    Complaints *repository.ComplaintRepo
}

// BookForUser books a room on behalf of an existing customer.  It
// goes through the same availability check as self-service booking.
// POST /v1/admin/reservations
func (h *AdminHandler) BookForUser(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        UserID string `json:"user_id"`
        bookRequest
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if _, err := h.Users.GetByID(body.UserID); err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
    }
    rt, ok := model.ParseRoomType(body.RoomType)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_type must be Single, Double or Suite"})
    }
    res, err := h.Ledger.BookOnBehalfOf(req, body.UserID, rt, body.CheckIn, body.CheckOut)
    if err != nil {
        return writeRepoError(c, err)
    }
    announceBooking(h.Rooms, res, req.UserID)
    return c.JSON(http.StatusCreated, viewOf(res))
}

// HistoryForUser lists one customer's past reservations.
// GET /v1/admin/users/:id/bookings/history
func (h *AdminHandler) HistoryForUser(c echo.Context) error {
    id := c.Param("id")
    if _, err := h.Users.GetByID(id); err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "user_id":      id,
        "reservations": viewsOf(h.Ledger.HistoryForUser(id)),
    })
}

// UpcomingForUser lists one customer's upcoming reservations.
// GET /v1/admin/users/:id/bookings/upcoming
func (h *AdminHandler) UpcomingForUser(c echo.Context) error {
    id := c.Param("id")
    if _, err := h.Users.GetByID(id); err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "user_id":      id,
        "reservations": viewsOf(h.Ledger.UpcomingForUser(id)),
    })
}

// InvoiceForUser fetches a reservation's invoice on behalf of a
// customer.  GET /v1/admin/invoices/:id?user_id=U002
func (h *AdminHandler) InvoiceForUser(c echo.Context) error {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    userID := c.QueryParam("user_id")
    if userID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id query parameter is required"})
    }
    inv, err := h.Ledger.Invoice(id, userID)
    if err != nil {
        return writeRepoError(c, err)
    }
    return c.JSON(http.StatusOK, invoiceViewOf(inv))
}

// ListComplaints returns every filed complaint in filing order.
// GET /v1/admin/complaints
func (h *AdminHandler) ListComplaints(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"complaints": h.Complaints.List()})
}
