package handler // handler defines the HTTP handlers of the API

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// requester builds the ledger identity from the JWT claims stored in
// the context by the auth middleware.
func requester(c echo.Context) (repository.Identity, error) {
    uid, ok := c.Get("user_id").(string)
    if !ok || uid == "" {
        return repository.Identity{}, errors.New("missing user_id in context")
    }
    role, _ := c.Get("role").(string)
    return repository.Identity{UserID: uid, Admin: role == model.RoleAdmin}, nil
}

// reservationView is the JSON shape of a reservation in responses.
type reservationView struct {
    ReservationID int64   `json:"reservation_id"`
    UserID        string  `json:"user_id"`
    RoomNumber    int     `json:"room_number"`
    CheckIn       string  `json:"check_in"`
    CheckOut      string  `json:"check_out"`
    BillAmount    float64 `json:"bill_amount"`
}

func viewOf(r *model.Reservation) reservationView {
    return reservationView{
        ReservationID: r.ID,
        UserID:        r.UserID,
        RoomNumber:    r.RoomNumber,
        CheckIn:       r.CheckInString(),
        CheckOut:      r.CheckOutString(),
        BillAmount:    r.BillAmount,
    }
}

func viewsOf(rs []*model.Reservation) []reservationView {
    out := make([]reservationView, 0, len(rs))
    for _, r := range rs {
        out = append(out, viewOf(r))
    }
    return out
}

// writeRepoError translates repository sentinel errors into HTTP
// responses.  Anything unrecognised is a 500 and deliberately vague.
func writeRepoError(c echo.Context, err error) error {
    var conflict *repository.ConflictError
    switch {
    case errors.As(err, &conflict):
        return c.JSON(http.StatusConflict, echo.Map{
            "error":       "room is not available for the selected dates",
            "room_number": conflict.RoomNumber,
            "conflicts":   conflict.Conflicts,
        })
    case errors.Is(err, repository.ErrNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    case errors.Is(err, repository.ErrNoVacancy):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrEmailExists):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrPaymentFailed):
        return c.JSON(http.StatusPaymentRequired, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrInvalidDate),
        errors.Is(err, repository.ErrInvalidDateRange),
        errors.Is(err, repository.ErrInvalidProfile),
        errors.Is(err, repository.ErrInvalidComplaint):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
