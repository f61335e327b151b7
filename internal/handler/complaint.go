package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// ComplaintHandler lets authenticated guests file complaints.  The
// complaint is recorded under the account's display name, which is
// also the key the profile-deletion cascade removes by.
type ComplaintHandler struct {
    Users      *repository.UserRepo
    Complaints *repository.ComplaintRepo
}

// Create files a complaint.  POST /v1/complaints
func (h *ComplaintHandler) Create(c echo.Context) error {
    req, err := requester(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    u, err := h.Users.GetByID(req.UserID)
    if err != nil {
        return writeRepoError(c, err)
    }
    var body struct {
        ContactNumber string `json:"contact_number"`
        RoomNumber    string `json:"room_number"`
        ComplaintType string `json:"complaint_type"`
        Rating        int    `json:"rating"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    complaint, err := h.Complaints.Add(u.Name, body.ContactNumber, body.RoomNumber, body.ComplaintType, body.Rating)
    if err != nil {
        return writeRepoError(c, err)
    }
    return c.JSON(http.StatusCreated, complaint)
}
