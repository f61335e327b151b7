package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/handler"
    "github.com/iliyamo/hotel-reservation/internal/middleware"
    "github.com/iliyamo/hotel-reservation/internal/model"
)

// RegisterCustomerRoutes mounts the authenticated guest endpoints.
// Administrators can use them too; the ledger scopes what each
// identity may see or touch.
func RegisterCustomerRoutes(e *echo.Echo, jwtSecret string, booking *handler.BookingHandler, rooms *handler.RoomHandler, complaints *handler.ComplaintHandler) {
    g := e.Group("/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleCustomer, model.RoleAdmin),
    )

    g.POST("/reservations", booking.Book)
    g.PATCH("/reservations/:id", booking.Modify)
    g.DELETE("/reservations/:id", booking.Cancel)
    g.POST("/reservations/:id/checkout", booking.Checkout)

    g.GET("/bookings/history", booking.History)
    g.GET("/bookings/upcoming", booking.Upcoming)
    g.GET("/rooms/status", rooms.Status)
    g.GET("/invoices/:id", booking.Invoice)

    g.POST("/complaints", complaints.Create)
}
