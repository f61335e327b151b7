package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/handler"
    "github.com/iliyamo/hotel-reservation/internal/middleware"
    "github.com/iliyamo/hotel-reservation/internal/model"
)

// RegisterAdminRoutes mounts the administrator endpoints behind the
// ADMIN role check.
func RegisterAdminRoutes(e *echo.Echo, jwtSecret string, admin *handler.AdminHandler) {
    g := e.Group("/v1/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleAdmin),
    )

    g.POST("/reservations", admin.BookForUser)
    g.GET("/users/:id/bookings/history", admin.HistoryForUser)
    g.GET("/users/:id/bookings/upcoming", admin.UpcomingForUser)
    g.GET("/invoices/:id", admin.InvoiceForUser)
    g.GET("/complaints", admin.ListComplaints)
}
