// Package router wires the HTTP routes to their handlers and
// middleware chains.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/handler"
    "github.com/iliyamo/hotel-reservation/internal/middleware"
)

// RegisterPublicRoutes mounts the endpoints that need no token: the
// health check and the room catalog.
func RegisterPublicRoutes(e *echo.Echo, rooms *handler.RoomHandler) {
    e.GET("/healthz", handler.Health)
    e.GET("/v1/rooms", rooms.List)
}

// RegisterAuthRoutes mounts registration, login, token refresh and
// the profile endpoints.  The profile group requires a valid access
// token but no particular role.
func RegisterAuthRoutes(e *echo.Echo, auth *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", auth.Register)
    g.POST("/login", auth.Login)
    g.POST("/refresh", auth.Refresh)
    g.POST("/logout", auth.Logout)

    me := e.Group("/v1/me", middleware.JWTAuth(jwtSecret))
    me.GET("", auth.Me)
    me.PUT("", auth.UpdateMe)
    me.DELETE("", auth.DeleteMe)
}
