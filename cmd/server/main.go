// Command server runs the hotel reservation API.  All state lives in
// process memory and is seeded at startup; stopping the server drops
// every reservation, account and complaint.
package main

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"

    "github.com/iliyamo/hotel-reservation/internal/config"
    "github.com/iliyamo/hotel-reservation/internal/handler"
    "github.com/iliyamo/hotel-reservation/internal/middleware"
    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/payment"
    "github.com/iliyamo/hotel-reservation/internal/queue"
    "github.com/iliyamo/hotel-reservation/internal/repository"
    "github.com/iliyamo/hotel-reservation/internal/router"
)

func main() {
    _ = godotenv.Load()
    cfg := config.Load()

    var clock repository.Clock = repository.SystemClock{}
    if cfg.ReferenceDate != "" {
        d, err := repository.ParseDate(cfg.ReferenceDate)
        if err != nil {
            log.Fatalf("invalid REFERENCE_DATE %q: %v", cfg.ReferenceDate, err)
        }
        clock = repository.FixedClock{Date: d}
        log.Printf("reference date pinned to %s", cfg.ReferenceDate)
    }

    rooms := repository.NewRoomRepo()
    seedRooms(rooms)
    ledger := repository.NewReservationRepo(rooms, clock)
    users := repository.NewUserRepo()
    seedUsers(users, cfg.BcryptCost)
    tokens := repository.NewTokenRepo()
    complaints := repository.NewComplaintRepo()

    e := echo.New()
    e.HideBanner = true
    e.Use(echomw.Recover())
    e.Use(echomw.Logger())

    if rdb := config.NewRedisClient(); rdb != nil {
        e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
        e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
    } else {
        log.Println("redis unavailable; rate limiting and response cache disabled")
    }

    authH := &handler.AuthHandler{
        Cfg:        cfg,
        Users:      users,
        Tokens:     tokens,
        Ledger:     ledger,
        Complaints: complaints,
    }
    bookingH := &handler.BookingHandler{
        Ledger: ledger,
        Rooms:  rooms,
        Pay:    payment.NewCardValidator(),
    }
    roomH := &handler.RoomHandler{Rooms: rooms, Ledger: ledger}
    complaintH := &handler.ComplaintHandler{Users: users, Complaints: complaints}
    adminH := &handler.AdminHandler{
        Ledger:     ledger,
        Rooms:      rooms,
        Users:      users,
        Complaints: complaints,
    }

    router.RegisterPublicRoutes(e, roomH)
    router.RegisterAuthRoutes(e, authH, cfg.JWTSecret)
    router.RegisterCustomerRoutes(e, cfg.JWTSecret, bookingH, roomH, complaintH)
    router.RegisterAdminRoutes(e, cfg.JWTSecret, adminH)

    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    log.Fatal(e.Start(":" + cfg.Port))
}

// seedRooms loads the fixed room catalog.
func seedRooms(rooms *repository.RoomRepo) {
    seed := []*model.Room{
        {RoomNumber: 101, Type: model.RoomTypeSingle, PricePerNight: 50, Place: "Downtown"},
        {RoomNumber: 201, Type: model.RoomTypeDouble, PricePerNight: 80, Place: "Downtown"},
        {RoomNumber: 301, Type: model.RoomTypeSuite, PricePerNight: 150, Place: "Downtown"},
        {RoomNumber: 102, Type: model.RoomTypeSingle, PricePerNight: 50, Place: "Downtown"},
        {RoomNumber: 202, Type: model.RoomTypeDouble, PricePerNight: 80, Place: "Downtown"},
    }
    for _, room := range seed {
        if err := rooms.Add(room); err != nil {
            log.Fatalf("seed rooms: %v", err)
        }
    }
}

// seedUsers loads the built-in accounts: one administrator and one
// customer.
func seedUsers(users *repository.UserRepo, bcryptCost int) {
    if err := users.Seed("U001", "Admin User", "admin@hotel.com", "admin123", true, bcryptCost); err != nil {
        log.Fatalf("seed users: %v", err)
    }
    if err := users.Seed("U002", "Customer One", "customer1@hotel.com", "cust123", false, bcryptCost); err != nil {
        log.Fatalf("seed users: %v", err)
    }
}
