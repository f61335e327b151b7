package model

// RoomType enumerates the categories of rooms the hotel offers.  The
// values double as the strings exchanged with clients, so they are
// capitalised the way the booking endpoints expect them.
type RoomType string

const (
    RoomTypeSingle RoomType = "Single"
    RoomTypeDouble RoomType = "Double"
    RoomTypeSuite  RoomType = "Suite"
)

// ParseRoomType normalises a client-supplied room type string.  The
// second return value reports whether the input named a known type.
func ParseRoomType(s string) (RoomType, bool) {
    switch RoomType(s) {
    case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
        return RoomType(s), true
    }
    return "", false
}

// Room describes a physical hotel room.  Rooms are created once at
// startup and never deleted or re-typed afterwards; everything that
// changes over time (occupancy, next free date) is derived from the
// reservation ledger rather than stored on the room itself.
//
// Fields:
//  RoomNumber    – unique numeric identifier of the room.
//  Type          – category of the room (Single, Double, Suite).
//  PricePerNight – flat nightly rate charged for the room.
//  Place         – location or district label shown to guests.
type Room struct {
    RoomNumber    int      `json:"room_number"`
    Type          RoomType `json:"type"`
    PricePerNight float64  `json:"price_per_night"`
    Place         string   `json:"place"`
}
