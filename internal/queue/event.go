// Package queue defines the message payloads exchanged over the
// broker and the background consumer that drains them.
package queue

// BookingConfirmedEvent is published after a reservation is accepted
// by the ledger.  It carries everything a downstream consumer needs to
// notify or log without querying the server.
type BookingConfirmedEvent struct {
    ReservationID int64   `json:"reservation_id"`
    UserID        string  `json:"user_id"`
    BookedBy      string  `json:"booked_by"` // admin ID when booked on behalf, else same as user_id
    RoomNumber    int     `json:"room_number"`
    RoomType      string  `json:"room_type"`
    Place         string  `json:"place"`
    CheckIn       string  `json:"check_in"`
    CheckOut      string  `json:"check_out"`
    Nights        int64   `json:"nights"`
    BillAmount    float64 `json:"bill_amount"`
    ConfirmedAt   string  `json:"confirmed_at"`
}
