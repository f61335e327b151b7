package repository

import "time"

// ComputeBill derives the total charge for a stay from its date range
// and the room's nightly rate.  The night count is clamped to a
// minimum of one so a zero-length or inverted range still bills one
// night.  Pure function, no side effects.
func ComputeBill(checkIn, checkOut time.Time, pricePerNight float64) float64 {
    nights := int64(checkOut.Sub(checkIn).Hours() / 24)
    if nights <= 0 {
        nights = 1
    }
    return float64(nights) * pricePerNight
}
