package queries

import (
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/extra"
	"hotel-booking-core/internal/domain/tax"
)

// QuoteRequest is everything needed to price a stay. Booking creation uses the
// same request so previews and charges agree.
type QuoteRequest struct {
	RoomID       int64
	CheckIn      time.Time
	CheckOut     time.Time
	Guests       int
	Children     int
	ChildrenAges []int
	Extras       []extra.Selection
}

// TaxAudit compares the tax stored with a booking against a fresh derivation
// from its stored amounts under the current settings.
type TaxAudit struct {
	BookingID    int64
	Stored       *tax.BookingTax
	Recalculated tax.BookingTax
	Matches      bool
}

type AvailabilityResult struct {
	RoomID int64
	Stay   booking.Stay
	booking.Availability
}
