//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID           int64
	RoomID       int64
	CheckIn      string
	CheckOut     string
	Status       booking.Status
	Guests       int
	Children     int
	ChildrenAges []int
	Total        decimal.Decimal
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        1,
		RoomID:    1,
		CheckIn:   "2025-07-10",
		CheckOut:  "2025-07-12",
		Status:    booking.StatusConfirmed,
		Guests:    2,
		Total:     decimal.NewFromInt(200),
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.RoomID, MustStay(b.CheckIn, b.CheckOut), b.Status, b.Guests, b.Children, b.ChildrenAges,
		booking.Totals{RoomTotal: b.Total, Total: b.Total},
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	stay := MustStay(b.CheckIn, b.CheckOut)
	return &shared.BookingSnapshot{
		ID:           b.ID,
		RoomID:       b.RoomID,
		CheckIn:      stay.CheckIn(),
		CheckOut:     stay.CheckOut(),
		Status:       string(b.Status),
		Guests:       b.Guests,
		Children:     b.Children,
		ChildrenAges: b.ChildrenAges,
		RoomTotal:    b.Total,
		ChildTotal:   decimal.Zero,
		ExtrasTotal:  decimal.Zero,
		Total:        b.Total,
		CreatedAt:    b.CreatedAt,
	}
}

func MustStay(checkIn, checkOut string) booking.Stay {
	stay, err := booking.ParseStay(checkIn, checkOut)
	if err != nil {
		panic(err)
	}
	return stay
}
