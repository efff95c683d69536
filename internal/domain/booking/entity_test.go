//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stay := builder.MustStay("2025-07-10", "2025-07-12")
	totals := booking.Totals{RoomTotal: decimal.NewFromInt(200), Total: decimal.NewFromInt(200)}

	t.Run("new bookings start pending", func(t *testing.T) {
		b, err := booking.NewBooking(1, stay, 2, 1, []int{4}, totals, now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, []int{4}, b.ChildrenAges())
	})

	testCases := []struct {
		name     string
		stay     booking.Stay
		guests   int
		children int
		total    decimal.Decimal
		errIs    error
	}{
		{name: "zero stay", stay: booking.Stay{}, guests: 1, total: decimal.Zero, errIs: booking.ErrInvalidStay},
		{name: "no adults", stay: stay, guests: 0, total: decimal.Zero, errIs: booking.ErrInvalidGuests},
		{name: "negative children", stay: stay, guests: 1, children: -1, total: decimal.Zero, errIs: booking.ErrInvalidChildren},
		{name: "negative total", stay: stay, guests: 1, total: decimal.NewFromInt(-1), errIs: booking.ErrNegativeTotal},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := booking.NewBooking(1, tc.stay, tc.guests, tc.children, nil, booking.Totals{Total: tc.total}, now)
			require.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, b)
		})
	}
}

func TestBooking_TransitionTo(t *testing.T) {
	testCases := []struct {
		name  string
		from  booking.Status
		to    booking.Status
		errIs error
	}{
		{name: "pending to confirmed", from: booking.StatusPending, to: booking.StatusConfirmed},
		{name: "pending to cancelled", from: booking.StatusPending, to: booking.StatusCancelled},
		{name: "confirmed to cancelled", from: booking.StatusConfirmed, to: booking.StatusCancelled},
		{name: "confirmed to pending", from: booking.StatusConfirmed, to: booking.StatusPending, errIs: booking.ErrInvalidTransition},
		{name: "cancelled is final", from: booking.StatusCancelled, to: booking.StatusConfirmed, errIs: booking.ErrBookingAlreadyFinal},
		{name: "unknown status", from: booking.StatusPending, to: booking.Status("paid"), errIs: booking.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(tc.from).BuildDomain()
			err := b.TransitionTo(tc.to)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, b.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, b.Status())
		})
	}
}

func TestBooking_IsStalePending(t *testing.T) {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	b := builder.NewBookingBuilder().WithStatus(booking.StatusPending).WithCreatedAt(created).BuildDomain()

	assert.False(t, b.IsStalePending(created.Add(booking.StalePendingWindow), booking.StalePendingWindow))
	assert.True(t, b.IsStalePending(created.Add(booking.StalePendingWindow+time.Second), booking.StalePendingWindow))

	confirmed := builder.NewBookingBuilder().WithCreatedAt(created).BuildDomain()
	assert.False(t, confirmed.IsStalePending(created.Add(24*time.Hour), booking.StalePendingWindow))
}
