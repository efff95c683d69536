//go:build unit

package room_test

import (
	"testing"

	"hotel-booking-core/internal/domain/room"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomType(t *testing.T) {
	testCases := []struct {
		name      string
		basePrice decimal.Decimal
		maxAdults int
		ageLimit  int
		childRate decimal.Decimal
		errIs     error
	}{
		{name: "valid", basePrice: decimal.NewFromInt(100), maxAdults: 2, ageLimit: 5, childRate: decimal.NewFromInt(20)},
		{name: "free room", basePrice: decimal.Zero, maxAdults: 1, childRate: decimal.Zero},
		{name: "negative base price", basePrice: decimal.NewFromInt(-1), maxAdults: 2, childRate: decimal.Zero, errIs: room.ErrNegativePrice},
		{name: "negative child rate", basePrice: decimal.NewFromInt(1), maxAdults: 2, childRate: decimal.NewFromInt(-5), errIs: room.ErrNegativePrice},
		{name: "negative capacity", basePrice: decimal.NewFromInt(1), maxAdults: -1, childRate: decimal.Zero, errIs: room.ErrInvalidCapacity},
		{name: "negative age limit", basePrice: decimal.NewFromInt(1), maxAdults: 2, ageLimit: -1, childRate: decimal.Zero, errIs: room.ErrInvalidAgeLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rt, err := room.NewRoomType(1, tc.basePrice, tc.maxAdults, 2, tc.ageLimit, tc.childRate)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, rt)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.basePrice.Equal(rt.BasePrice()))
		})
	}
}

func TestRoom_EffectivePrice(t *testing.T) {
	rt, err := room.NewRoomType(3, decimal.NewFromInt(100), 2, 2, 5, decimal.NewFromInt(20))
	require.NoError(t, err)

	t.Run("type base price without custom price", func(t *testing.T) {
		r, err := room.NewRoom(1, 3, decimal.Zero, room.StatusAvailable)
		require.NoError(t, err)
		assert.False(t, r.HasCustomPrice())
		assert.Equal(t, "100", r.EffectivePrice(rt).String())
	})

	t.Run("custom price overrides base price", func(t *testing.T) {
		r, err := room.NewRoom(1, 3, decimal.RequireFromString("149.50"), room.StatusAvailable)
		require.NoError(t, err)
		assert.Equal(t, "149.5", r.EffectivePrice(rt).String())
	})

	t.Run("missing type without custom price is zero", func(t *testing.T) {
		r, err := room.NewRoom(1, 3, decimal.Zero, room.StatusAvailable)
		require.NoError(t, err)
		assert.True(t, r.EffectivePrice(nil).IsZero())
	})
}

func TestRoom_Status(t *testing.T) {
	_, err := room.NewRoom(1, 1, decimal.Zero, room.Status("closed"))
	require.ErrorIs(t, err, room.ErrInvalidStatus)

	r, err := room.NewRoom(1, 1, decimal.Zero, room.StatusAvailable)
	require.NoError(t, err)
	assert.True(t, r.Status().IsBookable())

	require.NoError(t, r.ChangeStatus(room.StatusMaintenance))
	assert.False(t, r.Status().IsBookable())
	assert.ErrorIs(t, r.ChangeStatus(room.Status("")), room.ErrInvalidStatus)
}

func TestRoom_BelongsTo(t *testing.T) {
	rt, err := room.NewRoomType(3, decimal.NewFromInt(100), 2, 2, 5, decimal.Zero)
	require.NoError(t, err)

	r, err := room.NewRoom(1, 3, decimal.Zero, room.StatusAvailable)
	require.NoError(t, err)
	assert.NoError(t, r.BelongsTo(rt))

	other, err := room.NewRoom(2, 4, decimal.Zero, room.StatusAvailable)
	require.NoError(t, err)
	assert.ErrorIs(t, other.BelongsTo(rt), room.ErrRoomTypeMismatch)
	assert.ErrorIs(t, other.BelongsTo(nil), room.ErrRoomTypeMismatch)
}
