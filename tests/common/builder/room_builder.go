//go:build unit || e2e

package builder

import (
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type RoomBuilder struct {
	ID                int64
	TypeID            int64
	CustomPrice       decimal.Decimal
	Status            room.Status
	BasePrice         decimal.Decimal
	MaxAdults         int
	MaxChildren       int
	ChildAgeFreeLimit int
	ChildRate         decimal.Decimal
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                1,
		TypeID:            10,
		CustomPrice:       decimal.Zero,
		Status:            room.StatusAvailable,
		BasePrice:         decimal.NewFromInt(100),
		MaxAdults:         2,
		MaxChildren:       2,
		ChildAgeFreeLimit: 5,
		ChildRate:         decimal.NewFromInt(20),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithCustomPrice(price string) *RoomBuilder {
	b.CustomPrice = decimal.RequireFromString(price)
	return b
}

func (b *RoomBuilder) WithStatus(status room.Status) *RoomBuilder {
	b.Status = status
	return b
}

// Build methods
func (b *RoomBuilder) BuildDomain() (*room.Room, *room.RoomType) {
	rt, err := room.NewRoomType(b.TypeID, b.BasePrice, b.MaxAdults, b.MaxChildren, b.ChildAgeFreeLimit, b.ChildRate)
	if err != nil {
		panic(err)
	}
	rm, err := room.NewRoom(b.ID, b.TypeID, b.CustomPrice, b.Status)
	if err != nil {
		panic(err)
	}
	return rm, rt
}

func (b *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:          b.ID,
		TypeID:      b.TypeID,
		CustomPrice: b.CustomPrice,
		Status:      string(b.Status),
	}
}

func (b *RoomBuilder) BuildTypeSnapshot() *shared.RoomTypeSnapshot {
	return &shared.RoomTypeSnapshot{
		ID:                b.TypeID,
		BasePrice:         b.BasePrice,
		MaxAdults:         b.MaxAdults,
		MaxChildren:       b.MaxChildren,
		ChildAgeFreeLimit: b.ChildAgeFreeLimit,
		ChildRate:         b.ChildRate,
	}
}
