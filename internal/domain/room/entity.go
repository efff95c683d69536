package room

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidCapacity  = errors.New("capacity cannot be negative")
	ErrInvalidAgeLimit  = errors.New("child age limit cannot be negative")
	ErrInvalidStatus    = errors.New("invalid room status")
	ErrRoomTypeMismatch = errors.New("room does not belong to room type")
)

// RoomType is admin-edited configuration shared by every room of that type.
type RoomType struct {
	id                int64
	basePrice         decimal.Decimal
	maxAdults         int
	maxChildren       int
	childAgeFreeLimit int
	childRate         decimal.Decimal
}

func NewRoomType(
	id int64,
	basePrice decimal.Decimal,
	maxAdults, maxChildren, childAgeFreeLimit int,
	childRate decimal.Decimal,
) (*RoomType, error) {
	if basePrice.IsNegative() || childRate.IsNegative() {
		return nil, ErrNegativePrice
	}
	if maxAdults < 0 || maxChildren < 0 {
		return nil, ErrInvalidCapacity
	}
	if childAgeFreeLimit < 0 {
		return nil, ErrInvalidAgeLimit
	}
	return &RoomType{
		id:                id,
		basePrice:         basePrice,
		maxAdults:         maxAdults,
		maxChildren:       maxChildren,
		childAgeFreeLimit: childAgeFreeLimit,
		childRate:         childRate,
	}, nil
}

func (t *RoomType) ID() int64                  { return t.id }
func (t *RoomType) BasePrice() decimal.Decimal { return t.basePrice }
func (t *RoomType) MaxAdults() int             { return t.maxAdults }
func (t *RoomType) MaxChildren() int           { return t.maxChildren }
func (t *RoomType) ChildAgeFreeLimit() int     { return t.childAgeFreeLimit }
func (t *RoomType) ChildRate() decimal.Decimal { return t.childRate }

type Room struct {
	id          int64
	typeID      int64
	customPrice decimal.Decimal
	status      Status
}

// NewRoom builds a room. A zero customPrice means the type's base price applies.
func NewRoom(id, typeID int64, customPrice decimal.Decimal, status Status) (*Room, error) {
	if customPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Room{
		id:          id,
		typeID:      typeID,
		customPrice: customPrice,
		status:      status,
	}, nil
}

func (r *Room) ID() int64                    { return r.id }
func (r *Room) TypeID() int64                { return r.typeID }
func (r *Room) CustomPrice() decimal.Decimal { return r.customPrice }
func (r *Room) Status() Status               { return r.status }

func (r *Room) HasCustomPrice() bool {
	return r.customPrice.IsPositive()
}

// EffectivePrice is the nightly price before any pricing rule.
func (r *Room) EffectivePrice(t *RoomType) decimal.Decimal {
	if r.HasCustomPrice() {
		return r.customPrice
	}
	if t == nil {
		return decimal.Zero
	}
	return t.basePrice
}

func (r *Room) BelongsTo(t *RoomType) error {
	if t == nil || t.id != r.typeID {
		return ErrRoomTypeMismatch
	}
	return nil
}

func (r *Room) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	return nil
}
