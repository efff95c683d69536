package shared

import (
	"context"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: repositories bound to the pool for single statement reads
	Reads() Tx
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
}

type RoomRepository interface {
	FindByID(ctx context.Context, id int64) (*RoomSnapshot, error)
	FindTypeByID(ctx context.Context, id int64) (*RoomTypeSnapshot, error)
	// LockByID takes a row lock that serialises bookings of the same room.
	LockByID(ctx context.Context, id int64) (*RoomSnapshot, error)
	UpdateStatus(ctx context.Context, id int64, status room.Status) error
}

type BookingRepository interface {
	FindByID(ctx context.Context, id int64) (*BookingSnapshot, error)
	LockByID(ctx context.Context, id int64) (*BookingSnapshot, error)
	// FindOverlapping returns non-cancelled bookings of roomID overlapping stay.
	// Stale pending rows are included; the caller filters them.
	FindOverlapping(ctx context.Context, roomID int64, stay booking.Stay, excludeID int64) ([]*BookingSnapshot, error)
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status booking.Status) error
}

type PricingRuleRepository interface {
	// FindByType returns rules for typeID plus global rules.
	FindByType(ctx context.Context, typeID int64) ([]PricingRuleSnapshot, error)
}

type ExtraRepository interface {
	FindAll(ctx context.Context) ([]ExtraSnapshot, error)
}

// CatalogReader serves slowly changing data through the cache. Booking data is
// never served from here.
type CatalogReader interface {
	RoomByID(ctx context.Context, id int64) (*RoomSnapshot, error)
	RoomTypeByID(ctx context.Context, id int64) (*RoomTypeSnapshot, error)
	PricingRules(ctx context.Context, typeID int64) ([]PricingRuleSnapshot, error)
	Extras(ctx context.Context) ([]ExtraSnapshot, error)
	InvalidateRoom(ctx context.Context, roomID int64) error
}
