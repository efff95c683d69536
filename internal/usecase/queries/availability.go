package queries

import (
	"context"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"
)

type AvailabilityQueries interface {
	// IsAvailable answers with a reason code rather than an error when the room
	// cannot be booked. excludeID ignores one booking, e.g. the one being confirmed.
	IsAvailable(ctx context.Context, roomID int64, stay booking.Stay, excludeID int64) (*AvailabilityResult, error)
}

type availabilityQueriesImpl struct {
	catalog shared.CatalogReader
	uow     shared.UnitOfWork
	clock   clock.Clock
}

func NewAvailabilityQueries(catalog shared.CatalogReader, uow shared.UnitOfWork, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		catalog: catalog,
		uow:     uow,
		clock:   clock,
	}
}

func (q *availabilityQueriesImpl) IsAvailable(ctx context.Context, roomID int64, stay booking.Stay, excludeID int64) (*AvailabilityResult, error) {
	if stay.IsZero() {
		return nil, errs.ErrInvalidStay
	}

	roomSnap, err := q.catalog.RoomByID(ctx, roomID)
	if err != nil {
		return nil, mapCatalogErr(err, errs.ErrRoomNotFound)
	}

	// bookings always come from the database; availability is never cached
	snaps, err := q.uow.Reads().Bookings().FindOverlapping(ctx, roomID, stay, excludeID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	existing, err := shared.BookingsToDomain(snaps)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return &AvailabilityResult{
		RoomID:       roomID,
		Stay:         stay,
		Availability: booking.CheckAvailability(room.Status(roomSnap.Status), existing, stay, excludeID, q.clock.Now()),
	}, nil
}
