package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/quote"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"
)

type CreateBookingRequest = queries.QuoteRequest

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*shared.BookingSnapshot, error)
	ChangeStatus(ctx context.Context, bookingID int64, next booking.Status) (*shared.BookingSnapshot, error)
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	catalog      shared.CatalogReader
	quotes       queries.QuoteQueries
	availability queries.AvailabilityQueries
	clock        clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog shared.CatalogReader,
	quotes queries.QuoteQueries,
	availability queries.AvailabilityQueries,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		catalog:      catalog,
		quotes:       quotes,
		availability: availability,
		clock:        clock,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*shared.BookingSnapshot, error) {
	stay, err := booking.NewStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStay)
	}

	// Pre-flight only; the authoritative check runs under the room lock below.
	pre, err := c.availability.IsAvailable(ctx, req.RoomID, stay, 0)
	if err != nil {
		return nil, err
	}
	if !pre.Available {
		return nil, unavailable(req.RoomID, pre.Availability)
	}

	breakdown, err := c.quotes.Quote(ctx, req)
	if err != nil {
		return nil, err
	}

	entity, err := c.newPendingBooking(req, breakdown)
	if err != nil {
		return nil, err
	}

	var created *shared.BookingSnapshot
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.guardAvailability(ctx, tx, req.RoomID, stay, 0); err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		created, err = tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, req.RoomID)

	slog.Info("booking created",
		"booking_id", created.ID,
		"room_id", created.RoomID,
		"stay", stay.String(),
		"total", created.Total.String())
	return created, nil
}

func (c *bookingCommandsImpl) ChangeStatus(ctx context.Context, bookingID int64, next booking.Status) (*shared.BookingSnapshot, error) {
	if !next.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidStatus, errs.ErrInvalidStatusChange)
	}

	var updated *shared.BookingSnapshot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Bookings().LockByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entity, err := snap.ToDomain()
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if next == booking.StatusConfirmed && entity.Status() == booking.StatusPending {
			if err := c.guardAvailability(ctx, tx, entity.RoomID(), entity.Stay(), entity.ID()); err != nil {
				return err
			}
		}

		if err := entity.TransitionTo(next); err != nil {
			return errs.Mark(err, errs.ErrInvalidStatusChange)
		}

		if err := tx.Bookings().UpdateStatus(ctx, bookingID, next); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		updated = snap
		updated.Status = string(next)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, updated.RoomID)

	slog.Info("booking status changed", "booking_id", bookingID, "status", next.String())
	return updated, nil
}

// guardAvailability locks the room row, so concurrent bookings of one room
// serialise here, then re-checks overlaps against committed data.
func (c *bookingCommandsImpl) guardAvailability(ctx context.Context, tx shared.Tx, roomID int64, stay booking.Stay, excludeID int64) error {
	roomSnap, err := tx.Rooms().LockByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrRoomNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	snaps, err := tx.Bookings().FindOverlapping(ctx, roomID, stay, excludeID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	existing, err := shared.BookingsToDomain(snaps)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	result := booking.CheckAvailability(room.Status(roomSnap.Status), existing, stay, excludeID, c.clock.Now())
	if !result.Available {
		return unavailable(roomID, result)
	}
	return nil
}

func (c *bookingCommandsImpl) newPendingBooking(req CreateBookingRequest, b *quote.Breakdown) (*booking.Booking, error) {
	taxJSON, err := b.Tax.MarshalBreakdown()
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode tax breakdown")
	}

	charges := make([]booking.ExtraCharge, 0, len(b.Extras))
	for _, line := range b.Extras {
		charges = append(charges, booking.ExtraCharge{Name: line.Name, Quantity: line.Quantity, Amount: line.Total})
	}

	entity, err := booking.NewBooking(req.RoomID, b.Stay, req.Guests, req.Children, req.ChildrenAges, booking.Totals{
		RoomTotal:    b.RoomTotal,
		ChildTotal:   b.ChildrenTotal,
		ExtrasTotal:  b.ExtrasTotal,
		Extras:       charges,
		Total:        b.Total,
		TaxBreakdown: taxJSON,
	}, c.clock.Now())
	if err != nil {
		if errors.Is(err, booking.ErrInvalidStay) {
			return nil, errs.Mark(err, errs.ErrInvalidStay)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return entity, nil
}

// Invalidation failures are logged, not returned: the write is already committed
// and cached entries expire on their own TTL.
func (c *bookingCommandsImpl) invalidate(ctx context.Context, roomID int64) {
	if err := c.catalog.InvalidateRoom(ctx, roomID); err != nil {
		slog.Error("failed to invalidate room cache", "room_id", roomID, "error", err.Error())
	}
}
