package commands

import (
	"context"
	"log/slog"

	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"
)

type RoomCommands interface {
	ChangeStatus(ctx context.Context, roomID int64, status room.Status) (*shared.RoomSnapshot, error)
}

type roomCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog shared.CatalogReader
}

func NewRoomCommands(uow shared.UnitOfWork, catalog shared.CatalogReader) RoomCommands {
	return &roomCommandsImpl{
		uow:     uow,
		catalog: catalog,
	}
}

func (c *roomCommandsImpl) ChangeStatus(ctx context.Context, roomID int64, status room.Status) (*shared.RoomSnapshot, error) {
	if !status.IsValid() {
		return nil, errs.Mark(room.ErrInvalidStatus, errs.ErrDomainValidation)
	}

	var updated *shared.RoomSnapshot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Rooms().LockByID(ctx, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrRoomNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entity, err := snap.ToDomain()
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := entity.ChangeStatus(status); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Rooms().UpdateStatus(ctx, roomID, entity.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		updated = snap
		updated.Status = string(entity.Status())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := c.catalog.InvalidateRoom(ctx, roomID); err != nil {
		slog.Error("failed to invalidate room cache", "room_id", roomID, "error", err.Error())
	}

	slog.Info("room status changed", "room_id", roomID, "status", string(status))
	return updated, nil
}
