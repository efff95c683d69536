package repository

import (
	"context"

	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const (
	selectRoomSQL = `
SELECT id, type_id, custom_price, status
FROM rooms
WHERE id = $1`

	selectRoomTypeSQL = `
SELECT id, base_price, max_adults, max_children, child_age_free_limit, child_rate
FROM room_types
WHERE id = $1`

	updateRoomStatusSQL = `
UPDATE rooms SET status = $2, updated_at = now()
WHERE id = $1`
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(db db.DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*shared.RoomSnapshot, error) {
	snap, err := scanRoom(r.db.QueryRow(ctx, selectRoomSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return snap, nil
}

// LockByID must run inside a transaction; the lock is held until commit.
func (r *RoomRepository) LockByID(ctx context.Context, id int64) (*shared.RoomSnapshot, error) {
	snap, err := scanRoom(r.db.QueryRow(ctx, selectRoomSQL+" FOR UPDATE", id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return snap, nil
}

func (r *RoomRepository) FindTypeByID(ctx context.Context, id int64) (*shared.RoomTypeSnapshot, error) {
	var snap shared.RoomTypeSnapshot
	err := r.db.QueryRow(ctx, selectRoomTypeSQL, id).Scan(
		&snap.ID,
		&snap.BasePrice,
		&snap.MaxAdults,
		&snap.MaxChildren,
		&snap.ChildAgeFreeLimit,
		&snap.ChildRate,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room type by ID", err)
	}
	return &snap, nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status room.Status) error {
	tag, err := r.db.Exec(ctx, updateRoomStatusSQL, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRoom(row pgx.Row) (*shared.RoomSnapshot, error) {
	var snap shared.RoomSnapshot
	if err := row.Scan(&snap.ID, &snap.TypeID, &snap.CustomPrice, &snap.Status); err != nil {
		return nil, err
	}
	return &snap, nil
}
