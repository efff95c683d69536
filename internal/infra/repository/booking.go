package repository

import (
	"context"
	"encoding/json"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const bookingColumns = `
id, room_id, check_in, check_out, status, guests, children, children_ages,
room_total, child_total, extras_total, extras, total, tax_breakdown, created_at`

const (
	selectBookingSQL = `SELECT` + bookingColumns + `
FROM bookings
WHERE id = $1`

	// Half-open overlap: existing.check_in < new.check_out AND existing.check_out > new.check_in
	selectOverlappingBookingsSQL = `SELECT` + bookingColumns + `
FROM bookings
WHERE room_id = $1
  AND status <> 'cancelled'
  AND check_in < $3
  AND check_out > $2
  AND id <> $4
ORDER BY check_in, id`

	insertBookingSQL = `
INSERT INTO bookings (
    room_id, check_in, check_out, status, guests, children, children_ages,
    room_total, child_total, extras_total, extras, total, tax_breakdown, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

	updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = now()
WHERE id = $1`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*shared.BookingSnapshot, error) {
	snap, err := scanBooking(r.db.QueryRow(ctx, selectBookingSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return snap, nil
}

func (r *BookingRepository) LockByID(ctx context.Context, id int64) (*shared.BookingSnapshot, error) {
	snap, err := scanBooking(r.db.QueryRow(ctx, selectBookingSQL+" FOR UPDATE", id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return snap, nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, roomID int64, stay booking.Stay, excludeID int64) ([]*shared.BookingSnapshot, error) {
	rows, err := r.db.Query(ctx, selectOverlappingBookingsSQL, roomID, stay.CheckIn(), stay.CheckOut(), excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping bookings", err)
	}

	snaps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*shared.BookingSnapshot, error) {
		return scanBooking(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan overlapping bookings", err)
	}
	return snaps, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	extras, err := json.Marshal(nonNilExtras(b.Extras()))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode booking extras", err)
	}

	var taxBreakdown []byte
	if len(b.TaxBreakdown()) > 0 {
		taxBreakdown = b.TaxBreakdown()
	}

	var id int64
	err = r.db.QueryRow(ctx, insertBookingSQL,
		b.RoomID(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		string(b.Status()),
		b.Guests(),
		b.Children(),
		toInt32s(b.ChildrenAges()),
		b.RoomTotal(),
		b.ChildTotal(),
		b.ExtrasTotal(),
		extras,
		b.Total(),
		taxBreakdown,
		b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanBooking(row pgx.Row) (*shared.BookingSnapshot, error) {
	var (
		snap   shared.BookingSnapshot
		ages   []int32
		extras []byte
		taxRaw []byte
	)
	err := row.Scan(
		&snap.ID,
		&snap.RoomID,
		&snap.CheckIn,
		&snap.CheckOut,
		&snap.Status,
		&snap.Guests,
		&snap.Children,
		&ages,
		&snap.RoomTotal,
		&snap.ChildTotal,
		&snap.ExtrasTotal,
		&extras,
		&snap.Total,
		&taxRaw,
		&snap.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	snap.ChildrenAges = fromInt32s(ages)
	if len(extras) > 0 {
		if err := json.Unmarshal(extras, &snap.Extras); err != nil {
			return nil, err
		}
	}
	if len(taxRaw) > 0 {
		snap.TaxBreakdown = json.RawMessage(taxRaw)
	}
	return &snap, nil
}

func nonNilExtras(extras []booking.ExtraCharge) []booking.ExtraCharge {
	if extras == nil {
		return []booking.ExtraCharge{}
	}
	return extras
}

func toInt32s(in []int) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v) // #nosec G115 -- ages are small
	}
	return out
}

func fromInt32s(in []int32) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
