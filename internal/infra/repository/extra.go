package repository

import (
	"context"

	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const selectActiveExtrasSQL = `
SELECT id, name, price, pricing_type, control_type
FROM extras
WHERE active
ORDER BY id`

type ExtraRepository struct {
	db db.DBTX
}

func NewExtraRepository(db db.DBTX) *ExtraRepository {
	return &ExtraRepository{db: db}
}

func (r *ExtraRepository) FindAll(ctx context.Context) ([]shared.ExtraSnapshot, error) {
	rows, err := r.db.Query(ctx, selectActiveExtrasSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query extras", err)
	}

	extras, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.ExtraSnapshot, error) {
		var s shared.ExtraSnapshot
		err := row.Scan(&s.ID, &s.Name, &s.Price, &s.PricingType, &s.ControlType)
		return s, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan extras", err)
	}
	return extras, nil
}
