package repository

import (
	"context"

	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

// Ranking happens in the domain; the order here only keeps results stable.
const selectPricingRulesByTypeSQL = `
SELECT id, COALESCE(type_id, 0), start_date, end_date, amount, operation, priority
FROM pricing_rules
WHERE type_id = $1 OR type_id IS NULL
ORDER BY id`

type PricingRuleRepository struct {
	db db.DBTX
}

func NewPricingRuleRepository(db db.DBTX) *PricingRuleRepository {
	return &PricingRuleRepository{db: db}
}

func (r *PricingRuleRepository) FindByType(ctx context.Context, typeID int64) ([]shared.PricingRuleSnapshot, error) {
	rows, err := r.db.Query(ctx, selectPricingRulesByTypeSQL, typeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query pricing rules", err)
	}

	rules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.PricingRuleSnapshot, error) {
		var s shared.PricingRuleSnapshot
		err := row.Scan(&s.ID, &s.TypeID, &s.StartDate, &s.EndDate, &s.Amount, &s.Operation, &s.Priority)
		return s, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan pricing rules", err)
	}
	return rules, nil
}
