package queries

import (
	"context"

	"hotel-booking-core/internal/domain/tax"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"
)

type TaxQueries interface {
	RecalculateBookingTax(ctx context.Context, bookingID int64) (*TaxAudit, error)
}

type taxQueriesImpl struct {
	uow shared.UnitOfWork
	tax config.TaxConfig
}

func NewTaxQueries(uow shared.UnitOfWork, cfg config.Config) TaxQueries {
	return &taxQueriesImpl{
		uow: uow,
		tax: cfg.Tax,
	}
}

func (q *taxQueriesImpl) RecalculateBookingTax(ctx context.Context, bookingID int64) (*TaxAudit, error) {
	snap, err := q.uow.Reads().Bookings().FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	amounts := tax.BookingAmounts{
		Room:     snap.RoomTotal.Sub(snap.ChildTotal),
		Children: snap.ChildTotal,
		Extras:   make([]tax.ExtraAmount, 0, len(snap.Extras)),
	}
	for _, e := range snap.Extras {
		amounts.Extras = append(amounts.Extras, tax.ExtraAmount{Label: e.Name, Amount: e.Amount})
	}

	audit := &TaxAudit{
		BookingID:    snap.ID,
		Recalculated: tax.NewCalculator(q.tax.Settings()).CalculateBookingTax(amounts),
	}

	if len(snap.TaxBreakdown) > 0 {
		stored, err := tax.UnmarshalBreakdown(snap.TaxBreakdown)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "stored tax breakdown is corrupt"), errs.ErrDomainValidation)
		}
		audit.Stored = &stored
		audit.Matches = stored.Totals.TotalTax.Equal(audit.Recalculated.Totals.TotalTax) &&
			stored.Totals.TotalGross.Equal(audit.Recalculated.Totals.TotalGross)
	}
	return audit, nil
}
