package queries

import (
	"context"
	"errors"

	"hotel-booking-core/internal/domain/quote"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"
)

type QuoteQueries interface {
	Quote(ctx context.Context, req QuoteRequest) (*quote.Breakdown, error)
}

type quoteQueriesImpl struct {
	catalog shared.CatalogReader
	pricing config.PricingConfig
	tax     config.TaxConfig
}

func NewQuoteQueries(catalog shared.CatalogReader, cfg config.Config) QuoteQueries {
	return &quoteQueriesImpl{
		catalog: catalog,
		pricing: cfg.Pricing,
		tax:     cfg.Tax,
	}
}

func (q *quoteQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*quote.Breakdown, error) {
	input, err := q.loadInput(ctx, req)
	if err != nil {
		return nil, err
	}

	// settings are rebuilt per request so a calculation never sees shared mutable state
	calc := quote.Calculator{
		Pricing:  q.pricing.Settings(),
		Tax:      q.tax.Settings(),
		Children: q.pricing.ChildPolicy(),
	}

	breakdown, err := calc.Calculate(input)
	if err != nil {
		return nil, mapQuoteErr(err)
	}
	return breakdown, nil
}

func (q *quoteQueriesImpl) loadInput(ctx context.Context, req QuoteRequest) (quote.Input, error) {
	roomSnap, err := q.catalog.RoomByID(ctx, req.RoomID)
	if err != nil {
		return quote.Input{}, mapCatalogErr(err, errs.ErrRoomNotFound)
	}
	typeSnap, err := q.catalog.RoomTypeByID(ctx, roomSnap.TypeID)
	if err != nil {
		return quote.Input{}, mapCatalogErr(err, errs.ErrRoomTypeNotFound)
	}
	rules, err := q.catalog.PricingRules(ctx, roomSnap.TypeID)
	if err != nil {
		return quote.Input{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	extras, err := q.catalog.Extras(ctx)
	if err != nil {
		return quote.Input{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rm, err := roomSnap.ToDomain()
	if err != nil {
		return quote.Input{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	rt, err := typeSnap.ToDomain()
	if err != nil {
		return quote.Input{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	return quote.Input{
		Room:         rm,
		RoomType:     rt,
		Rules:        shared.RulesToDomain(rules),
		Catalog:      shared.ExtrasToDomain(extras),
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Guests:       req.Guests,
		Children:     req.Children,
		ChildrenAges: req.ChildrenAges,
		Extras:       req.Extras,
	}, nil
}

func mapQuoteErr(err error) error {
	switch {
	case errors.Is(err, quote.ErrInvalidStay):
		return errs.Mark(err, errs.ErrInvalidStay)
	case errors.Is(err, quote.ErrRoomNotFound):
		return errs.Mark(err, errs.ErrRoomNotFound)
	default:
		return errs.Mark(errs.Mark(err, errs.ErrCannotQuote), errs.ErrDomainValidation)
	}
}

func mapCatalogErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
