//go:build unit || e2e

package builder

import (
	"hotel-booking-core/internal/domain/extra"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/quote"
	"hotel-booking-core/internal/domain/tax"
	reqdto "hotel-booking-core/internal/handler/dto/request"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type QuoteBuilder struct {
	RoomID       int64
	CheckIn      string
	CheckOut     string
	Guests       int
	Children     int
	ChildrenAges []int
	Extras       []extra.Selection
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		RoomID:   1,
		CheckIn:  "2025-07-10",
		CheckOut: "2025-07-12",
		Guests:   2,
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) WithChildren(ages ...int) *QuoteBuilder {
	b.Children = len(ages)
	b.ChildrenAges = ages
	return b
}

func (b *QuoteBuilder) WithExtra(id int64, qty int) *QuoteBuilder {
	b.Extras = append(b.Extras, extra.Selection{ExtraID: id, Quantity: qty})
	return b
}

// Build methods
func (b *QuoteBuilder) BuildRequestDTO() reqdto.QuoteRequest {
	extras := make([]reqdto.ExtraSelection, 0, len(b.Extras))
	for _, e := range b.Extras {
		extras = append(extras, reqdto.ExtraSelection{ExtraID: e.ExtraID, Quantity: e.Quantity})
	}
	return reqdto.QuoteRequest{
		RoomID:       b.RoomID,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Guests:       b.Guests,
		Children:     b.Children,
		ChildrenAges: b.ChildrenAges,
		Extras:       extras,
	}
}

func (b *QuoteBuilder) BuildQuery() queries.QuoteRequest {
	stay := MustStay(b.CheckIn, b.CheckOut)
	return queries.QuoteRequest{
		RoomID:       b.RoomID,
		CheckIn:      stay.CheckIn(),
		CheckOut:     stay.CheckOut(),
		Guests:       b.Guests,
		Children:     b.Children,
		ChildrenAges: b.ChildrenAges,
		Extras:       b.Extras,
	}
}

// BuildBreakdown prices the request against the default room with a breakfast
// extra (id 1, 15 per person) and no tax.
func (b *QuoteBuilder) BuildBreakdown() *quote.Breakdown {
	rm, rt := NewRoomBuilder().BuildDomain()
	q := b.BuildQuery()
	breakdown, err := quote.Calculator{
		Pricing:  pricing.Settings{},
		Tax:      tax.Settings{Mode: tax.ModeDisabled}.Normalize(),
		Children: quote.DefaultChildPolicy(),
	}.Calculate(quote.Input{
		Room:     rm,
		RoomType: rt,
		Catalog: []extra.Extra{{
			ID:          1,
			Name:        "Breakfast",
			Price:       decimal.NewFromInt(15),
			PricingType: extra.PricingPerPerson,
			ControlType: extra.ControlCheckbox,
		}},
		CheckIn:      q.CheckIn,
		CheckOut:     q.CheckOut,
		Guests:       q.Guests,
		Children:     q.Children,
		ChildrenAges: q.ChildrenAges,
		Extras:       q.Extras,
	})
	if err != nil {
		panic(err)
	}
	return breakdown
}
