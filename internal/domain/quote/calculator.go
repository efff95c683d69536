package quote

import (
	"errors"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/extra"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/domain/tax"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStay      = errors.New("check-out must be after check-in")
	ErrRoomNotFound     = errors.New("room or room type not found")
	ErrCapacityExceeded = errors.New("party exceeds room capacity")
	ErrInvalidGuests    = errors.New("at least one adult guest is required")
)

type Calculator struct {
	Pricing  pricing.Settings
	Tax      tax.Settings
	Children ChildPolicy
}

type Input struct {
	Room         *room.Room
	RoomType     *room.RoomType
	Rules        []pricing.Rule
	Catalog      []extra.Extra
	CheckIn      time.Time
	CheckOut     time.Time
	Guests       int
	Children     int
	ChildrenAges []int
	Extras       []extra.Selection
}

type Breakdown struct {
	Stay          booking.Stay
	Nights        int
	NightlyRates  []pricing.NightlyRate
	Children      Allocation
	RoomTotal     decimal.Decimal
	ChildrenTotal decimal.Decimal
	ExtrasTotal   decimal.Decimal
	Total         decimal.Decimal
	Extras        []extra.Line
	Tax           tax.BookingTax
}

// AccommodationTotal is the room price without the child cost.
func (b *Breakdown) AccommodationTotal() decimal.Decimal {
	return b.RoomTotal.Sub(b.ChildrenTotal)
}

// Calculate prices a stay. Quoting and booking creation both go through here so
// the previewed and charged totals cannot drift apart.
func (c Calculator) Calculate(in Input) (*Breakdown, error) {
	stay, err := booking.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, ErrInvalidStay
	}
	if in.Room == nil || in.RoomType == nil || in.Room.BelongsTo(in.RoomType) != nil {
		return nil, ErrRoomNotFound
	}
	if in.Guests < 1 || in.Children < 0 {
		return nil, ErrInvalidGuests
	}
	// children may spill into empty adult slots, so only total occupancy is capped
	if in.Guests > in.RoomType.MaxAdults() ||
		in.Guests+in.Children > in.RoomType.MaxAdults()+in.RoomType.MaxChildren() {
		return nil, ErrCapacityExceeded
	}

	nights := stay.Nights()
	rates := pricing.NewResolver(c.Pricing, in.Rules).NightlyRates(in.Room, in.RoomType, stay)
	accommodation := decimal.Zero
	for _, r := range rates {
		accommodation = accommodation.Add(r.Price)
	}

	alloc := AllocateChildren(in.RoomType, in.Guests, in.Children, in.ChildrenAges, c.Children)
	childCost := in.RoomType.ChildRate().
		Mul(decimal.NewFromInt(int64(alloc.Billed))).
		Mul(decimal.NewFromInt(int64(nights)))

	lines, extrasTotal := extra.PriceSelections(in.Catalog, in.Extras, in.Guests+in.Children, nights)

	roomTotal := accommodation.Add(childCost)
	total := decimal.Max(decimal.Zero, roomTotal.Add(extrasTotal))

	calc := tax.NewCalculator(c.Tax)
	bookingTax := calc.CalculateBookingTax(tax.BookingAmounts{
		Room:     accommodation,
		Children: childCost,
		Extras:   extraAmounts(lines),
	})
	if bookingTax.Enabled && bookingTax.Mode == tax.ModeSalesTax {
		total = bookingTax.Totals.TotalGross
	}

	return &Breakdown{
		Stay:          stay,
		Nights:        nights,
		NightlyRates:  rates,
		Children:      alloc,
		RoomTotal:     roomTotal,
		ChildrenTotal: childCost,
		ExtrasTotal:   extrasTotal,
		Total:         total,
		Extras:        lines,
		Tax:           bookingTax,
	}, nil
}

func extraAmounts(lines []extra.Line) []tax.ExtraAmount {
	amounts := make([]tax.ExtraAmount, 0, len(lines))
	for _, l := range lines {
		amounts = append(amounts, tax.ExtraAmount{Label: l.Name, Amount: l.Total})
	}
	return amounts
}
