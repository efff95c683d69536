package response

import (
	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/quote"
	"hotel-booking-core/internal/domain/tax"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type NightlyRateResponse struct {
	Date   string          `json:"date"`
	Price  decimal.Decimal `json:"price"`
	RuleID int64           `json:"rule_id,omitempty"`
}

type ChildrenResponse struct {
	Free       int `json:"free"`
	Chargeable int `json:"chargeable"`
	Absorbed   int `json:"absorbed"`
	Billed     int `json:"billed"`
}

type ExtraLineResponse struct {
	ExtraID   int64           `json:"extra_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

type QuoteResponse struct {
	CheckIn       string                `json:"check_in"`
	CheckOut      string                `json:"check_out"`
	Nights        int                   `json:"nights"`
	NightlyRates  []NightlyRateResponse `json:"nightly_rates"`
	Children      ChildrenResponse      `json:"children"`
	RoomTotal     decimal.Decimal       `json:"room_total"`
	ChildrenTotal decimal.Decimal       `json:"children_total"`
	ExtrasTotal   decimal.Decimal       `json:"extras_total"`
	Extras        []ExtraLineResponse   `json:"extras"`
	Tax           tax.BookingTax        `json:"tax"`
	Total         decimal.Decimal       `json:"total"`
}

func FromBreakdown(b *quote.Breakdown) (*QuoteResponse, error) {
	res := &QuoteResponse{
		CheckIn:       b.Stay.CheckIn().Format(booking.DateLayout),
		CheckOut:      b.Stay.CheckOut().Format(booking.DateLayout),
		Nights:        b.Nights,
		NightlyRates:  make([]NightlyRateResponse, 0, len(b.NightlyRates)),
		RoomTotal:     b.RoomTotal,
		ChildrenTotal: b.ChildrenTotal,
		ExtrasTotal:   b.ExtrasTotal,
		Extras:        []ExtraLineResponse{},
		Tax:           b.Tax,
		Total:         b.Total,
	}
	for _, n := range b.NightlyRates {
		res.NightlyRates = append(res.NightlyRates, NightlyRateResponse{
			Date:   n.Date.Format(booking.DateLayout),
			Price:  n.Price,
			RuleID: n.RuleID,
		})
	}
	if err := copier.Copy(&res.Children, &b.Children); err != nil {
		return nil, err
	}
	if len(b.Extras) > 0 {
		if err := copier.Copy(&res.Extras, &b.Extras); err != nil {
			return nil, err
		}
	}
	return res, nil
}
