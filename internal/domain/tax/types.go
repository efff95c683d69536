package tax

import "github.com/shopspring/decimal"

type Mode string

const (
	ModeDisabled Mode = "disabled"
	// prices already include tax; tax is derived by division
	ModeVAT Mode = "vat"
	// tax is added on top of the net price
	ModeSalesTax Mode = "sales_tax"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeDisabled, ModeVAT, ModeSalesTax:
		return true
	default:
		return false
	}
}

type Rounding string

const (
	RoundingPerLine  Rounding = "per_line"
	RoundingPerTotal Rounding = "per_total"
)

func (r Rounding) IsValid() bool {
	return r == RoundingPerLine || r == RoundingPerTotal
}

const DefaultDecimals int32 = 2

// Settings is the tax configuration for one calculation. Rates are percentages.
type Settings struct {
	Mode              Mode
	AccommodationRate decimal.Decimal
	ExtrasRate        decimal.Decimal
	Rounding          Rounding
	Decimals          int32
}

// Normalize replaces unusable values so a misconfiguration degrades to
// "no adjustment" instead of failing a booking.
func (s Settings) Normalize() Settings {
	if !s.Mode.IsValid() {
		s.Mode = ModeDisabled
	}
	if s.AccommodationRate.IsNegative() {
		s.AccommodationRate = decimal.Zero
	}
	if s.ExtrasRate.IsNegative() {
		s.ExtrasRate = decimal.Zero
	}
	if !s.Rounding.IsValid() {
		s.Rounding = RoundingPerLine
	}
	if s.Decimals < 0 {
		s.Decimals = DefaultDecimals
	}
	return s
}

func (s Settings) Enabled() bool {
	return s.Mode == ModeVAT || s.Mode == ModeSalesTax
}

type Result struct {
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
	Gross decimal.Decimal `json:"gross"`
}

// Round rounds two of the amounts and derives the third so net + tax == gross
// still holds. VAT derives tax from gross and net; sales tax derives gross.
func (r Result) Round(places int32, mode Mode) Result {
	net := r.Net.Round(places)
	if mode == ModeVAT {
		gross := r.Gross.Round(places)
		return Result{Net: net, Tax: gross.Sub(net), Gross: gross}
	}
	t := r.Tax.Round(places)
	return Result{Net: net, Tax: t, Gross: net.Add(t)}
}

func (r Result) Add(other Result) Result {
	return Result{
		Net:   r.Net.Add(other.Net),
		Tax:   r.Tax.Add(other.Tax),
		Gross: r.Gross.Add(other.Gross),
	}
}

type LineKind string

const (
	LineRoom     LineKind = "room"
	LineChildren LineKind = "children"
	LineExtra    LineKind = "extra"
)

type Line struct {
	Kind  LineKind        `json:"kind"`
	Label string          `json:"label"`
	Rate  decimal.Decimal `json:"rate"`
	Result
}

type Totals struct {
	SubtotalNet decimal.Decimal `json:"subtotal_net"`
	TotalTax    decimal.Decimal `json:"total_tax"`
	TotalGross  decimal.Decimal `json:"total_gross"`
}

// BookingTax is the per-line and aggregate tax of one booking. It is stored
// verbatim as JSON next to the booking.
type BookingTax struct {
	Enabled  bool     `json:"enabled"`
	Mode     Mode     `json:"mode"`
	Rounding Rounding `json:"rounding"`
	Decimals int32    `json:"decimals"`
	Lines    []Line   `json:"lines"`
	Totals   Totals   `json:"totals"`
}

type ExtraAmount struct {
	Label  string
	Amount decimal.Decimal
}

// BookingAmounts are the pre-tax amounts as priced: room excludes the child cost.
type BookingAmounts struct {
	Room     decimal.Decimal
	Children decimal.Decimal
	Extras   []ExtraAmount
}
