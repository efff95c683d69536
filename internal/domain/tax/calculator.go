package tax

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// CalculateTax splits amount into net, tax and gross for mode. Results are not rounded.
func CalculateTax(amount, rate decimal.Decimal, mode Mode) Result {
	if rate.IsZero() || amount.IsZero() {
		return passThrough(amount)
	}
	switch mode {
	case ModeVAT:
		return CalculateFromGross(amount, rate)
	case ModeSalesTax:
		return CalculateFromNet(amount, rate)
	default:
		return passThrough(amount)
	}
}

// CalculateFromGross treats gross as tax-inclusive.
func CalculateFromGross(gross, rate decimal.Decimal) Result {
	if rate.IsZero() || gross.IsZero() {
		return passThrough(gross)
	}
	net := gross.Div(one.Add(rate.Div(hundred)))
	return Result{Net: net, Tax: gross.Sub(net), Gross: gross}
}

// CalculateFromNet adds tax on top of net.
func CalculateFromNet(net, rate decimal.Decimal) Result {
	if rate.IsZero() || net.IsZero() {
		return passThrough(net)
	}
	t := net.Mul(rate).Div(hundred)
	return Result{Net: net, Tax: t, Gross: net.Add(t)}
}

func passThrough(amount decimal.Decimal) Result {
	return Result{Net: amount, Tax: decimal.Zero, Gross: amount}
}

type Calculator struct {
	settings Settings
}

func NewCalculator(settings Settings) *Calculator {
	return &Calculator{settings: settings.Normalize()}
}

func (c *Calculator) Settings() Settings {
	return c.settings
}

// CalculateBookingTax taxes the room and children at the accommodation rate and
// every extra at the extras rate, then aggregates according to the rounding mode.
func (c *Calculator) CalculateBookingTax(amounts BookingAmounts) BookingTax {
	s := c.settings
	out := BookingTax{
		Enabled:  s.Enabled(),
		Mode:     s.Mode,
		Rounding: s.Rounding,
		Decimals: s.Decimals,
	}

	lines := c.rawLines(amounts)
	if !s.Enabled() {
		var sum Result
		for _, l := range lines {
			sum = sum.Add(l.Result)
		}
		out.Lines = lines
		out.Totals = Totals{SubtotalNet: sum.Net, TotalTax: sum.Tax, TotalGross: sum.Gross}
		return out
	}

	var sum Result
	for i := range lines {
		if s.Rounding == RoundingPerLine {
			lines[i].Result = lines[i].Result.Round(s.Decimals, s.Mode)
		}
		sum = sum.Add(lines[i].Result)
	}

	if s.Rounding == RoundingPerTotal {
		sum = sum.Round(s.Decimals, s.Mode)
		// display only; totals above come from the unrounded lines
		for i := range lines {
			lines[i].Result = lines[i].Result.Round(s.Decimals, s.Mode)
		}
	}

	out.Lines = lines
	out.Totals = Totals{
		SubtotalNet: sum.Net,
		TotalTax:    sum.Tax,
		TotalGross:  sum.Gross,
	}
	return out
}

func (c *Calculator) rawLines(amounts BookingAmounts) []Line {
	s := c.settings
	mode := s.Mode
	accommodationRate, extrasRate := s.AccommodationRate, s.ExtrasRate
	if !s.Enabled() {
		mode = ModeDisabled
		accommodationRate, extrasRate = decimal.Zero, decimal.Zero
	}

	lines := make([]Line, 0, 2+len(amounts.Extras))
	lines = append(lines, Line{
		Kind:   LineRoom,
		Label:  "Room",
		Rate:   accommodationRate,
		Result: CalculateTax(amounts.Room, accommodationRate, mode),
	})
	if !amounts.Children.IsZero() {
		lines = append(lines, Line{
			Kind:   LineChildren,
			Label:  "Children",
			Rate:   accommodationRate,
			Result: CalculateTax(amounts.Children, accommodationRate, mode),
		})
	}
	for _, e := range amounts.Extras {
		lines = append(lines, Line{
			Kind:   LineExtra,
			Label:  e.Label,
			Rate:   extrasRate,
			Result: CalculateTax(e.Amount, extrasRate, mode),
		})
	}
	return lines
}

func (b BookingTax) MarshalBreakdown() (json.RawMessage, error) {
	return json.Marshal(b)
}

func UnmarshalBreakdown(raw json.RawMessage) (BookingTax, error) {
	var b BookingTax
	err := json.Unmarshal(raw, &b)
	return b, err
}
