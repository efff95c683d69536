package extra

import (
	"github.com/shopspring/decimal"
)

type PricingType string

const (
	PricingFixed             PricingType = "fixed"
	PricingPerPerson         PricingType = "per_person"
	PricingPerNight          PricingType = "per_night"
	PricingPerPersonPerNight PricingType = "per_person_per_night"
)

type ControlType string

const (
	ControlCheckbox ControlType = "checkbox"
	ControlQuantity ControlType = "quantity"
)

type Extra struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	PricingType PricingType
	ControlType ControlType
}

// Selection is a guest's request for an extra. For checkbox extras any positive
// quantity means "checked".
type Selection struct {
	ExtraID  int64
	Quantity int
}

type Line struct {
	ExtraID   int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Total     decimal.Decimal
}

func (e Extra) IsCheckbox() bool {
	return e.ControlType == ControlCheckbox
}

// Quantity normalises a requested quantity: 1 for a checked checkbox, the
// requested count otherwise, 0 when not selected.
func (e Extra) Quantity(requested int) int {
	if requested <= 0 {
		return 0
	}
	if e.IsCheckbox() {
		return 1
	}
	return requested
}

// LineTotal prices one selection for a stay of nights with persons guests
// (adults plus children). An unknown pricing type is treated as fixed.
func (e Extra) LineTotal(requested, persons, nights int) Line {
	qty := e.Quantity(requested)
	line := Line{
		ExtraID:   e.ID,
		Name:      e.Name,
		UnitPrice: e.Price,
		Quantity:  qty,
		Total:     decimal.Zero,
	}
	if qty == 0 {
		return line
	}

	units := int64(qty)
	switch e.PricingType {
	case PricingPerPerson:
		units = e.personUnits(qty, persons)
	case PricingPerNight:
		units = int64(qty) * int64(nights)
	case PricingPerPersonPerNight:
		units = e.personUnits(qty, persons) * int64(nights)
	}

	line.Total = e.Price.Mul(decimal.NewFromInt(units))
	return line
}

func (e Extra) personUnits(qty, persons int) int64 {
	if e.IsCheckbox() {
		return int64(persons)
	}
	return int64(qty)
}

// PriceSelections matches selections against catalog and prices them in request
// order. Unknown extras and zero quantities are skipped.
func PriceSelections(catalog []Extra, selections []Selection, persons, nights int) ([]Line, decimal.Decimal) {
	byID := make(map[int64]Extra, len(catalog))
	for _, e := range catalog {
		byID[e.ID] = e
	}

	total := decimal.Zero
	lines := make([]Line, 0, len(selections))
	for _, sel := range selections {
		e, ok := byID[sel.ExtraID]
		if !ok {
			continue
		}
		line := e.LineTotal(sel.Quantity, persons, nights)
		if line.Quantity == 0 {
			continue
		}
		lines = append(lines, line)
		total = total.Add(line.Total)
	}
	return lines, total
}
