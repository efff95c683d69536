package pricing

import (
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/room"

	"github.com/shopspring/decimal"
)

type Resolver struct {
	settings Settings
	rules    []Rule
}

func NewResolver(settings Settings, rules []Rule) *Resolver {
	return &Resolver{
		settings: settings,
		rules:    rules,
	}
}

type NightlyRate struct {
	Date   time.Time
	Price  decimal.Decimal
	RuleID int64
}

// DailyPrice is the price of one night on date. It depends only on its inputs and
// the resolver's settings, and is never negative.
func (r *Resolver) DailyPrice(rm *room.Room, rt *room.RoomType, date time.Time) decimal.Decimal {
	price, _ := r.dailyPrice(rm, rt, date)
	return price
}

func (r *Resolver) NightlyRates(rm *room.Room, rt *room.RoomType, stay booking.Stay) []NightlyRate {
	dates := stay.Dates()
	rates := make([]NightlyRate, 0, len(dates))
	for _, d := range dates {
		price, ruleID := r.dailyPrice(rm, rt, d)
		rates = append(rates, NightlyRate{Date: d, Price: price, RuleID: ruleID})
	}
	return rates
}

func (r *Resolver) StayTotal(rm *room.Room, rt *room.RoomType, stay booking.Stay) decimal.Decimal {
	total := decimal.Zero
	for _, n := range r.NightlyRates(rm, rt, stay) {
		total = total.Add(n.Price)
	}
	return total
}

func (r *Resolver) dailyPrice(rm *room.Room, rt *room.RoomType, date time.Time) (decimal.Decimal, int64) {
	if rm == nil || rt == nil {
		return decimal.Zero, 0
	}

	base := rm.EffectivePrice(rt)

	var ruleID int64
	if rule, ok := SelectRule(r.rules, rt.ID(), date); ok {
		base = rule.Apply(base)
		ruleID = rule.ID
	}

	base = base.Add(r.calendarDelta(base, date))

	if base.IsNegative() {
		return decimal.Zero, ruleID
	}
	return base, ruleID
}

func (r *Resolver) calendarDelta(base decimal.Decimal, date time.Time) decimal.Decimal {
	weekend := r.settings.IsWeekend(date)
	holiday := r.settings.IsHoliday(date)

	var weekendDelta, holidayDelta decimal.Decimal
	if weekend {
		weekendDelta = r.settings.Weekend.Delta(base)
	}
	if holiday {
		holidayDelta = r.settings.Holiday.Delta(base)
	}

	switch {
	case weekend && holiday && !r.settings.Stack:
		return decimal.Max(weekendDelta, holidayDelta)
	default:
		return weekendDelta.Add(holidayDelta)
	}
}
