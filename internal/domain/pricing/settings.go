package pricing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type AdjustmentKind string

const (
	// multiplier adds base*(value-1), so 1.2 means +20%
	AdjustmentMultiplier AdjustmentKind = "multiplier"
	AdjustmentPercent    AdjustmentKind = "percent"
	AdjustmentFixed      AdjustmentKind = "fixed"
)

type Adjustment struct {
	Enabled bool
	Kind    AdjustmentKind
	Value   decimal.Decimal
}

// Delta is the amount this adjustment adds to base.
func (a Adjustment) Delta(base decimal.Decimal) decimal.Decimal {
	switch a.Kind {
	case AdjustmentMultiplier:
		return base.Mul(a.Value).Sub(base)
	case AdjustmentPercent:
		return base.Mul(a.Value).Div(hundred)
	case AdjustmentFixed:
		return a.Value
	default:
		return decimal.Zero
	}
}

// Settings is the pricing configuration for one request. Build it once and pass
// it to NewResolver; nothing in this package reads global state.
type Settings struct {
	Weekend     Adjustment
	WeekendDays []string
	Holiday     Adjustment
	// Holidays are dates formatted as 2006-01-02.
	Holidays []string
	// Stack applies both weekend and holiday adjustments; otherwise only the larger one.
	Stack bool
}

func (s Settings) IsWeekend(date time.Time) bool {
	if !s.Weekend.Enabled {
		return false
	}
	name := strings.ToLower(date.Weekday().String())
	for _, d := range s.WeekendDays {
		if strings.ToLower(strings.TrimSpace(d)) == name {
			return true
		}
	}
	return false
}

func (s Settings) IsHoliday(date time.Time) bool {
	if !s.Holiday.Enabled {
		return false
	}
	key := date.Format("2006-01-02")
	for _, h := range s.Holidays {
		if strings.TrimSpace(h) == key {
			return true
		}
	}
	return false
}
