//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-07-12 is a Saturday
var (
	weekday  = date("2025-07-09")
	saturday = date("2025-07-12")
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rule(id, typeID int64, start, end string, amount string, op pricing.Operation, priority int) pricing.Rule {
	return pricing.Rule{
		ID:        id,
		TypeID:    typeID,
		StartDate: date(start),
		EndDate:   date(end),
		Amount:    dec(amount),
		Operation: op,
		Priority:  priority,
	}
}

func TestResolver_DailyPrice_NoRules(t *testing.T) {
	resolver := pricing.NewResolver(pricing.Settings{}, nil)

	t.Run("type base price", func(t *testing.T) {
		rm, rt := builder.NewRoomBuilder().BuildDomain()
		for _, d := range []time.Time{weekday, saturday, date("2026-02-28")} {
			assert.Equal(t, "100", resolver.DailyPrice(rm, rt, d).String())
		}
	})

	t.Run("custom price", func(t *testing.T) {
		rm, rt := builder.NewRoomBuilder().WithCustomPrice("135.5").BuildDomain()
		assert.Equal(t, "135.5", resolver.DailyPrice(rm, rt, weekday).String())
	})

	t.Run("rule outside range leaves base unchanged", func(t *testing.T) {
		rm, rt := builder.NewRoomBuilder().BuildDomain()
		r := pricing.NewResolver(pricing.Settings{}, []pricing.Rule{
			rule(1, 0, "2025-12-20", "2025-12-31", "50", pricing.OperationPercent, 1),
		})
		assert.Equal(t, "100", r.DailyPrice(rm, rt, weekday).String())
	})

	t.Run("missing room or type yields zero", func(t *testing.T) {
		rm, rt := builder.NewRoomBuilder().BuildDomain()
		assert.True(t, resolver.DailyPrice(nil, rt, weekday).IsZero())
		assert.True(t, resolver.DailyPrice(rm, nil, weekday).IsZero())
	})
}

func TestResolver_DailyPrice_Rules(t *testing.T) {
	rm, rt := builder.NewRoomBuilder().BuildDomain()

	testCases := []struct {
		name     string
		rules    []pricing.Rule
		on       time.Time
		expected string
	}{
		{
			name:     "global +10 percent",
			rules:    []pricing.Rule{rule(1, 0, "2025-07-01", "2025-07-31", "10", pricing.OperationPercent, 0)},
			on:       weekday,
			expected: "110",
		},
		{
			name:     "fixed amount",
			rules:    []pricing.Rule{rule(1, 0, "2025-07-01", "2025-07-31", "25.50", pricing.OperationFixed, 0)},
			on:       weekday,
			expected: "125.5",
		},
		{
			name:     "negative percent discount",
			rules:    []pricing.Rule{rule(1, 0, "2025-07-01", "2025-07-31", "-15", pricing.OperationPercent, 0)},
			on:       weekday,
			expected: "85",
		},
		{
			name:     "range end date is inclusive",
			rules:    []pricing.Rule{rule(1, 0, "2025-07-01", "2025-07-09", "10", pricing.OperationPercent, 0)},
			on:       weekday,
			expected: "110",
		},
		{
			name: "type-specific beats global even with lower priority",
			rules: []pricing.Rule{
				rule(1, 0, "2025-07-01", "2025-07-31", "50", pricing.OperationPercent, 99),
				rule(2, 10, "2025-07-01", "2025-07-31", "10", pricing.OperationPercent, 1),
			},
			on:       weekday,
			expected: "110",
		},
		{
			name: "higher priority wins within the same specificity",
			rules: []pricing.Rule{
				rule(1, 10, "2025-07-01", "2025-07-31", "10", pricing.OperationPercent, 1),
				rule(2, 10, "2025-07-01", "2025-07-31", "20", pricing.OperationFixed, 5),
			},
			on:       weekday,
			expected: "120",
		},
		{
			name:     "other type's rule is ignored",
			rules:    []pricing.Rule{rule(1, 11, "2025-07-01", "2025-07-31", "10", pricing.OperationPercent, 1)},
			on:       weekday,
			expected: "100",
		},
		{
			name:     "unknown operation is no adjustment",
			rules:    []pricing.Rule{rule(1, 0, "2025-07-01", "2025-07-31", "10", pricing.Operation("double"), 1)},
			on:       weekday,
			expected: "100",
		},
		{
			name:     "malformed range never matches",
			rules:    []pricing.Rule{rule(1, 0, "2025-07-31", "2025-07-01", "10", pricing.OperationPercent, 1)},
			on:       weekday,
			expected: "100",
		},
		{
			name:     "result is clamped at zero",
			rules:    []pricing.Rule{rule(1, 0, "2025-07-01", "2025-07-31", "-150", pricing.OperationFixed, 1)},
			on:       weekday,
			expected: "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := pricing.NewResolver(pricing.Settings{}, tc.rules)
			actual := resolver.DailyPrice(rm, rt, tc.on)
			assert.True(t, dec(tc.expected).Equal(actual), "expected %s, got %s", tc.expected, actual)
		})
	}
}

func TestResolver_DailyPrice_WeekendAndHoliday(t *testing.T) {
	rm, rt := builder.NewRoomBuilder().BuildDomain()
	seasonal := []pricing.Rule{rule(1, 0, "2025-07-01", "2025-07-31", "10", pricing.OperationPercent, 0)}

	weekend := pricing.Adjustment{Enabled: true, Kind: pricing.AdjustmentPercent, Value: dec("20")}
	holiday := pricing.Adjustment{Enabled: true, Kind: pricing.AdjustmentFixed, Value: dec("15")}

	testCases := []struct {
		name     string
		settings pricing.Settings
		rules    []pricing.Rule
		on       time.Time
		expected string
	}{
		{
			name:     "weekend percent relative to post-rule base",
			settings: pricing.Settings{Weekend: weekend, WeekendDays: []string{"saturday", "sunday"}},
			rules:    seasonal,
			on:       saturday,
			expected: "132",
		},
		{
			name:     "weekend disabled",
			settings: pricing.Settings{Weekend: pricing.Adjustment{Kind: pricing.AdjustmentPercent, Value: dec("20")}, WeekendDays: []string{"saturday"}},
			on:       saturday,
			expected: "100",
		},
		{
			name:     "weekday is not a weekend",
			settings: pricing.Settings{Weekend: weekend, WeekendDays: []string{"saturday", "sunday"}},
			on:       weekday,
			expected: "100",
		},
		{
			name:     "weekend day names are case-insensitive",
			settings: pricing.Settings{Weekend: weekend, WeekendDays: []string{" Saturday "}},
			on:       saturday,
			expected: "120",
		},
		{
			name: "multiplier",
			settings: pricing.Settings{
				Weekend:     pricing.Adjustment{Enabled: true, Kind: pricing.AdjustmentMultiplier, Value: dec("1.5")},
				WeekendDays: []string{"saturday"},
			},
			on:       saturday,
			expected: "150",
		},
		{
			name:     "holiday fixed",
			settings: pricing.Settings{Holiday: holiday, Holidays: []string{"2025-07-09"}},
			on:       weekday,
			expected: "115",
		},
		{
			name: "weekend and holiday without stacking takes the larger",
			settings: pricing.Settings{
				Weekend: weekend, WeekendDays: []string{"saturday"},
				Holiday: holiday, Holidays: []string{"2025-07-12"},
			},
			on:       saturday,
			expected: "120",
		},
		{
			name: "weekend and holiday with stacking adds both",
			settings: pricing.Settings{
				Weekend: weekend, WeekendDays: []string{"saturday"},
				Holiday: holiday, Holidays: []string{"2025-07-12"},
				Stack: true,
			},
			on:       saturday,
			expected: "135",
		},
		{
			name: "larger of two discounts is the less negative",
			settings: pricing.Settings{
				Weekend:     pricing.Adjustment{Enabled: true, Kind: pricing.AdjustmentPercent, Value: dec("-10")},
				WeekendDays: []string{"saturday"},
				Holiday:     pricing.Adjustment{Enabled: true, Kind: pricing.AdjustmentFixed, Value: dec("-30")},
				Holidays:    []string{"2025-07-12"},
			},
			on:       saturday,
			expected: "90",
		},
		{
			name: "unknown adjustment kind is ignored",
			settings: pricing.Settings{
				Weekend:     pricing.Adjustment{Enabled: true, Kind: pricing.AdjustmentKind("bogus"), Value: dec("99")},
				WeekendDays: []string{"saturday"},
			},
			on:       saturday,
			expected: "100",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := pricing.NewResolver(tc.settings, tc.rules)
			actual := resolver.DailyPrice(rm, rt, tc.on)
			assert.True(t, dec(tc.expected).Equal(actual), "expected %s, got %s", tc.expected, actual)
		})
	}
}

func TestResolver_NightlyRates(t *testing.T) {
	rm, rt := builder.NewRoomBuilder().BuildDomain()
	resolver := pricing.NewResolver(pricing.Settings{}, []pricing.Rule{
		rule(7, 0, "2025-07-11", "2025-07-11", "50", pricing.OperationFixed, 0),
	})
	stay := builder.MustStay("2025-07-10", "2025-07-13")

	rates := resolver.NightlyRates(rm, rt, stay)
	require.Len(t, rates, 3)
	assert.Equal(t, "100", rates[0].Price.String())
	assert.Equal(t, "150", rates[1].Price.String())
	assert.Equal(t, int64(7), rates[1].RuleID)
	assert.Equal(t, int64(0), rates[2].RuleID)
	assert.Equal(t, "350", resolver.StayTotal(rm, rt, stay).String())
}

func TestSelectRule(t *testing.T) {
	rules := []pricing.Rule{
		rule(3, 0, "2025-07-01", "2025-07-31", "1", pricing.OperationFixed, 5),
		rule(2, 10, "2025-07-01", "2025-07-31", "1", pricing.OperationFixed, 5),
		rule(1, 10, "2025-07-01", "2025-07-31", "1", pricing.OperationFixed, 5),
	}

	selected, ok := pricing.SelectRule(rules, 10, weekday)
	require.True(t, ok)
	assert.Equal(t, int64(1), selected.ID, "equal rank resolves to the lowest id")

	ranked := pricing.RankRules(rules, 10, weekday)
	require.Len(t, ranked, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{ranked[0].ID, ranked[1].ID, ranked[2].ID})

	_, ok = pricing.SelectRule(rules, 10, date("2025-08-01"))
	assert.False(t, ok)
}
