//go:build unit

package tax_test

import (
	"encoding/json"
	"testing"

	"hotel-booking-core/internal/domain/tax"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), append([]any{"expected %s, got %s", expected, actual}, msgAndArgs...)...)
}

func TestCalculateTax(t *testing.T) {
	testCases := []struct {
		name   string
		amount string
		rate   string
		mode   tax.Mode
		net    string
		tax    string
		gross  string
	}{
		{name: "disabled", amount: "100", rate: "20", mode: tax.ModeDisabled, net: "100", tax: "0", gross: "100"},
		{name: "vat inclusive", amount: "120", rate: "20", mode: tax.ModeVAT, net: "100", tax: "20", gross: "120"},
		{name: "sales tax exclusive", amount: "100", rate: "8", mode: tax.ModeSalesTax, net: "100", tax: "8", gross: "108"},
		{name: "unknown mode passes through", amount: "100", rate: "8", mode: tax.Mode("gst"), net: "100", tax: "0", gross: "100"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := tax.CalculateTax(dec(tc.amount), dec(tc.rate), tc.mode)
			assertDecimal(t, tc.net, r.Net)
			assertDecimal(t, tc.tax, r.Tax)
			assertDecimal(t, tc.gross, r.Gross)
		})
	}
}

func TestCalculateTax_ZeroRateOrAmountIsIdentity(t *testing.T) {
	for _, mode := range []tax.Mode{tax.ModeVAT, tax.ModeSalesTax, tax.ModeDisabled} {
		for _, c := range []struct{ amount, rate string }{
			{"0", "20"}, {"0", "0"}, {"99.99", "0"}, {"1234.5", "0"},
		} {
			r := tax.CalculateTax(dec(c.amount), dec(c.rate), mode)
			assert.True(t, r.Net.Equal(r.Gross), "mode=%s amount=%s rate=%s", mode, c.amount, c.rate)
			assert.True(t, r.Tax.IsZero(), "mode=%s amount=%s rate=%s", mode, c.amount, c.rate)
			assertDecimal(t, c.amount, r.Gross)
		}
	}
}

func TestCalculateFromGross_RoundTrip(t *testing.T) {
	tolerance := dec("0.000001")
	for _, gross := range []string{"0.01", "10.005", "99.99", "120", "1234.56", "100000"} {
		for _, rate := range []string{"5", "7.7", "19", "20", "21", "25.5"} {
			r := tax.CalculateFromGross(dec(gross), dec(rate))
			back := r.Net.Mul(decimal.NewFromInt(1).Add(dec(rate).Div(decimal.NewFromInt(100))))
			assert.True(t, back.Sub(dec(gross)).Abs().LessThanOrEqual(tolerance),
				"gross=%s rate=%s net=%s back=%s", gross, rate, r.Net, back)
			assert.True(t, r.Net.Add(r.Tax).Equal(r.Gross))
		}
	}
}

func TestCalculateFromNet_Exact(t *testing.T) {
	for _, net := range []string{"0.01", "10.005", "50", "99.99", "1234.56"} {
		for _, rate := range []string{"5", "7.25", "8.875", "10"} {
			r := tax.CalculateFromNet(dec(net), dec(rate))
			expected := dec(net).Add(dec(net).Mul(dec(rate)).Div(decimal.NewFromInt(100)))
			assert.True(t, expected.Equal(r.Gross), "net=%s rate=%s", net, rate)
			assert.True(t, dec(net).Equal(r.Net))
		}
	}
}

func TestSettings_Normalize(t *testing.T) {
	t.Run("misconfiguration degrades to no tax", func(t *testing.T) {
		s := tax.Settings{
			Mode:              tax.Mode("flat"),
			AccommodationRate: dec("-5"),
			ExtrasRate:        dec("-1"),
			Rounding:          tax.Rounding("banker"),
			Decimals:          -3,
		}.Normalize()

		assert.Equal(t, tax.ModeDisabled, s.Mode)
		assert.True(t, s.AccommodationRate.IsZero())
		assert.True(t, s.ExtrasRate.IsZero())
		assert.Equal(t, tax.RoundingPerLine, s.Rounding)
		assert.Equal(t, tax.DefaultDecimals, s.Decimals)
		assert.False(t, s.Enabled())
	})

	t.Run("negative rate in an enabled mode yields zero tax", func(t *testing.T) {
		calc := tax.NewCalculator(tax.Settings{Mode: tax.ModeSalesTax, AccommodationRate: dec("-10"), Decimals: 2})
		out := calc.CalculateBookingTax(tax.BookingAmounts{Room: dec("200")})
		assertDecimal(t, "0", out.Totals.TotalTax)
		assertDecimal(t, "200", out.Totals.TotalGross)
	})

	t.Run("valid settings are untouched", func(t *testing.T) {
		in := tax.Settings{Mode: tax.ModeVAT, AccommodationRate: dec("10"), ExtrasRate: dec("20"), Rounding: tax.RoundingPerTotal, Decimals: 3}
		assert.Equal(t, in, in.Normalize())
	})
}

func TestCalculator_CalculateBookingTax(t *testing.T) {
	t.Run("sales tax on a breakfast extra", func(t *testing.T) {
		calc := tax.NewCalculator(tax.Settings{
			Mode:              tax.ModeSalesTax,
			AccommodationRate: dec("12"),
			ExtrasRate:        dec("10"),
			Rounding:          tax.RoundingPerLine,
			Decimals:          2,
		})
		out := calc.CalculateBookingTax(tax.BookingAmounts{
			Room:   dec("200"),
			Extras: []tax.ExtraAmount{{Label: "Breakfast", Amount: dec("50")}},
		})

		require.Len(t, out.Lines, 2)
		breakfast := out.Lines[1]
		assert.Equal(t, tax.LineExtra, breakfast.Kind)
		assert.Equal(t, "5.00", breakfast.Tax.StringFixed(2))
		assert.Equal(t, "55.00", breakfast.Gross.StringFixed(2))

		assertDecimal(t, "250", out.Totals.SubtotalNet)
		assertDecimal(t, "29", out.Totals.TotalTax)
		assertDecimal(t, "279", out.Totals.TotalGross)
	})

	t.Run("vat children taxed at accommodation rate", func(t *testing.T) {
		calc := tax.NewCalculator(tax.Settings{
			Mode:              tax.ModeVAT,
			AccommodationRate: dec("10"),
			ExtrasRate:        dec("20"),
			Rounding:          tax.RoundingPerLine,
			Decimals:          2,
		})
		out := calc.CalculateBookingTax(tax.BookingAmounts{Room: dec("220"), Children: dec("44")})

		require.Len(t, out.Lines, 2)
		assert.Equal(t, tax.LineChildren, out.Lines[1].Kind)
		assertDecimal(t, "10", out.Lines[1].Rate)
		assertDecimal(t, "40", out.Lines[1].Net)
		assertDecimal(t, "4", out.Lines[1].Tax)
		assertDecimal(t, "240", out.Totals.SubtotalNet)
		assertDecimal(t, "24", out.Totals.TotalTax)
		assertDecimal(t, "264", out.Totals.TotalGross)
	})

	t.Run("disabled passes lines through unchanged", func(t *testing.T) {
		calc := tax.NewCalculator(tax.Settings{Mode: tax.ModeDisabled, AccommodationRate: dec("10"), Decimals: 2})
		out := calc.CalculateBookingTax(tax.BookingAmounts{
			Room:     dec("100.005"),
			Children: dec("20"),
			Extras:   []tax.ExtraAmount{{Label: "Parking", Amount: dec("15")}},
		})

		assert.False(t, out.Enabled)
		require.Len(t, out.Lines, 3)
		for _, l := range out.Lines {
			assert.True(t, l.Tax.IsZero())
			assert.True(t, l.Net.Equal(l.Gross))
			assert.True(t, l.Rate.IsZero())
		}
		assertDecimal(t, "100.005", out.Lines[0].Net)
		assertDecimal(t, "135.005", out.Totals.TotalGross)
		assertDecimal(t, "0", out.Totals.TotalTax)
	})

	t.Run("children line omitted when there is no child cost", func(t *testing.T) {
		calc := tax.NewCalculator(tax.Settings{Mode: tax.ModeSalesTax, AccommodationRate: dec("10"), Decimals: 2})
		out := calc.CalculateBookingTax(tax.BookingAmounts{Room: dec("100")})
		require.Len(t, out.Lines, 1)
		assert.Equal(t, tax.LineRoom, out.Lines[0].Kind)
	})
}

func TestCalculator_RoundingStrategiesDiverge(t *testing.T) {
	amounts := tax.BookingAmounts{
		Room: decimal.Zero,
		Extras: []tax.ExtraAmount{
			{Label: "A", Amount: dec("10.005")},
			{Label: "B", Amount: dec("10.005")},
			{Label: "C", Amount: dec("10.005")},
		},
	}
	base := tax.Settings{Mode: tax.ModeSalesTax, ExtrasRate: dec("7.25"), Decimals: 2}

	perLine := base
	perLine.Rounding = tax.RoundingPerLine
	perTotal := base
	perTotal.Rounding = tax.RoundingPerTotal

	lineOut := tax.NewCalculator(perLine).CalculateBookingTax(amounts)
	totalOut := tax.NewCalculator(perTotal).CalculateBookingTax(amounts)

	// each line: 10.005 * 7.25% = 0.7253625 -> 0.73; sum of rounded lines 2.19
	assert.Equal(t, "2.19", lineOut.Totals.TotalTax.StringFixed(2))
	// aggregate: 2.1760875 -> 2.18
	assert.Equal(t, "2.18", totalOut.Totals.TotalTax.StringFixed(2))
	assert.False(t, lineOut.Totals.TotalTax.Equal(totalOut.Totals.TotalTax))

	// displayed lines are re-rounded in both strategies
	for i := range lineOut.Lines {
		assert.True(t, lineOut.Lines[i].Tax.Equal(totalOut.Lines[i].Tax))
	}
	assert.Equal(t, "30.02", totalOut.Totals.SubtotalNet.StringFixed(2))
	assert.Equal(t, "30.03", lineOut.Totals.SubtotalNet.StringFixed(2))
}

func TestCalculator_RoundedLinesBalance(t *testing.T) {
	testCases := []struct {
		name     string
		settings tax.Settings
		amounts  tax.BookingAmounts
		net      string
		tax      string
		gross    string
	}{
		{
			name:     "vat half cent on both sides",
			settings: tax.Settings{Mode: tax.ModeVAT, AccommodationRate: dec("100"), Rounding: tax.RoundingPerLine, Decimals: 2},
			amounts:  tax.BookingAmounts{Room: dec("2.01")},
			net:      "1.01", tax: "1.00", gross: "2.01",
		},
		{
			name:     "vat aggregate",
			settings: tax.Settings{Mode: tax.ModeVAT, ExtrasRate: dec("100"), Rounding: tax.RoundingPerTotal, Decimals: 2},
			amounts: tax.BookingAmounts{Extras: []tax.ExtraAmount{
				{Label: "A", Amount: dec("2.01")},
				{Label: "B", Amount: dec("2.01")},
				{Label: "C", Amount: dec("2.01")},
			}},
			net: "3.02", tax: "3.01", gross: "6.03",
		},
		{
			name:     "sales tax keeps gross as net plus tax",
			settings: tax.Settings{Mode: tax.ModeSalesTax, AccommodationRate: dec("7.25"), Rounding: tax.RoundingPerLine, Decimals: 2},
			amounts:  tax.BookingAmounts{Room: dec("10.005")},
			net:      "10.01", tax: "0.73", gross: "10.74",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := tax.NewCalculator(tc.settings).CalculateBookingTax(tc.amounts)

			for _, l := range out.Lines {
				assert.True(t, l.Net.Add(l.Tax).Equal(l.Gross), "%s: %s + %s != %s", l.Label, l.Net, l.Tax, l.Gross)
			}
			assertDecimal(t, tc.net, out.Totals.SubtotalNet)
			assertDecimal(t, tc.tax, out.Totals.TotalTax)
			assertDecimal(t, tc.gross, out.Totals.TotalGross)
		})
	}
}

func TestBookingTax_JSONRoundTrip(t *testing.T) {
	calc := tax.NewCalculator(tax.Settings{Mode: tax.ModeVAT, AccommodationRate: dec("10"), ExtrasRate: dec("20"), Rounding: tax.RoundingPerTotal, Decimals: 2})
	out := calc.CalculateBookingTax(tax.BookingAmounts{
		Room:   dec("330"),
		Extras: []tax.ExtraAmount{{Label: "Spa", Amount: dec("60")}},
	})

	raw, err := out.MarshalBreakdown()
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Equal(t, "vat", generic["mode"])
	assert.Contains(t, generic, "totals")

	back, err := tax.UnmarshalBreakdown(raw)
	require.NoError(t, err)

	decimalEqual := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(out, back, decimalEqual); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}
