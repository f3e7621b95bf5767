package eto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/eto/convert"
)

func TestDailyMeanT(t *testing.T) {
	tests := []struct {
		name     string
		tmin     float64
		tmax     float64
		expected float64
	}{
		{"brussels summer day", 12.3, 21.5, 16.9},
		{"symmetric around zero", -5, 5, 0},
		{"lyon summer day", 14.8, 26.6, 20.700000000000003},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DailyMeanT(tt.tmin, tt.tmax), 1e-9)
		})
	}
}

func TestMonthlySoilHeatFlux(t *testing.T) {
	t.Run("warming months give positive flux", func(t *testing.T) {
		// Allen et al. (1998), example 13: March and May means around
		// an April estimate.
		assert.InDelta(t, 0.3290000000000001, MonthlySoilHeatFlux(14.1, 18.8), 1e-9)
	})

	t.Run("cooling months give negative flux", func(t *testing.T) {
		assert.InDelta(t, -0.3290000000000001, MonthlySoilHeatFlux(18.8, 14.1), 1e-9)
	})
}

func TestMonthlySoilHeatFlux2(t *testing.T) {
	assert.InDelta(t, 0.6580000000000003, MonthlySoilHeatFlux2(14.1, 18.8), 1e-9)
	assert.InDelta(t, 0.0, MonthlySoilHeatFlux2(16.2, 16.2), 1e-9)
}

func TestFAO56PenmanMonteith(t *testing.T) {
	t.Run("reproduces FAO-56 example 18", func(t *testing.T) {
		// Uccle, Belgium on 6 July, using the book's rounded
		// intermediate values; the book reports 3.88 mm/day.
		et, err := FAO56PenmanMonteith(
			13.28,
			convert.CelsiusToKelvin(16.9),
			2.078, 1.997, 1.409, 0.122, 0.0666, 0,
		)
		require.NoError(t, err)
		assert.InDelta(t, 3.876562648821702, et, 1e-9)
		assert.InDelta(t, 3.88, et, 0.005)
	})

	t.Run("full precision intermediates", func(t *testing.T) {
		tk := convert.CelsiusToKelvin(DailyMeanT(14.8, 26.6))
		et, err := FAO56PenmanMonteith(
			13.484324603905302,
			tk,
			2.0, 2.5830172097445447, 1.684062776077632,
			0.15031318408423217, 0.0658071412352921, 0,
		)
		require.NoError(t, err)
		assert.InDelta(t, 4.559136031569341, et, 1e-9)
	})

	t.Run("rejects zero kelvin temperature", func(t *testing.T) {
		_, err := FAO56PenmanMonteith(13.28, 0, 2.078, 1.997, 1.409, 0.122, 0.0666, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "zero kelvin")
	})

	t.Run("rejects vanishing denominator", func(t *testing.T) {
		_, err := FAO56PenmanMonteith(10, 290, 0, 2, 1, 0, 0, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "psychrometric constant is zero")
	})
}

func TestHargreaves(t *testing.T) {
	tests := []struct {
		name     string
		tmin     float64
		tmax     float64
		tmean    float64
		etRad    float64
		expected float64
	}{
		{"moderate climate", 12, 26, 19, 18.8, 2.429168746483397},
		// Allen et al. (1998), example 20: Lyon in July; the book
		// reports about 5.0 mm/day.
		{"lyon in july", 14.8, 26.6, 20.7, 40.554555810136996, 5.033028402788133},
		{"no temperature spread means no estimate", 15, 15, 15, 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			et, err := Hargreaves(tt.tmin, tt.tmax, tt.tmean, tt.etRad)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, et, 1e-9)
		})
	}

	t.Run("rejects inverted temperature range", func(t *testing.T) {
		_, err := Hargreaves(20, 10, 15, 18.8)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tmax 10 is below tmin 20")
	})
}
