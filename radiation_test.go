package eto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/eto/convert"
)

func TestEtRad(t *testing.T) {
	tests := []struct {
		name     string
		latitude float64
		solDec   float64
		sha      float64
		ird      float64
		expected float64
	}{
		// Allen et al. (1998), example 8: -20 deg on 3 September.
		{"20S in september", -0.3490658503988659, 0.11965509269706703, 1.5270224148343854, 0.9848288195980806, 32.193995875112726},
		// Allen et al. (1998), example 10: Rio de Janeiro on 15 May.
		{"rio de janeiro in may", -0.39968039870670147, 0.3288180074771167, 1.426162062491891, 0.9774306590863878, 25.111027766060587},
		{"brussels in july", 0.8866272600131193, 0.39543582991381776, 2.1080887393309156, 0.9670989613924745, 41.08837556354228},
		{"22N in september", 0.3839724354387525, 0.11965509269706703, 1.6193912931886418, 0.9848288195980806, 36.71529370742842},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, err := EtRad(tt.latitude, tt.solDec, tt.sha, tt.ird)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, ra, 1e-9)
		})
	}

	t.Run("rejects latitude beyond the poles", func(t *testing.T) {
		_, err := EtRad(2.0, 0.1, 1.5, 1.0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude outside valid range")
	})

	t.Run("rejects solar declination beyond the tropics", func(t *testing.T) {
		_, err := EtRad(0.5, 0.6, 1.5, 1.0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "solar declination outside valid range")
	})

	t.Run("rejects sunset hour angle out of range", func(t *testing.T) {
		_, err := EtRad(0.5, 0.1, 3.2, 1.0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sunset hour angle outside valid range")
	})
}

func TestClearSkyRad(t *testing.T) {
	tests := []struct {
		name     string
		altitude float64
		etRad    float64
		expected float64
	}{
		{"lowland station", 100, 41.08837556354228, 30.898458423783794},
		{"sea level", 0, 25.111027766060587, 18.83327082454544},
		{"high plain", 1800, 30, 23.580000000000002},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ClearSkyRad(tt.altitude, tt.etRad), 1e-9)
		})
	}
}

func TestSolRadFromSunHours(t *testing.T) {
	tests := []struct {
		name          string
		daylightHours int
		sunshineHours int
		etRad         float64
		expected      float64
	}{
		{"rio de janeiro in may", 11, 7, 25.111027766060587, 14.267629412534424},
		{"fully overcast keeps the diffuse floor", 24, 0, 40, 10},
		{"half sunshine", 12, 6, 30, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := SolRadFromSunHours(tt.daylightHours, tt.sunshineHours, tt.etRad)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, rs, 1e-9)
		})
	}

	t.Run("rejects zero daylight", func(t *testing.T) {
		_, err := SolRadFromSunHours(0, 0, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "zero daylight hours")
	})

	t.Run("rejects daylight hours out of range", func(t *testing.T) {
		_, err := SolRadFromSunHours(25, 5, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "daylight hours")
	})

	t.Run("rejects sunshine hours out of range", func(t *testing.T) {
		_, err := SolRadFromSunHours(12, -1, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sunshine hours")
	})
}

func TestSolRadFromT(t *testing.T) {
	tests := []struct {
		name     string
		etRad    float64
		csRad    float64
		tmin     float64
		tmax     float64
		coastal  bool
		expected float64
	}{
		{"interior station", 25, 18, 10, 25, false, 15.491933384829668},
		{"capped at clear sky", 25, 14, 10, 25, false, 14},
		{"coastal station", 25, 99, 10, 25, true, 18.396670894485233},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := SolRadFromT(tt.etRad, tt.csRad, tt.tmin, tt.tmax, tt.coastal)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, rs, 1e-9)
		})
	}

	t.Run("rejects inverted temperature range", func(t *testing.T) {
		_, err := SolRadFromT(25, 18, 20, 10, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "below tmin")
	})
}

func TestSolRadIsland(t *testing.T) {
	assert.InDelta(t, 17.0, SolRadIsland(30), 1e-9)
	assert.InDelta(t, 10.0, SolRadIsland(20), 1e-9)
}

func TestNetInSolRad(t *testing.T) {
	tests := []struct {
		name     string
		solRad   float64
		albedo   float64
		expected float64
	}{
		{"grass reference crop", 14.5, GrassAlbedo, 11.165000000000001},
		{"measured radiation", 22.07, GrassAlbedo, 16.9939},
		{"black body absorbs everything", 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NetInSolRad(tt.solRad, tt.albedo), 1e-9)
		})
	}
}

func TestNetOutLwRad(t *testing.T) {
	t.Run("reproduces FAO-56 example 11", func(t *testing.T) {
		rnl := NetOutLwRad(
			convert.CelsiusToKelvin(19.4),
			convert.CelsiusToKelvin(25.1),
			14.5, 18.8, 2.1,
		)
		assert.InDelta(t, 3.5405267667973193, rnl, 1e-9)
	})

	t.Run("measured radiation day in brussels", func(t *testing.T) {
		rnl := NetOutLwRad(
			convert.CelsiusToKelvin(12.3),
			convert.CelsiusToKelvin(21.5),
			22.07, 30.898458423783794, 1.4086238018595982,
		)
		assert.InDelta(t, 3.7112414816035413, rnl, 1e-9)
	})
}

func TestNetRad(t *testing.T) {
	rns := NetInSolRad(14.5, GrassAlbedo)
	rnl := NetOutLwRad(
		convert.CelsiusToKelvin(19.4),
		convert.CelsiusToKelvin(25.1),
		14.5, 18.8, 2.1,
	)
	assert.InDelta(t, 7.62447323320268, NetRad(rns, rnl), 1e-9)
	assert.InDelta(t, 0.0, NetRad(3.3, 3.3), 1e-9)
}

func TestEnergyToEvap(t *testing.T) {
	assert.InDelta(t, 5.418239999999999, EnergyToEvap(13.28), 1e-9)
	assert.InDelta(t, 16.0548, EnergyToEvap(39.35), 1e-9)
	assert.InDelta(t, 0.0, EnergyToEvap(0), 1e-9)
}
