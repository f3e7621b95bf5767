package main

import (
	"fmt"
	"math"
	"time"

	"github.com/couchcryptid/eto"
	"github.com/couchcryptid/eto/convert"
)

// station describes the observation site and date shared by every
// subcommand.
type station struct {
	latitudeDeg float64
	altitudeM   float64
	coastal     bool
	date        time.Time
	doy         int
}

// dailyObs holds one day of weather observations. Optional readings are
// NaN when not observed; sunshineHours is -1 when not observed.
type dailyObs struct {
	tmin float64
	tmax float64

	rhMin  float64
	rhMax  float64
	rhMean float64
	tdew   float64

	windSpeed  float64 // m/s at windHeight
	windHeight float64

	solRad        float64 // measured, MJ m-2 day-1
	sunshineHours int     // whole hours of bright sunshine

	soilHeatFlux float64
}

// solarGeometry carries the radiation chain for one day at one station.
type solarGeometry struct {
	solDec      float64
	sunsetHour  float64
	invRelDist  float64
	daylight    float64
	etRad       float64
	clearSkyRad float64
}

// dailyResult carries every intermediate of the daily Penman-Monteith
// pipeline so the report and the debug log can show the full
// derivation.
type dailyResult struct {
	geometry solarGeometry

	pressure float64
	psy      float64
	tmean    float64
	deltaSvp float64
	es       float64
	ea       float64
	eaSource string
	u2       float64
	solRad   float64
	rsSource string

	netShortwave float64
	netLongwave  float64
	netRad       float64

	et float64
}

func computeSolar(st station) (solarGeometry, error) {
	latitude := convert.DegToRad(st.latitudeDeg)

	solDec, err := eto.SolDec(st.doy)
	if err != nil {
		return solarGeometry{}, err
	}
	sha, err := eto.SunsetHourAngle(latitude, solDec)
	if err != nil {
		return solarGeometry{}, err
	}
	ird, err := eto.InvRelDistEarthSun(st.doy)
	if err != nil {
		return solarGeometry{}, err
	}
	daylight, err := eto.DaylightHours(sha)
	if err != nil {
		return solarGeometry{}, err
	}
	ra, err := eto.EtRad(latitude, solDec, sha, ird)
	if err != nil {
		return solarGeometry{}, err
	}

	return solarGeometry{
		solDec:      solDec,
		sunsetHour:  sha,
		invRelDist:  ird,
		daylight:    daylight,
		etRad:       ra,
		clearSkyRad: eto.ClearSkyRad(st.altitudeM, ra),
	}, nil
}

func computeDaily(st station, obs dailyObs) (dailyResult, error) {
	if obs.tmax < obs.tmin {
		return dailyResult{}, fmt.Errorf("tmax %g is below tmin %g", obs.tmax, obs.tmin)
	}

	geom, err := computeSolar(st)
	if err != nil {
		return dailyResult{}, err
	}

	res := dailyResult{geometry: geom}
	res.pressure = eto.AtmPressure(st.altitudeM)
	res.psy = eto.PsyConst(res.pressure)
	res.tmean = eto.DailyMeanT(obs.tmin, obs.tmax)
	res.deltaSvp = eto.DeltaSvp(res.tmean)
	res.es = eto.MeanSvp(obs.tmin, obs.tmax)
	res.ea, res.eaSource = actualVaporPressure(obs)
	res.u2 = windAt2m(obs)

	res.solRad, res.rsSource, err = solarRadiation(st, obs, geom)
	if err != nil {
		return dailyResult{}, err
	}

	res.netShortwave = eto.NetInSolRad(res.solRad, eto.GrassAlbedo)
	res.netLongwave = eto.NetOutLwRad(
		convert.CelsiusToKelvin(obs.tmin),
		convert.CelsiusToKelvin(obs.tmax),
		res.solRad, geom.clearSkyRad, res.ea,
	)
	res.netRad = eto.NetRad(res.netShortwave, res.netLongwave)

	res.et, err = eto.FAO56PenmanMonteith(
		res.netRad,
		convert.CelsiusToKelvin(res.tmean),
		res.u2, res.es, res.ea, res.deltaSvp, res.psy,
		obs.soilHeatFlux,
	)
	if err != nil {
		return dailyResult{}, err
	}
	return res, nil
}

func computeHargreaves(st station, tmin, tmax, tmean float64) (solarGeometry, float64, error) {
	geom, err := computeSolar(st)
	if err != nil {
		return solarGeometry{}, 0, err
	}
	et, err := eto.Hargreaves(tmin, tmax, tmean, geom.etRad)
	if err != nil {
		return solarGeometry{}, 0, err
	}
	return geom, et, nil
}

// actualVaporPressure derives ea from the best humidity observation
// available, in the FAO-56 preference order: dew point, both RH
// extremes, RH maximum, RH mean, then the tmin approximation.
func actualVaporPressure(obs dailyObs) (float64, string) {
	switch {
	case !math.IsNaN(obs.tdew):
		return eto.AvpFromTdew(obs.tdew), "dew point"
	case !math.IsNaN(obs.rhMin) && !math.IsNaN(obs.rhMax):
		ea := eto.AvpFromRHMinMax(eto.SvpFromT(obs.tmin), eto.SvpFromT(obs.tmax), obs.rhMin, obs.rhMax)
		return ea, "rh extremes"
	case !math.IsNaN(obs.rhMax):
		return eto.AvpFromRHMax(eto.SvpFromT(obs.tmin), obs.rhMax), "rh maximum"
	case !math.IsNaN(obs.rhMean):
		ea := eto.AvpFromRHMean(eto.SvpFromT(obs.tmin), eto.SvpFromT(obs.tmax), obs.rhMean)
		return ea, "rh mean"
	default:
		return eto.AvpFromTmin(obs.tmin), "tmin approximation"
	}
}

// windAt2m converts the wind observation to the standard 2 m height.
// A missing observation falls back to 2 m/s, the world average FAO-56
// suggests for stations without anemometers.
func windAt2m(obs dailyObs) float64 {
	if math.IsNaN(obs.windSpeed) {
		return 2.0
	}
	if obs.windHeight == 2.0 {
		return obs.windSpeed
	}
	return eto.WindSpeed2m(obs.windSpeed, obs.windHeight)
}

// solarRadiation selects measured radiation when available, then the
// sunshine-duration estimate, then the temperature-range fallback.
func solarRadiation(st station, obs dailyObs, geom solarGeometry) (float64, string, error) {
	if !math.IsNaN(obs.solRad) {
		return obs.solRad, "measured", nil
	}
	if obs.sunshineHours >= 0 {
		daylight := int(math.Round(geom.daylight))
		rs, err := eto.SolRadFromSunHours(daylight, obs.sunshineHours, geom.etRad)
		if err != nil {
			return 0, "", err
		}
		return rs, "sunshine duration", nil
	}
	rs, err := eto.SolRadFromT(geom.etRad, geom.clearSkyRad, obs.tmin, obs.tmax, st.coastal)
	if err != nil {
		return 0, "", err
	}
	return rs, "temperature range", nil
}
