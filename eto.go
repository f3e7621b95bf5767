package eto

import (
	"errors"
	"fmt"
	"math"
)

// DailyMeanT calculates the daily mean air temperature from the day's
// extremes, the definition FAO-56 uses for standardized calculations
// rather than an average of continuous readings.
func DailyMeanT(tmin, tmax float64) float64 {
	return (tmin + tmax) / 2.0
}

// MonthlySoilHeatFlux estimates the soil heat flux [MJ m-2 day-1] for a
// month from the mean air temperatures of the months either side of it
// (FAO-56 eq. 43). Positive flux warms the soil. For daily estimates
// the flux is negligible; pass 0 to [FAO56PenmanMonteith] instead.
func MonthlySoilHeatFlux(tMonthPrev, tMonthNext float64) float64 {
	return 0.07 * (tMonthNext - tMonthPrev)
}

// MonthlySoilHeatFlux2 estimates the soil heat flux [MJ m-2 day-1] for
// a month from its own mean air temperature and the previous month's
// (FAO-56 eq. 44), for when the next month is not yet known.
func MonthlySoilHeatFlux2(tMonthPrev, tMonthCur float64) float64 {
	return 0.14 * (tMonthCur - tMonthPrev)
}

// FAO56PenmanMonteith estimates daily reference evapotranspiration
// [mm day-1] for the hypothetical grass reference crop using the
// FAO-56 Penman-Monteith equation (eq. 6), the method FAO recommends
// whenever the data for it exist.
//
//	netRad    net radiation at the crop surface [MJ m-2 day-1]
//	t         daily mean air temperature [K]
//	ws        wind speed at 2 m height [m/s]
//	svp       saturation vapour pressure [kPa]
//	avp       actual vapour pressure [kPa]
//	deltaSvp  slope of the saturation vapour pressure curve [kPa per degree C]
//	psy       psychrometric constant [kPa per degree C]
//	shf       soil heat flux [MJ m-2 day-1], 0 for daily estimates
func FAO56PenmanMonteith(netRad, t, ws, svp, avp, deltaSvp, psy, shf float64) (float64, error) {
	if t == 0 {
		return 0, errors.New("air temperature t is zero kelvin")
	}
	denom := deltaSvp + psy*(1+0.34*ws)
	if denom == 0 {
		return 0, errors.New("delta svp plus weighted psychrometric constant is zero")
	}
	energy := 0.408 * (netRad - shf) * deltaSvp / denom
	aero := 900 * ws / t * (svp - avp) * psy / denom
	return energy + aero, nil
}

// Hargreaves estimates daily reference evapotranspiration [mm day-1]
// from temperature and extraterrestrial radiation alone (FAO-56
// eq. 52), the fallback when the wind, humidity or radiation data the
// Penman-Monteith equation needs are missing or of doubtful quality.
//
// Temperatures are in degrees Celsius; etRad is the extraterrestrial
// radiation [MJ m-2 day-1] from [EtRad].
func Hargreaves(tmin, tmax, tmean, etRad float64) (float64, error) {
	if tmax < tmin {
		return 0, fmt.Errorf("tmax %g is below tmin %g", tmax, tmin)
	}
	spread := math.Sqrt(tmax - tmin)
	return 0.0023 * (tmean + 17.8) * spread * 0.408 * etRad, nil
}
