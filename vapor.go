package eto

import "math"

// SvpFromT calculates the saturation vapour pressure [kPa] at a
// temperature in degrees Celsius (FAO-56 eq. 11).
func SvpFromT(t float64) float64 {
	exponent := (17.27 * t) / (t + 237.3)
	return 0.6108 * math.Exp(exponent)
}

// MeanSvp calculates the daily mean saturation vapour pressure [kPa]
// from the day's temperature extremes in degrees Celsius (FAO-56
// eq. 12).
//
// Because saturation vapour pressure grows non-linearly with
// temperature, this is the mean of the pressures at tmin and tmax, not
// the pressure at the mean temperature.
func MeanSvp(tmin, tmax float64) float64 {
	exponentMin := (17.27 * tmin) / (tmin + 237.3)
	exponentMax := (17.27 * tmax) / (tmax + 237.3)
	svpMin := 0.6108 * math.Exp(exponentMin)
	svpMax := 0.6108 * math.Exp(exponentMax)
	return (svpMin + svpMax) / 2.0
}

// DeltaSvp calculates the slope of the saturation vapour pressure curve
// [kPa per degree C] at a temperature in degrees Celsius (FAO-56
// eq. 13). For the Penman-Monteith equation, evaluate it at the daily
// mean temperature.
func DeltaSvp(t float64) float64 {
	exponent := (17.27 * t) / (t + 237.3)
	saturation := 0.6108 * math.Exp(exponent)
	denominator := math.Pow(t+237.3, 2)
	return (4098 * saturation) / denominator
}

// AvpFromTdew calculates actual vapour pressure [kPa] from the dew
// point temperature in degrees Celsius (FAO-56 eq. 14). The air is
// saturated at the dew point, so this is the preferred estimate when a
// dew point observation exists.
func AvpFromTdew(tdew float64) float64 {
	exponent := (17.27 * tdew) / (tdew + 237.3)
	return 0.6108 * math.Exp(exponent)
}

// AvpFromTwetTdry calculates actual vapour pressure [kPa] from wet and
// dry bulb psychrometer readings in degrees Celsius (FAO-56 eq. 15).
//
// svpTwet is the saturation vapour pressure at the wet bulb
// temperature; psyConst is the psychrometric constant of the
// instrument, from [PsyConstOfPsychrometer] or [PsyConst].
func AvpFromTwetTdry(twet, tdry, svpTwet, psyConst float64) float64 {
	return svpTwet - psyConst*(tdry-twet)
}

// AvpFromRHMinMax calculates actual vapour pressure [kPa] from the
// daily extremes of relative humidity [%] and the saturation vapour
// pressures at the corresponding temperature extremes (FAO-56 eq. 17).
// rhMax pairs with svpTmin (dawn) and rhMin with svpTmax (afternoon).
func AvpFromRHMinMax(svpTmin, svpTmax, rhMin, rhMax float64) float64 {
	fromTmin := svpTmin * rhMax / 100.0
	fromTmax := svpTmax * rhMin / 100.0
	return (fromTmin + fromTmax) / 2.0
}

// AvpFromRHMax calculates actual vapour pressure [kPa] from the maximum
// relative humidity [%] and the saturation vapour pressure at the
// minimum temperature (FAO-56 eq. 18), for stations where RHmin is
// unreliable.
func AvpFromRHMax(svpTmin, rhMax float64) float64 {
	return svpTmin * (rhMax / 100.0)
}

// AvpFromRHMean calculates actual vapour pressure [kPa] from the mean
// relative humidity [%] (FAO-56 eq. 19), the least preferred of the
// humidity-based estimates.
func AvpFromRHMean(svpTmin, svpTmax, rhMean float64) float64 {
	return (rhMean / 100.0) * ((svpTmax + svpTmin) / 2.0)
}

// AvpFromTmin estimates actual vapour pressure [kPa] from the minimum
// temperature in degrees Celsius (FAO-56 eq. 48). It assumes the air at
// dawn is near saturation, so tmin approximates the dew point; the
// assumption weakens in arid climates.
func AvpFromTmin(tmin float64) float64 {
	exponent := (17.27 * tmin) / (tmin + 237.3)
	return 0.611 * math.Exp(exponent)
}

// RHFromAvpSvp calculates relative humidity [%] from actual and
// saturation vapour pressure [kPa]. svp must be non-zero, which holds
// for any terrestrial temperature.
func RHFromAvpSvp(avp, svp float64) float64 {
	return 100.0 * avp / svp
}
