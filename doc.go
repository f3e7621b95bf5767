// Package eto estimates reference evapotranspiration (ETo) for a grass
// reference crop using the equations of Allen, Pereira, Raes and Smith
// (1998), "Crop evapotranspiration - Guidelines for computing crop water
// requirements", FAO Irrigation and Drainage Paper 56. Each function
// evaluates one published equation; the FAO-56 equation number appears
// in its doc comment.
//
// # Units
//
// Inputs and outputs follow the FAO-56 conventions:
//
//	temperature        degrees Celsius, except where a function documents kelvin
//	pressure           kPa
//	vapour pressure    kPa
//	radiation          MJ m-2 day-1
//	wind speed         m/s at 2 m height
//	angles             radians
//	relative humidity  percent, 0-100
//	ETo                mm day-1
//
// Nothing tags a value with its unit at runtime; the convert package
// covers the common boundary conversions (degrees to radians, km/h to
// m/s, Celsius to kelvin).
//
// # Composition
//
// No formula calls another formula. A caller assembles an estimate by
// feeding each function's output into the next, in data-dependency
// order. The daily Penman-Monteith pipeline for a station with measured
// solar radiation looks like:
//
//	doy := date.YearDay()
//	sd, _ := eto.SolDec(doy)
//	sha, _ := eto.SunsetHourAngle(lat, sd)
//	ird, _ := eto.InvRelDistEarthSun(doy)
//	ra, _ := eto.EtRad(lat, sd, sha, ird)
//	rso := eto.ClearSkyRad(altitude, ra)
//	// ... vapour pressures, psychrometric constant, net radiation ...
//	et, _ := eto.FAO56PenmanMonteith(rn, tk, u2, es, ea, delta, psy, 0)
//
// The temperature-only [Hargreaves] estimator needs just the solar
// geometry chain. See the package examples for complete derivations.
//
// # Validation and Errors
//
// Formulas whose inputs carry a physical range (day of the year,
// latitude, solar declination, sunset hour angle, hour counts) check
// them through the validate package and return the violation as an
// ordinary error; an invalid input is never clamped or silently
// computed with. Conditions that would otherwise surface as NaN or Inf
// deep in a pipeline (a negative temperature range under a square root,
// zero daylight hours, a vanishing Penman-Monteith denominator) are
// likewise returned as errors, so a bad record in a batch can be
// skipped without poisoning downstream arithmetic. Everything else
// trusts the caller: a function with a bare float64 return accepts any
// finite input.
package eto
