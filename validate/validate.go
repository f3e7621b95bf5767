// Package validate provides the range checks shared by the
// evapotranspiration formulas: day of the year, hour counts, and the
// angles of solar geometry.
//
// Every check returns nil when the value lies inside its physical
// domain and an error naming the bounds and the offending value
// otherwise. Checks never panic; the caller decides whether a
// violation is fatal.
package validate

import (
	"fmt"

	"github.com/couchcryptid/eto/convert"
)

// Angle bounds in radians, derived once from their degree limits.
var (
	latitudeMin = convert.DegToRad(-90.0)
	latitudeMax = convert.DegToRad(90.0)

	// Solar declination never leaves the band the sun traces between
	// the solstices.
	solarDeclinationMin = convert.DegToRad(-23.5)
	solarDeclinationMax = convert.DegToRad(23.5)

	sunsetHourAngleMin = convert.DegToRad(0.0)
	sunsetHourAngleMax = convert.DegToRad(180.0)
)

// DayHours checks that an hour count lies in 0-24. The label names the
// argument in the error so formulas validating several hour counts can
// report which one was out of range.
func DayHours(hours int, label string) error {
	if hours < 0 || hours > 24 {
		return fmt.Errorf("%s should be an integer in the range 0-24: %d", label, hours)
	}
	return nil
}

// DayOfYear checks that a day of the year lies in 1-366.
func DayOfYear(doy int) error {
	if doy < 1 || doy > 366 {
		return fmt.Errorf("day of the year (doy) should be an integer in the range 1-366: %d", doy)
	}
	return nil
}

// Latitude checks that a latitude in radians lies between the poles.
func Latitude(latitude float64) error {
	if latitude < latitudeMin || latitude > latitudeMax {
		return fmt.Errorf("latitude outside valid range %v to %v rad: %v", latitudeMin, latitudeMax, latitude)
	}
	return nil
}

// SolarDeclination checks that a solar declination in radians lies
// within ±23.5 degrees of the equatorial plane.
func SolarDeclination(solDec float64) error {
	if solDec < solarDeclinationMin || solDec > solarDeclinationMax {
		return fmt.Errorf("solar declination outside valid range %v to %v rad: %v", solarDeclinationMin, solarDeclinationMax, solDec)
	}
	return nil
}

// SunsetHourAngle checks that a sunset hour angle in radians lies in
// [0, pi], the half-arc between solar noon and sunset.
func SunsetHourAngle(sha float64) error {
	if sha < sunsetHourAngleMin || sha > sunsetHourAngleMax {
		return fmt.Errorf("sunset hour angle outside valid range %v to %v rad: %v", sunsetHourAngleMin, sunsetHourAngleMax, sha)
	}
	return nil
}
