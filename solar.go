package eto

import (
	"math"

	"github.com/couchcryptid/eto/validate"
)

// SolDec calculates the solar declination in radians from the day of
// the year (FAO-56 eq. 24).
func SolDec(dayOfYear int) (float64, error) {
	if err := validate.DayOfYear(dayOfYear); err != nil {
		return 0, err
	}
	orbit := (2.0 * math.Pi / 365.0) * float64(dayOfYear)
	return 0.409 * math.Sin(orbit-1.39), nil
}

// InvRelDistEarthSun calculates the inverse relative distance between
// the earth and the sun from the day of the year (FAO-56 eq. 23). The
// result is dimensionless and stays within [0.967, 1.033].
func InvRelDistEarthSun(dayOfYear int) (float64, error) {
	if err := validate.DayOfYear(dayOfYear); err != nil {
		return 0, err
	}
	orbit := (2.0 * math.Pi / 365.0) * float64(dayOfYear)
	return 1 + 0.033*math.Cos(orbit), nil
}

// SunsetHourAngle calculates the sunset hour angle in radians from the
// latitude and the solar declination, both in radians (FAO-56 eq. 25).
//
// The cosine of the hour angle leaves [-1, 1] at high latitudes around
// the solstices. It is clamped before the arccosine so polar day yields
// pi (the sun never sets) and polar night yields 0, rather than an
// undefined result.
func SunsetHourAngle(latitude, solDec float64) (float64, error) {
	if err := validate.Latitude(latitude); err != nil {
		return 0, err
	}
	if err := validate.SolarDeclination(solDec); err != nil {
		return 0, err
	}
	cosSha := -math.Tan(latitude) * math.Tan(solDec)
	clamped := math.Min(math.Max(cosSha, -1.0), 1.0)
	return math.Acos(clamped), nil
}

// DaylightHours calculates the maximum possible daylight hours for a
// day from its sunset hour angle in radians (FAO-56 eq. 34).
func DaylightHours(sha float64) (float64, error) {
	if err := validate.SunsetHourAngle(sha); err != nil {
		return 0, err
	}
	return (24.0 / math.Pi) * sha, nil
}
