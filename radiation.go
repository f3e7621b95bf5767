package eto

import (
	"errors"
	"fmt"
	"math"

	"github.com/couchcryptid/eto/validate"
)

// EtRad estimates daily extraterrestrial radiation, the radiation at
// the top of the atmosphere, from solar geometry (FAO-56 eq. 21).
//
// latitude, solDec and sha are in radians; ird is the output of
// [InvRelDistEarthSun]. The result is in MJ m-2 day-1.
func EtRad(latitude, solDec, sha, ird float64) (float64, error) {
	if err := validate.Latitude(latitude); err != nil {
		return 0, err
	}
	if err := validate.SolarDeclination(solDec); err != nil {
		return 0, err
	}
	if err := validate.SunsetHourAngle(sha); err != nil {
		return 0, err
	}
	dayLength := (24.0 * 60.0) / math.Pi
	seasonal := sha * math.Sin(latitude) * math.Sin(solDec)
	diurnal := math.Cos(latitude) * math.Cos(solDec) * math.Sin(sha)
	return dayLength * SolarConstant * ird * (seasonal + diurnal), nil
}

// ClearSkyRad estimates clear-sky solar radiation, the cloudless-day
// ceiling on incoming shortwave radiation, from the station altitude
// [m] and the extraterrestrial radiation [MJ m-2 day-1] (FAO-56
// eq. 37).
func ClearSkyRad(altitude, etRad float64) float64 {
	return (0.00002*altitude + 0.75) * etRad
}

// SolRadFromSunHours estimates incoming solar radiation [MJ m-2 day-1]
// from relative sunshine duration using the Angstrom formula with the
// FAO-56 default coefficients (eq. 35).
//
// daylightHours is the day length for the date and latitude, rounded to
// whole hours; sunshineHours is the recorded bright sunshine. etRad is
// the extraterrestrial radiation for the day.
func SolRadFromSunHours(daylightHours, sunshineHours int, etRad float64) (float64, error) {
	if err := validate.DayHours(daylightHours, "daylight hours"); err != nil {
		return 0, err
	}
	if err := validate.DayHours(sunshineHours, "sunshine hours"); err != nil {
		return 0, err
	}
	if daylightHours == 0 {
		return 0, errors.New("zero daylight hours: sunshine fraction is undefined")
	}
	fraction := 0.5 * float64(sunshineHours) / float64(daylightHours)
	return (fraction + 0.25) * etRad, nil
}

// SolRadFromT estimates incoming solar radiation [MJ m-2 day-1] from
// the daily temperature range using the Hargreaves radiation formula
// (FAO-56 eq. 50), for stations with no sunshine or radiation records.
//
// etRad and csRad are the extraterrestrial and clear-sky radiation for
// the day; tmin and tmax are in degrees Celsius. coastal selects the
// adjustment coefficient: 0.19 where a large body of water dominates
// the air mass, 0.16 inland. The estimate is capped at csRad since
// surface radiation cannot exceed the cloudless ceiling.
func SolRadFromT(etRad, csRad, tmin, tmax float64, coastal bool) (float64, error) {
	if tmax < tmin {
		return 0, fmt.Errorf("tmax %g is below tmin %g", tmax, tmin)
	}
	adj := 0.16
	if coastal {
		adj = 0.19
	}
	spread := math.Sqrt(tmax - tmin)
	solRad := adj * spread * etRad
	return math.Min(solRad, csRad), nil
}

// SolRadIsland estimates incoming solar radiation [MJ m-2 day-1] on an
// island from extraterrestrial radiation alone (FAO-56 eq. 51). Only
// suitable at low altitudes (0-100 m) on islands of 20 km width or
// more, where the surrounding water governs cloudiness.
func SolRadIsland(etRad float64) float64 {
	return (0.7 * etRad) - 4.0
}

// NetInSolRad calculates net incoming shortwave radiation
// [MJ m-2 day-1] from measured or estimated solar radiation and the
// surface albedo (FAO-56 eq. 38). Use [GrassAlbedo] for the reference
// crop.
func NetInSolRad(solRad, albedo float64) float64 {
	return (1 - albedo) * solRad
}

// NetOutLwRad calculates net outgoing longwave radiation
// [MJ m-2 day-1], the energy the surface loses by thermal emission
// (FAO-56 eq. 39).
//
// tmin and tmax are in kelvin; solRad and csRad in MJ m-2 day-1; avp in
// kPa. avp must be non-negative and csRad non-zero, which holds for any
// day the upstream formulas produced.
func NetOutLwRad(tmin, tmax, solRad, csRad, avp float64) float64 {
	emission := StefanBoltzmann * ((math.Pow(tmin, 4) + math.Pow(tmax, 4)) / 2)
	humidity := 0.34 - 0.14*math.Sqrt(avp)
	relShortwave := solRad / csRad
	cloudiness := 1.35*relShortwave - 0.35
	return emission * humidity * cloudiness
}

// NetRad calculates daily net radiation [MJ m-2 day-1] at the grass
// reference surface as the balance of incoming shortwave and outgoing
// longwave radiation (FAO-56 eq. 40).
func NetRad(niSwRad, noLwRad float64) float64 {
	return niSwRad - noLwRad
}

// EnergyToEvap converts energy [MJ m-2 day-1] to the equivalent depth
// of evaporated water [mm day-1] (FAO-56 eq. 20).
func EnergyToEvap(energy float64) float64 {
	return 0.408 * energy
}
