// Package convert provides the unit conversions used at the boundaries
// of the evapotranspiration formulas: temperature, angle, and wind speed.
package convert

import "math"

// CelsiusToKelvin converts a temperature in degrees Celsius to kelvin.
func CelsiusToKelvin(celsius float64) float64 {
	return celsius + 273.15
}

// KelvinToCelsius converts a temperature in kelvin to degrees Celsius.
func KelvinToCelsius(kelvin float64) float64 {
	return kelvin - 273.15
}

// DegToRad converts an angle in degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * (math.Pi / 180.0)
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * (180.0 / math.Pi)
}

// KphToMps converts a speed in kilometres per hour to metres per second.
func KphToMps(kph float64) float64 {
	return kph * 1000.0 / 3600.0
}
