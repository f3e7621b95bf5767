package eto

import (
	"fmt"
	"math"
)

// Psychrometer identifies the ventilation class of a psychrometer,
// which fixes the instrument's psychrometric coefficient.
type Psychrometer int

const (
	// PsychrometerVentilated is an Asmann-type psychrometer with
	// forced ventilation of about 5 m/s.
	PsychrometerVentilated Psychrometer = 1

	// PsychrometerNaturallyVentilated is a naturally ventilated
	// psychrometer with air movement of about 1 m/s.
	PsychrometerNaturallyVentilated Psychrometer = 2

	// PsychrometerNonVentilated is a non-ventilated psychrometer
	// installed indoors.
	PsychrometerNonVentilated Psychrometer = 3
)

// AtmPressure estimates atmospheric pressure [kPa] at an altitude [m]
// above sea level, assuming 20 degrees C for a standard atmosphere
// (FAO-56 eq. 7).
func AtmPressure(altitude float64) float64 {
	ratio := (293.0 - 0.0065*altitude) / 293.0
	return math.Pow(ratio, 5.26) * 101.3
}

// PsyConst calculates the psychrometric constant [kPa per degree C]
// from atmospheric pressure [kPa] (FAO-56 eq. 8). It assumes a latent
// heat of vaporization of 2.45 MJ/kg, appropriate near 20 degrees C.
func PsyConst(atmosPres float64) float64 {
	return 0.000665 * atmosPres
}

// PsyConstOfPsychrometer calculates the psychrometric constant
// [kPa per degree C] of a psychrometer at an atmospheric pressure [kPa]
// (FAO-56 eq. 16). The instrument's ventilation class selects the
// coefficient.
func PsyConstOfPsychrometer(psychrometer Psychrometer, atmosPres float64) (float64, error) {
	var coefficient float64
	switch psychrometer {
	case PsychrometerVentilated:
		coefficient = 0.000662
	case PsychrometerNaturallyVentilated:
		coefficient = 0.000800
	case PsychrometerNonVentilated:
		coefficient = 0.001200
	default:
		return 0, fmt.Errorf("psychrometer should be in range 1 to 3: %d", psychrometer)
	}
	return coefficient * atmosPres, nil
}

// WindSpeed2m adjusts a wind speed [m/s] measured at a height [m] above
// the ground down to the standard 2 m measurement height, assuming a
// logarithmic profile over short grass (FAO-56 eq. 47).
func WindSpeed2m(ws, z float64) float64 {
	logProfile := math.Log(67.8*z - 5.42)
	return ws * (4.87 / logProfile)
}
