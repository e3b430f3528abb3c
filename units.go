package main

// Conversion factors for imperial input. Applied exactly once, at entry —
// everything past normalizeUnits works in kilograms and centimeters.
const (
	lbsPerKg = 0.453592 // lb → kg
	cmPerIn  = 2.54     // in → cm
)

// validUnits is the set of accepted unit systems. Single source of truth —
// also used for input validation in calculatePlan.
var validUnits = map[string]bool{
	"metric":   true,
	"imperial": true,
}

// normalizeUnits converts a (weight, height) pair into kilograms and
// centimeters. Metric input passes through unchanged; no rounding is applied
// at this stage so downstream arithmetic keeps full precision.
func normalizeUnits(units string, weight, height float64) (weightKg, heightCm float64, err error) {
	if weight <= 0 {
		return 0, 0, invalidInput("weight", "must be positive")
	}
	if height <= 0 {
		return 0, 0, invalidInput("height", "must be positive")
	}
	if units == "imperial" {
		return weight * lbsPerKg, height * cmPerIn, nil
	}
	return weight, height, nil
}

// normalizeMass converts a standalone mass value (e.g. a target weight
// change) into kilograms, independent of any height. The sign is preserved;
// the goal resolver strips it.
func normalizeMass(units string, mass float64) float64 {
	if units == "imperial" {
		return mass * lbsPerKg
	}
	return mass
}
