package main

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels — also used for
// input validation in calculatePlan.
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"very":      1.725,
	"extra":     1.9,
}

// bodyTypeMultipliers maps somatotype strings to a gentle adjustment layered
// on top of the standard TDEE formula. Not from the literature — a product
// choice: eco +5%, meso 0%, endo −5%. The three constants are load-bearing
// and must not drift.
var bodyTypeMultipliers = map[string]float64{
	"ectomorph": 1.05,
	"mesomorph": 1.00,
	"endomorph": 0.95,
}

// mifflinStJeor computes BMR from metric biometrics. Sex selects only the
// additive offset: +5 for male, −161 for female.
func mifflinStJeor(sex string, ageYears, weightKg, heightCm float64) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*ageYears
	if sex == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// computeTDEE scales BMR by the activity and body-type multipliers.
// Positive for any valid input since both multipliers are positive.
func computeTDEE(bmr, activityX, bodytypeX float64) float64 {
	return bmr * activityX * bodytypeX
}
