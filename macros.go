package main

// Energy density per gram of each macro.
const (
	kcalPerGramProtein = 4.0
	kcalPerGramFat     = 9.0
	kcalPerGramCarbs   = 4.0
)

// Macro tunable defaults and bounds. Protein is body-weight-relative (g/kg)
// rather than a share of calories so lean-mass support survives total-calorie
// swings; fat is a fraction of the total.
const (
	defaultProteinGPerKg = 1.8
	defaultFatFraction   = 0.25
	maxProteinGPerKg     = 4.0
	maxFatFraction       = 0.6
)

// partitionMacros splits a daily calorie target into protein, fat, and carb
// grams. Carbohydrate absorbs whatever protein and fat leave over and clamps
// to zero when they already consume the full budget; fat kilocalories also
// clamp to zero when the calorie target itself is negative. Grams never go
// negative.
func partitionMacros(totalCalories, weightKg, proteinGPerKg, fatFraction float64) (proteinG, fatsG, carbsG float64) {
	proteinG = proteinGPerKg * weightKg
	proteinKcal := proteinG * kcalPerGramProtein

	fatKcal := totalCalories * fatFraction
	if fatKcal < 0 {
		// A delta larger than TDEE can push the calorie target below zero;
		// grams are never negative.
		fatKcal = 0
	}
	fatsG = fatKcal / kcalPerGramFat

	carbsKcal := totalCalories - proteinKcal - fatKcal
	if carbsKcal < 0 {
		carbsKcal = 0
	}
	carbsG = carbsKcal / kcalPerGramCarbs

	return proteinG, fatsG, carbsG
}
