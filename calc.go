package main

// Sane bounds for biometric input. Age applies as entered; weight and height
// are checked after normalization, in kilograms and centimeters, so both unit
// systems share one range.
const (
	minAgeYears = 10
	maxAgeYears = 120
	minWeightKg = 20.0
	maxWeightKg = 600.0
	minHeightCm = 80.0
	maxHeightCm = 300.0
)

// resolveGoalSpec validates the goal-intensity fields on in and folds them
// into a tagged goalSpec. Exactly one mode must be supplied: intensity_pct,
// or the (target_change, timeframe_weeks) pair. Both at once — or neither —
// is an ambiguous request and fails with unsupportedGoalModeError. This holds
// for "maintain" too; the resolver then ignores the values and zeroes the
// delta.
func resolveGoalSpec(in personInput) (goalSpec, error) {
	hasPct := in.IntensityPct != nil
	hasMass := in.TargetChange != nil || in.TimeframeWeeks != nil

	switch {
	case hasPct && hasMass:
		return goalSpec{}, &unsupportedGoalModeError{
			Reason: "intensity_pct and target_change/timeframe_weeks are mutually exclusive",
		}
	case hasPct:
		pct := *in.IntensityPct
		if pct <= 0 || pct >= 1 {
			return goalSpec{}, invalidInput("intensity_pct", "must be between 0 and 1 exclusive")
		}
		return percentageGoal(pct), nil
	case hasMass:
		if in.TargetChange == nil || in.TimeframeWeeks == nil {
			return goalSpec{}, &unsupportedGoalModeError{
				Reason: "mass/timeframe mode requires both target_change and timeframe_weeks",
			}
		}
		return massOverTimeGoal(normalizeMass(in.Units, *in.TargetChange), *in.TimeframeWeeks), nil
	default:
		return goalSpec{}, &unsupportedGoalModeError{
			Reason: "supply intensity_pct or target_change with timeframe_weeks",
		}
	}
}

// calculatePlan is the whole engine: normalize units, estimate BMR and TDEE,
// resolve the goal delta, and partition macros. Pure — no I/O, no shared
// state — so concurrent requests need no coordination. Fails fast with
// invalidInputError or unsupportedGoalModeError; a returned result is always
// complete.
func calculatePlan(in personInput) (calcResult, error) {
	if in.Sex != "male" && in.Sex != "female" {
		return calcResult{}, invalidInput("sex", "must be male or female")
	}
	if in.AgeYears < minAgeYears || in.AgeYears > maxAgeYears {
		return calcResult{}, invalidInput("age_years", "must be between 10 and 120")
	}
	if !validUnits[in.Units] {
		return calcResult{}, invalidInput("units", "must be metric or imperial")
	}
	activityX, ok := activityMultipliers[in.ActivityLevel]
	if !ok {
		return calcResult{}, invalidInput("activity_level",
			"must be one of: sedentary, light, moderate, very, extra")
	}
	bodytypeX, ok := bodyTypeMultipliers[in.BodyType]
	if !ok {
		return calcResult{}, invalidInput("body_type",
			"must be one of: ectomorph, mesomorph, endomorph")
	}
	if !validGoals[in.Goal] {
		return calcResult{}, invalidInput("goal", "must be one of: lose, maintain, gain")
	}

	proteinGPerKg := defaultProteinGPerKg
	if in.ProteinGPerKg != nil {
		proteinGPerKg = *in.ProteinGPerKg
		if proteinGPerKg <= 0 || proteinGPerKg > maxProteinGPerKg {
			return calcResult{}, invalidInput("protein_g_per_kg", "must be between 0 and 4")
		}
	}
	fatFraction := defaultFatFraction
	if in.FatFractionOfCalories != nil {
		fatFraction = *in.FatFractionOfCalories
		if fatFraction < 0 || fatFraction > maxFatFraction {
			return calcResult{}, invalidInput("fat_fraction_of_calories", "must be between 0 and 0.6")
		}
	}

	spec, err := resolveGoalSpec(in)
	if err != nil {
		return calcResult{}, err
	}

	weightKg, heightCm, err := normalizeUnits(in.Units, in.Weight, in.Height)
	if err != nil {
		return calcResult{}, err
	}
	if weightKg < minWeightKg || weightKg > maxWeightKg {
		return calcResult{}, invalidInput("weight", "must be between 20 and 600 kg")
	}
	if heightCm < minHeightCm || heightCm > maxHeightCm {
		return calcResult{}, invalidInput("height", "must be between 80 and 300 cm")
	}

	bmr := mifflinStJeor(in.Sex, in.AgeYears, weightKg, heightCm)
	tdee := computeTDEE(bmr, activityX, bodytypeX)
	dailyDelta := resolveDailyDelta(in.Goal, spec, tdee)
	calories := tdee + dailyDelta

	proteinG, fatsG, carbsG := partitionMacros(calories, weightKg, proteinGPerKg, fatFraction)

	return calcResult{
		BMR:                bmr,
		TDEE:               tdee,
		Calories:           calories,
		ActivityMultiplier: activityX,
		BodytypeMultiplier: bodytypeX,
		DailyDeltaKcal:     dailyDelta,
		ProteinG:           proteinG,
		FatsG:              fatsG,
		CarbsG:             carbsG,
		AggressivePlan:     isAggressivePlan(dailyDelta, tdee),
	}, nil
}
