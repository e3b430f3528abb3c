package main

import "math"

// kcalPerKg is the standard approximation that one kilogram of body mass
// corresponds to 7700 kcal.
const kcalPerKg = 7700.0

// aggressiveDeltaFraction is the advisory threshold: a daily delta above this
// fraction of maintenance flags the plan as likely unsustainable. Strictly
// greater — a delta of exactly 25% of TDEE does not trip it.
const aggressiveDeltaFraction = 0.25

// validGoals is the set of accepted goals. Single source of truth — also used
// for input validation in calculatePlan.
var validGoals = map[string]bool{
	"lose":     true,
	"maintain": true,
	"gain":     true,
}

/* ─── Goal spec (tagged variant) ─────────────────────────────────────── */

type goalMode int

const (
	goalModePercentage goalMode = iota
	goalModeMassOverTime
)

// goalSpec is a tagged variant over the two mutually exclusive ways of
// stating goal intensity. Construct via percentageGoal or massOverTimeGoal
// only; the tag makes the exclusivity explicit instead of a pair of optional
// fields that might both be set.
type goalSpec struct {
	mode   goalMode
	pct    float64 // goalModePercentage: fraction of TDEE
	massKg float64 // goalModeMassOverTime: target change, kilograms
	weeks  float64 // goalModeMassOverTime: timeframe
}

func percentageGoal(pct float64) goalSpec {
	return goalSpec{mode: goalModePercentage, pct: pct}
}

func massOverTimeGoal(massKg, weeks float64) goalSpec {
	return goalSpec{mode: goalModeMassOverTime, massKg: massKg, weeks: weeks}
}

/* ─── Delta resolution ───────────────────────────────────────────────── */

// resolveDailyDelta converts a goal and its intensity spec into a signed
// daily caloric adjustment on top of tdee.
//
// "maintain" always yields exactly 0, regardless of whatever intensity or
// target/timeframe values were supplied — those fields are simply ignored.
// In mass/timeframe mode a timeframe of zero or less also degenerates to 0
// rather than a division error; that is a benign case, not a failure.
func resolveDailyDelta(goal string, spec goalSpec, tdee float64) float64 {
	if goal == "maintain" {
		return 0
	}

	var magnitude float64
	switch spec.mode {
	case goalModePercentage:
		magnitude = tdee * math.Abs(spec.pct)
	case goalModeMassOverTime:
		if spec.weeks <= 0 {
			return 0
		}
		magnitude = math.Abs(spec.massKg) * kcalPerKg / (spec.weeks * 7)
	}

	if goal == "lose" {
		return -magnitude
	}
	return magnitude
}

// isAggressivePlan reports whether the daily delta exceeds 25% of
// maintenance. Advisory only — callers surface it as metadata, never reject.
func isAggressivePlan(dailyDelta, tdee float64) bool {
	if tdee <= 0 {
		return false
	}
	return math.Abs(dailyDelta)/tdee > aggressiveDeltaFraction
}
