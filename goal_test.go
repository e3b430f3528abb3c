package main

import (
	"math"
	"testing"
)

/* ─── Intensity-percentage mode ──────────────────────────────────────── */

// TestResolveDailyDelta_PercentageLose verifies the reference vector:
// lose at 15% of a 2500 kcal TDEE is a -375 kcal/day delta.
func TestResolveDailyDelta_PercentageLose(t *testing.T) {
	delta := resolveDailyDelta("lose", percentageGoal(0.15), 2500)
	if math.Abs(delta-(-375)) > 1e-9 {
		t.Errorf("delta = %f, want -375", delta)
	}
}

// TestResolveDailyDelta_PercentageGain verifies gain applies the same
// magnitude with a positive sign.
func TestResolveDailyDelta_PercentageGain(t *testing.T) {
	delta := resolveDailyDelta("gain", percentageGoal(0.15), 2500)
	if math.Abs(delta-375) > 1e-9 {
		t.Errorf("delta = %f, want +375", delta)
	}
}

// TestResolveDailyDelta_PercentageSignStripped verifies the sign of the
// supplied percentage is ignored — the goal alone decides direction.
func TestResolveDailyDelta_PercentageSignStripped(t *testing.T) {
	delta := resolveDailyDelta("lose", percentageGoal(-0.15), 2500)
	if math.Abs(delta-(-375)) > 1e-9 {
		t.Errorf("delta = %f, want -375 even for a negative pct", delta)
	}
}

/* ─── Mass/timeframe mode ────────────────────────────────────────────── */

// TestResolveDailyDelta_MassOverTime verifies the reference vector:
// 5 kg over 8 weeks at 7700 kcal/kg is (5*7700)/56 = 687.5 kcal/day,
// negative for lose.
func TestResolveDailyDelta_MassOverTime(t *testing.T) {
	delta := resolveDailyDelta("lose", massOverTimeGoal(5, 8), 2500)
	if math.Abs(delta-(-687.5)) > 1e-9 {
		t.Errorf("delta = %f, want -687.5", delta)
	}
}

// TestResolveDailyDelta_MassSignStripped verifies a negative target change
// is treated as its absolute value; the goal supplies the sign.
func TestResolveDailyDelta_MassSignStripped(t *testing.T) {
	delta := resolveDailyDelta("gain", massOverTimeGoal(-5, 8), 2500)
	if math.Abs(delta-687.5) > 1e-9 {
		t.Errorf("delta = %f, want +687.5", delta)
	}
}

// TestResolveDailyDelta_ZeroOrNegativeWeeks verifies that weeks <= 0 is a
// benign degenerate case yielding delta 0, not a division error.
func TestResolveDailyDelta_ZeroOrNegativeWeeks(t *testing.T) {
	for _, weeks := range []float64{0, -4} {
		if delta := resolveDailyDelta("lose", massOverTimeGoal(5, weeks), 2500); delta != 0 {
			t.Errorf("weeks=%v: delta = %f, want 0", weeks, delta)
		}
	}
}

/* ─── Maintain override ──────────────────────────────────────────────── */

// TestResolveDailyDelta_MaintainOverrides verifies maintain always zeroes
// the delta, whatever intensity or target/timeframe values are present —
// including the weeks=0 degenerate case.
func TestResolveDailyDelta_MaintainOverrides(t *testing.T) {
	specs := []goalSpec{
		percentageGoal(0.25),
		massOverTimeGoal(10, 4),
		massOverTimeGoal(10, 0),
	}
	for _, spec := range specs {
		if delta := resolveDailyDelta("maintain", spec, 2500); delta != 0 {
			t.Errorf("spec %+v: delta = %f, want 0", spec, delta)
		}
	}
}

/* ─── Advisory threshold ─────────────────────────────────────────────── */

// TestIsAggressivePlan_StrictlyGreater verifies the 25%-of-maintenance
// advisory triggers only strictly above the threshold: exactly 25% must not
// set the flag.
func TestIsAggressivePlan_StrictlyGreater(t *testing.T) {
	if isAggressivePlan(-625, 2500) {
		t.Error("delta exactly 25% of tdee must not flag the plan")
	}
	if !isAggressivePlan(-626, 2500) {
		t.Error("delta above 25% of tdee must flag the plan")
	}
	if !isAggressivePlan(626, 2500) {
		t.Error("the advisory is sign-agnostic; a surplus above 25% must flag too")
	}
	if isAggressivePlan(100, 0) {
		t.Error("zero tdee must not flag (nothing meaningful to compare against)")
	}
}
