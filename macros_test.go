package main

import (
	"math"
	"testing"
)

// TestPartitionMacros_ReferenceVector verifies the reference split:
// 2500 kcal at 70 kg, 2.0 g/kg protein, 25% fat gives 140 g protein
// (560 kcal), 625/9 ≈ 69.4 g fat (625 kcal), 328.75 g carbs (1315 kcal).
func TestPartitionMacros_ReferenceVector(t *testing.T) {
	proteinG, fatsG, carbsG := partitionMacros(2500, 70, 2.0, 0.25)
	if math.Abs(proteinG-140) > 1e-9 {
		t.Errorf("protein = %f g, want 140", proteinG)
	}
	if math.Abs(fatsG-625.0/9.0) > 1e-9 {
		t.Errorf("fat = %f g, want %f", fatsG, 625.0/9.0)
	}
	if math.Abs(carbsG-328.75) > 1e-9 {
		t.Errorf("carbs = %f g, want 328.75", carbsG)
	}
}

// TestPartitionMacros_KcalSum verifies that when nothing clamps, the macro
// kilocalories sum back to the total.
func TestPartitionMacros_KcalSum(t *testing.T) {
	const total = 2200.0
	proteinG, fatsG, carbsG := partitionMacros(total, 80, 1.6, 0.3)
	sum := proteinG*kcalPerGramProtein + fatsG*kcalPerGramFat + carbsG*kcalPerGramCarbs
	if math.Abs(sum-total) > 1e-9 {
		t.Errorf("macro kcal sum = %f, want %f", sum, total)
	}
}

// TestPartitionMacros_CarbsClampBoundary exercises the carb saturation rule
// exactly at and past the boundary. At 100 kg and 4.0 g/kg,
// protein alone is 1600 kcal; with 20% fat on a 2000 kcal total, protein and
// fat consume the whole budget and carbs land on exactly zero. Shrinking the
// total pushes carbs negative, which must clamp to zero — never go below.
func TestPartitionMacros_CarbsClampBoundary(t *testing.T) {
	_, _, carbsG := partitionMacros(2000, 100, 4.0, 0.2)
	if math.Abs(carbsG) > 1e-9 {
		t.Errorf("carbs at the exact boundary = %f g, want 0", carbsG)
	}

	proteinG, fatsG, carbsG := partitionMacros(1900, 100, 4.0, 0.2)
	if carbsG != 0 {
		t.Errorf("carbs past the boundary = %f g, want clamped 0", carbsG)
	}
	// Protein and fat are unaffected by the clamp.
	if math.Abs(proteinG-400) > 1e-9 {
		t.Errorf("protein = %f g, want 400", proteinG)
	}
	if math.Abs(fatsG-1900*0.2/9) > 1e-9 {
		t.Errorf("fat = %f g, want %f", fatsG, 1900*0.2/9)
	}
}

// TestPartitionMacros_MaxTunables verifies carbs stay non-negative even with
// both tunables pinned at their maximums on a small budget.
func TestPartitionMacros_MaxTunables(t *testing.T) {
	proteinG, fatsG, carbsG := partitionMacros(1200, 90, maxProteinGPerKg, maxFatFraction)
	if proteinG < 0 || fatsG < 0 || carbsG < 0 {
		t.Errorf("got negative grams: protein=%f fat=%f carbs=%f", proteinG, fatsG, carbsG)
	}
}

// TestPartitionMacros_NegativeTotal verifies a below-zero calorie target
// (delta larger than TDEE) still never produces negative grams.
func TestPartitionMacros_NegativeTotal(t *testing.T) {
	proteinG, fatsG, carbsG := partitionMacros(-300, 70, 2.0, 0.25)
	if fatsG != 0 || carbsG != 0 {
		t.Errorf("fat=%f carbs=%f, want both 0 for a negative total", fatsG, carbsG)
	}
	if math.Abs(proteinG-140) > 1e-9 {
		t.Errorf("protein = %f g, want 140 (weight-based, independent of total)", proteinG)
	}
}
