package main

import (
	"time"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// personInput is one calculation request: biometrics, activity, body type,
// goal, and tunables. Goal-intensity fields are pointers — exactly one of
// intensity_pct or the (target_change, timeframe_weeks) pair must be set,
// which resolveGoalSpec enforces. Weight, height, and target_change are in
// the system named by Units; everything downstream of normalizeUnits is metric.
type personInput struct {
	Sex           string  `json:"sex"`            // "male" | "female"
	AgeYears      float64 `json:"age_years"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Units         string  `json:"units"`          // "metric" | "imperial"
	ActivityLevel string  `json:"activity_level"` // key into activityMultipliers
	BodyType      string  `json:"body_type"`      // key into bodyTypeMultipliers
	Goal          string  `json:"goal"`           // "lose" | "maintain" | "gain"

	// Intensity-percentage mode: fraction of TDEE, e.g. 0.15 for 15%.
	IntensityPct *float64 `json:"intensity_pct"`
	// Mass/timeframe mode: desired weight change (same units as Weight) over
	// the given number of weeks.
	TargetChange   *float64 `json:"target_change"`
	TimeframeWeeks *float64 `json:"timeframe_weeks"`

	// Macro tunables. Nil means the defaults in macros.go.
	ProteinGPerKg         *float64 `json:"protein_g_per_kg"`
	FatFractionOfCalories *float64 `json:"fat_fraction_of_calories"`
}

// calcResult is the full output of one calculation. Derived once per request
// and never mutated; the report builder consumes it as-is.
type calcResult struct {
	BMR                float64 `json:"bmr"`
	TDEE               float64 `json:"tdee"`
	Calories           float64 `json:"calories"`
	ActivityMultiplier float64 `json:"activity_multiplier"`
	BodytypeMultiplier float64 `json:"bodytype_multiplier"`
	DailyDeltaKcal     float64 `json:"daily_delta_kcal"`
	ProteinG           float64 `json:"protein_g"`
	FatsG              float64 `json:"fats_g"`
	CarbsG             float64 `json:"carbs_g"`

	// AggressivePlan is advisory metadata, not an error: set when the daily
	// delta exceeds 25% of maintenance, signaling an unsustainable plan.
	AggressivePlan bool `json:"aggressive_plan"`
}

// reportRequest is the request body for POST /api/plan/report: a full
// calculation input plus the identity/free-text fields the document needs.
type reportRequest struct {
	personInput
	ClientName string `json:"client_name"`
	Date       string `json:"date"` // YYYY-MM-DD, defaults to today
	Notes      string `json:"notes"`
}

// reportResponse is the response for POST /api/plan/report. HTML is the
// sanitized rendering of Markdown; ReferenceID identifies the document.
type reportResponse struct {
	ReferenceID string     `json:"reference_id"`
	Date        DateOnly   `json:"date"`
	Markdown    string     `json:"markdown"`
	HTML        string     `json:"html"`
	Result      calcResult `json:"result"`
}
