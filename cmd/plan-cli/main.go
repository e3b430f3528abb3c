// CLI tool to run one calorie-plan calculation against a running API instance
// and print the resulting report. Usage: go run ./cmd/plan-cli -weight 70 ...
// (from the repo root, with the server listening on API_BASE_URL or :8080).
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type planRequest struct {
	Sex           string  `json:"sex"`
	AgeYears      float64 `json:"age_years"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Units         string  `json:"units"`
	ActivityLevel string  `json:"activity_level"`
	BodyType      string  `json:"body_type"`
	Goal          string  `json:"goal"`

	IntensityPct   *float64 `json:"intensity_pct,omitempty"`
	TargetChange   *float64 `json:"target_change,omitempty"`
	TimeframeWeeks *float64 `json:"timeframe_weeks,omitempty"`

	ProteinGPerKg         *float64 `json:"protein_g_per_kg,omitempty"`
	FatFractionOfCalories *float64 `json:"fat_fraction_of_calories,omitempty"`

	ClientName string `json:"client_name,omitempty"`
	Date       string `json:"date,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// optFlag returns a pointer to the flag's value only if it was explicitly set,
// so unset modes stay absent from the request JSON.
func optFlag(set map[string]bool, name string, v float64) *float64 {
	if !set[name] {
		return nil
	}
	return &v
}

func main() {
	godotenv.Load()

	sex := flag.String("sex", "male", "male or female")
	age := flag.Float64("age", 30, "age in years")
	units := flag.String("units", "metric", "metric or imperial")
	weight := flag.Float64("weight", 70, "weight (kg or lb)")
	height := flag.Float64("height", 175, "height (cm or in)")
	activity := flag.String("activity", "moderate", "sedentary, light, moderate, very, extra")
	bodyType := flag.String("body-type", "mesomorph", "ectomorph, mesomorph, endomorph")
	goal := flag.String("goal", "maintain", "lose, maintain, gain")
	intensity := flag.Float64("intensity", 0, "goal intensity as a fraction of TDEE, e.g. 0.15")
	targetChange := flag.Float64("target-change", 0, "target weight change (same units as weight)")
	weeks := flag.Float64("weeks", 0, "timeframe in weeks for -target-change")
	protein := flag.Float64("protein-g-per-kg", 0, "protein grams per kg body weight")
	fatFraction := flag.Float64("fat-fraction", 0, "fat as a fraction of total calories")
	client := flag.String("client", "", "client name for the report header")
	notes := flag.String("notes", "", "free-text notes appended to the report")
	asJSON := flag.Bool("json", false, "print the raw JSON response instead of the report markdown")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	intensityPtr := optFlag(explicit, "intensity", *intensity)
	targetPtr := optFlag(explicit, "target-change", *targetChange)
	weeksPtr := optFlag(explicit, "weeks", *weeks)
	if intensityPtr == nil && targetPtr == nil && weeksPtr == nil {
		// The API requires exactly one goal mode; default to a mild 15%
		// intensity, which "maintain" ignores anyway.
		def := 0.15
		intensityPtr = &def
	}

	req := planRequest{
		Sex:           *sex,
		AgeYears:      *age,
		Weight:        *weight,
		Height:        *height,
		Units:         *units,
		ActivityLevel: *activity,
		BodyType:      *bodyType,
		Goal:          *goal,

		IntensityPct:   intensityPtr,
		TargetChange:   targetPtr,
		TimeframeWeeks: weeksPtr,

		ProteinGPerKg:         optFlag(explicit, "protein-g-per-kg", *protein),
		FatFractionOfCalories: optFlag(explicit, "fat-fraction", *fatFraction),

		ClientName: *client,
		Date:       time.Now().Format("2006-01-02"),
		Notes:      *notes,
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	body, err := json.Marshal(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding request: %v\n", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	resp, err := httpClient.Post(baseURL+"/api/plan/report", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calling API: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading response: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "API returned %d: %s\n", resp.StatusCode, string(respBytes))
		os.Exit(1)
	}

	if *asJSON {
		fmt.Println(string(respBytes))
		return
	}

	var report struct {
		ReferenceID string `json:"reference_id"`
		Markdown    string `json:"markdown"`
	}
	if err := json.Unmarshal(respBytes, &report); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(report.Markdown)
	fmt.Printf("Reference: %s\n", report.ReferenceID)
}
