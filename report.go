package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// reportDisclaimer closes every document.
const reportDisclaimer = "For educational purposes and general guidance — not medical advice."

// newMarkdown builds the goldmark instance used for report rendering.
// GFM is needed for the macro table.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.GFM))
}

// newSanitizer builds the bluemonday policy applied to rendered report HTML.
// Client name and notes are free text, so the rendered document is treated
// as user-generated content.
func newSanitizer() *bluemonday.Policy {
	return bluemonday.UGCPolicy()
}

// newReportReferenceID stamps a fresh document reference. Reports are not
// persisted; the id exists so a client can correlate a printed or emailed
// document with the request that produced it.
func newReportReferenceID() string {
	return uuid.New().String()
}

// buildReportMarkdown assembles the plan document from a finished calcResult
// plus the identity/free-text fields. Purely presentational — every number
// here was computed upstream and is only formatted.
func buildReportMarkdown(res calcResult, clientName, date, notes string) string {
	var b strings.Builder

	title := "Calorie Plan"
	if clientName != "" {
		title += " — " + clientName
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Prepared %s\n\n", date)

	fmt.Fprintf(&b, "**Suggested intake:** %.0f kcal/day\n\n", res.Calories)
	fmt.Fprintf(&b, "**Estimated TDEE:** %.0f kcal/day\n\n", res.TDEE)

	if res.AggressivePlan {
		b.WriteString("> **Heads up:** this plan changes intake by more than 25% of maintenance. " +
			"That pace is hard to sustain — consider a longer timeframe or a smaller adjustment.\n\n")
	}

	b.WriteString("## Method & breakdown\n\n")
	fmt.Fprintf(&b, "- BMR (Mifflin–St Jeor): %.0f kcal\n", res.BMR)
	fmt.Fprintf(&b, "- Activity ×: %g\n", res.ActivityMultiplier)
	fmt.Fprintf(&b, "- Body type adj: %+.1f%%\n", (res.BodytypeMultiplier-1)*100)
	fmt.Fprintf(&b, "- Goal adj: %+.0f kcal/day\n\n", res.DailyDeltaKcal)

	b.WriteString("## Daily macros\n\n")
	b.WriteString("| Macro | Grams | kcal |\n")
	b.WriteString("| --- | --- | --- |\n")
	fmt.Fprintf(&b, "| Protein | %.0f g | %.0f |\n", res.ProteinG, res.ProteinG*kcalPerGramProtein)
	fmt.Fprintf(&b, "| Fat | %.0f g | %.0f |\n", res.FatsG, res.FatsG*kcalPerGramFat)
	fmt.Fprintf(&b, "| Carbs | %.0f g | %.0f |\n\n", res.CarbsG, res.CarbsG*kcalPerGramCarbs)

	if notes != "" {
		b.WriteString("## Notes\n\n")
		b.WriteString(notes + "\n\n")
	}

	b.WriteString("---\n\n")
	b.WriteString(reportDisclaimer + "\n")

	return b.String()
}

// renderReportHTML converts report markdown to sanitized HTML.
func (h *Handler) renderReportHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return h.sanitizer.Sanitize(buf.String()), nil
}
