package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// planStatus maps an engine error to the HTTP status the client should see:
// 400 for bad field values, 422 for an ambiguous goal-mode combination.
func planStatus(err error) int {
	var modeErr *unsupportedGoalModeError
	if errors.As(err, &modeErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

// createPlan runs one calculation and returns the raw result.
// POST /api/plan.
func (h *Handler) createPlan(c *gin.Context) {
	var in personInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := calculatePlan(in)
	if err != nil {
		apiError(c, planStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, res)
}

// createPlanReport runs one calculation and assembles the plan document.
// POST /api/plan/report. Body is a personInput plus client_name, date
// (YYYY-MM-DD, defaults to today), and optional free-text notes.
func (h *Handler) createPlanReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate the date up front — a malformed value would otherwise surface
	// as a confusing document header.
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	res, err := calculatePlan(req.personInput)
	if err != nil {
		apiError(c, planStatus(err), err.Error())
		return
	}

	markdown := buildReportMarkdown(res, req.ClientName, date, req.Notes)
	html, err := h.renderReportHTML(markdown)
	if err != nil {
		log.Printf("[report] render failed: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to render report")
		return
	}

	c.JSON(http.StatusOK, reportResponse{
		ReferenceID: newReportReferenceID(),
		Date:        DateOnly{day},
		Markdown:    markdown,
		HTML:        html,
		Result:      res,
	})
}
