package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/reports"
)

type ReportHandler struct {
	report *reports.Report
	log    *zap.Logger
}

func NewReportHandler(report *reports.Report, log *zap.Logger) *ReportHandler {
	return &ReportHandler{report: report, log: log}
}

// EnrollmentStats returns the per-course enrollment report. With no
// enrollments at all the result is an empty array.
func (h *ReportHandler) EnrollmentStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	rows, err := h.report.ComputeEnrollmentStats(ctx)
	if err != nil {
		h.log.Error("enrollment stats failed", zap.Error(err))
		http.Error(w, "Failed to compute enrollment stats", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, rows)
}
