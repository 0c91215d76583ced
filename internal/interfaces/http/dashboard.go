package http

import (
	"log"
	"net/http"
	"time"

	"mybudget/internal/domain/report"
)

type DashboardHandler struct {
	reports report.Repository
}

func NewDashboardHandler(reports report.Repository) *DashboardHandler {
	return &DashboardHandler{reports: reports}
}

// HandleDashboard returns the monthly summary, the per-category expense
// breakdown, and the all-time total balance (GET /dashboard/{id}).
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	ctx := r.Context()
	since := report.MonthStart(time.Now())

	summary, err := h.reports.Summary(ctx, userID, since)
	if err != nil {
		log.Printf("Error loading summary for user %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	breakdown, err := h.reports.ExpensesByCategory(ctx, userID, since)
	if err != nil {
		log.Printf("Error loading category breakdown for user %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	if breakdown == nil {
		breakdown = []report.CategoryTotal{}
	}

	total, err := h.reports.TotalBalance(ctx, userID)
	if err != nil {
		log.Printf("Error loading total balance for user %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	respondJSON(w, http.StatusOK, report.Dashboard{
		Summary:           summary,
		CategoryBreakdown: breakdown,
		TotalBalance:      total,
	})
}
