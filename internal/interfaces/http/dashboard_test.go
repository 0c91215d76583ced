package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mybudget/internal/domain/report"
)

type mockReportRepo struct {
	summaryFunc            func(ctx context.Context, userID int64, since time.Time) (report.Summary, error)
	expensesByCategoryFunc func(ctx context.Context, userID int64, since time.Time) ([]report.CategoryTotal, error)
	totalBalanceFunc       func(ctx context.Context, userID int64) (float64, error)
}

func (m *mockReportRepo) Summary(ctx context.Context, userID int64, since time.Time) (report.Summary, error) {
	return m.summaryFunc(ctx, userID, since)
}

func (m *mockReportRepo) ExpensesByCategory(ctx context.Context, userID int64, since time.Time) ([]report.CategoryTotal, error) {
	return m.expensesByCategoryFunc(ctx, userID, since)
}

func (m *mockReportRepo) TotalBalance(ctx context.Context, userID int64) (float64, error) {
	return m.totalBalanceFunc(ctx, userID)
}

func TestHandleDashboard(t *testing.T) {
	handler := NewDashboardHandler(&mockReportRepo{
		summaryFunc: func(ctx context.Context, userID int64, since time.Time) (report.Summary, error) {
			if userID != 5 {
				t.Errorf("userID = %d, want 5", userID)
			}
			want := report.MonthStart(time.Now())
			if !since.Equal(want) {
				t.Errorf("since = %v, want start of current month %v", since, want)
			}
			return report.Summary{TotalIncome: 100, TotalExpenses: 30}, nil
		},
		expensesByCategoryFunc: func(ctx context.Context, userID int64, since time.Time) ([]report.CategoryTotal, error) {
			return []report.CategoryTotal{{Name: "Food", Total: 30}}, nil
		},
		totalBalanceFunc: func(ctx context.Context, userID int64) (float64, error) {
			return 70, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/5", nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	handler.HandleDashboard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Summary struct {
			TotalIncome   float64 `json:"TotalIncome"`
			TotalExpenses float64 `json:"TotalExpenses"`
		} `json:"summary"`
		CategoryBreakdown []struct {
			Name  string  `json:"Name"`
			Total float64 `json:"Total"`
		} `json:"categoryBreakdown"`
		TotalBalance float64 `json:"totalBalance"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.Summary.TotalIncome != 100 || resp.Summary.TotalExpenses != 30 {
		t.Errorf("summary = %+v, want income 100 expenses 30", resp.Summary)
	}
	if len(resp.CategoryBreakdown) != 1 || resp.CategoryBreakdown[0].Name != "Food" || resp.CategoryBreakdown[0].Total != 30 {
		t.Errorf("breakdown = %+v, want [{Food 30}]", resp.CategoryBreakdown)
	}
	if resp.TotalBalance != 70 {
		t.Errorf("totalBalance = %v, want 70", resp.TotalBalance)
	}
}

func TestHandleDashboardEmptyBreakdown(t *testing.T) {
	handler := NewDashboardHandler(&mockReportRepo{
		summaryFunc: func(ctx context.Context, userID int64, since time.Time) (report.Summary, error) {
			return report.Summary{}, nil
		},
		expensesByCategoryFunc: func(ctx context.Context, userID int64, since time.Time) ([]report.CategoryTotal, error) {
			return nil, nil
		},
		totalBalanceFunc: func(ctx context.Context, userID int64) (float64, error) {
			return 0, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/5", nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	handler.HandleDashboard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if string(resp["categoryBreakdown"]) != "[]" {
		t.Errorf("categoryBreakdown = %s, want []", resp["categoryBreakdown"])
	}
}

func TestHandleDashboardRepositoryFailure(t *testing.T) {
	handler := NewDashboardHandler(&mockReportRepo{
		summaryFunc: func(ctx context.Context, userID int64, since time.Time) (report.Summary, error) {
			return report.Summary{}, errors.New("connection refused")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/5", nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	handler.HandleDashboard(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestHandleDashboardMethodNotAllowed(t *testing.T) {
	handler := NewDashboardHandler(&mockReportRepo{})

	req := httptest.NewRequest(http.MethodPost, "/dashboard/5", nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	handler.HandleDashboard(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
