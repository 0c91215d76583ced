package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mybudget/internal/domain/category"
)

type mockCategoryRepo struct {
	createFunc       func(ctx context.Context, params category.CreateParams) (*category.Category, error)
	listByUserIDFunc func(ctx context.Context, userID int64) ([]*category.Category, error)
	deleteFunc       func(ctx context.Context, categoryID int64) error
}

func (m *mockCategoryRepo) Create(ctx context.Context, params category.CreateParams) (*category.Category, error) {
	return m.createFunc(ctx, params)
}

func (m *mockCategoryRepo) ListByUserID(ctx context.Context, userID int64) ([]*category.Category, error) {
	return m.listByUserIDFunc(ctx, userID)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, categoryID int64) error {
	return m.deleteFunc(ctx, categoryID)
}

func TestHandleCategoriesCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createFunc func(ctx context.Context, params category.CreateParams) (*category.Category, error)
		wantStatus int
		wantError  string
	}{
		{
			name: "creates expense category",
			body: `{"UserID":1,"Name":"Food","Type":"expense"}`,
			createFunc: func(ctx context.Context, params category.CreateParams) (*category.Category, error) {
				if params.Type != category.TypeExpense {
					t.Errorf("type = %q, want %q", params.Type, category.TypeExpense)
				}
				return &category.Category{ID: 1, UserID: params.UserID, Name: params.Name, Type: params.Type}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "creates income category",
			body: `{"UserID":1,"Name":"Salary","Type":"income"}`,
			createFunc: func(ctx context.Context, params category.CreateParams) (*category.Category, error) {
				if params.Type != category.TypeIncome {
					t.Errorf("type = %q, want %q", params.Type, category.TypeIncome)
				}
				return &category.Category{ID: 2, UserID: params.UserID, Name: params.Name, Type: params.Type}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"UserID":1,"Type":"expense"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Category name and type are required",
		},
		{
			name:       "missing type",
			body:       `{"UserID":1,"Name":"Food"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Category name and type are required",
		},
		{
			name:       "unknown type",
			body:       `{"UserID":1,"Name":"Food","Type":"transfer"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing user id",
			body:       `{"Name":"Food","Type":"expense"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "UserID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCategoryHandler(&mockCategoryRepo{createFunc: tt.createFunc})

			req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.HandleCategories(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantError != "" {
				var resp map[string]string
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if resp["error"] != tt.wantError {
					t.Errorf("error = %q, want %q", resp["error"], tt.wantError)
				}
			}
		})
	}
}

func TestHandleCategoryByIDList(t *testing.T) {
	handler := NewCategoryHandler(&mockCategoryRepo{
		listByUserIDFunc: func(ctx context.Context, userID int64) ([]*category.Category, error) {
			return []*category.Category{
				{ID: 1, UserID: userID, Name: "Salary", Type: category.TypeIncome},
				{ID: 2, UserID: userID, Name: "Food", Type: category.TypeExpense},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/categories/5", nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	handler.HandleCategoryByID(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var categories []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	if categories[1]["Name"] != "Food" || categories[1]["Type"] != "expense" {
		t.Errorf("unexpected second category: %v", categories[1])
	}
}

func TestHandleCategoryByIDDelete(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
		wantError  string
	}{
		{
			name:       "deletes category",
			wantStatus: http.StatusOK,
		},
		{
			name:       "category in use",
			deleteErr:  category.ErrInUse,
			wantStatus: http.StatusBadRequest,
			wantError:  "Cannot delete a category that is used by transactions",
		},
		{
			name:       "category not found",
			deleteErr:  category.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "Category not found",
		},
		{
			name:       "repository failure",
			deleteErr:  errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to delete category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCategoryHandler(&mockCategoryRepo{
				deleteFunc: func(ctx context.Context, categoryID int64) error {
					return tt.deleteErr
				},
			})

			req := httptest.NewRequest(http.MethodDelete, "/categories/3", nil)
			req.SetPathValue("id", "3")
			w := httptest.NewRecorder()

			handler.HandleCategoryByID(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp map[string]string
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if tt.wantError != "" {
				if resp["error"] != tt.wantError {
					t.Errorf("error = %q, want %q", resp["error"], tt.wantError)
				}
			} else if resp["message"] != "Category deleted" {
				t.Errorf("message = %q, want %q", resp["message"], "Category deleted")
			}
		})
	}
}
