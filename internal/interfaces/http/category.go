package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"mybudget/internal/domain/category"
)

type CategoryHandler struct {
	categories category.Repository
}

func NewCategoryHandler(categories category.Repository) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type CreateCategoryRequest struct {
	UserID int64  `json:"UserID"`
	Name   string `json:"Name"`
	Type   string `json:"Type"`
}

// HandleCategories creates a category (POST /categories).
func (h *CategoryHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Type == "" {
		respondError(w, http.StatusBadRequest, "Category name and type are required")
		return
	}
	if req.UserID <= 0 {
		respondError(w, http.StatusBadRequest, "UserID is required")
		return
	}

	typ, err := category.ParseType(req.Type)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.categories.Create(r.Context(), category.CreateParams{
		UserID: req.UserID,
		Name:   req.Name,
		Type:   typ,
	})
	if err != nil {
		log.Printf("Error creating category for user %d: %v", req.UserID, err)
		respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleCategoryByID lists a user's categories (GET /categories/{id},
// id = user id) or deletes a category (DELETE /categories/{id},
// id = category id).
func (h *CategoryHandler) HandleCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		categories, err := h.categories.ListByUserID(r.Context(), id)
		if err != nil {
			log.Printf("Error listing categories for user %d: %v", id, err)
			respondError(w, http.StatusInternalServerError, "Failed to list categories")
			return
		}
		if categories == nil {
			categories = []*category.Category{}
		}
		respondJSON(w, http.StatusOK, categories)

	case http.MethodDelete:
		err := h.categories.Delete(r.Context(), id)
		if errors.Is(err, category.ErrInUse) {
			respondError(w, http.StatusBadRequest, "Cannot delete a category that is used by transactions")
			return
		}
		if errors.Is(err, category.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		if err != nil {
			log.Printf("Error deleting category %d: %v", id, err)
			respondError(w, http.StatusInternalServerError, "Failed to delete category")
			return
		}
		respondMessage(w, http.StatusOK, "Category deleted")

	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
