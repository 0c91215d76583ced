package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"mybudget/internal/domain/category"
	"mybudget/internal/domain/transaction"
)

type TransactionHandler struct {
	transactions transaction.Repository
}

func NewTransactionHandler(transactions transaction.Repository) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type CreateTransactionRequest struct {
	UserID      int64   `json:"UserID"`
	WalletID    int64   `json:"WalletID"`
	CategoryID  int64   `json:"CategoryID"`
	Amount      float64 `json:"Amount"`
	Type        string  `json:"Type"`
	Description string  `json:"Description"`
}

type CreateTransactionResponse struct {
	TransactionID int64 `json:"TransactionID"`
}

type UpdateTransactionRequest struct {
	WalletID    int64   `json:"WalletID"`
	CategoryID  int64   `json:"CategoryID"`
	Amount      float64 `json:"Amount"`
	Type        string  `json:"Type"`
	Description string  `json:"Description"`
	Date        string  `json:"Date"`
}

// HandleTransactions records a transaction and applies its delta to the
// wallet balance (POST /transactions).
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID <= 0 || req.WalletID <= 0 || req.CategoryID <= 0 {
		respondError(w, http.StatusBadRequest, "UserID, WalletID, and CategoryID are required")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	typ, err := category.ParseType(req.Type)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.transactions.Create(r.Context(), transaction.CreateParams{
		UserID:      req.UserID,
		WalletID:    req.WalletID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Type:        typ,
		Description: req.Description,
	})
	if err != nil {
		log.Printf("Error creating transaction for user %d: %v", req.UserID, err)
		respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	respondJSON(w, http.StatusCreated, CreateTransactionResponse{TransactionID: id})
}

// HandleTransactionByID lists a user's transactions (GET /transactions/{id},
// id = user id), updates one (PUT, id = transaction id), or deletes one
// (DELETE, id = transaction id).
func (h *TransactionHandler) HandleTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *TransactionHandler) list(w http.ResponseWriter, r *http.Request, userID int64) {
	transactions, err := h.transactions.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing transactions for user %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}
	if transactions == nil {
		transactions = []*transaction.Transaction{}
	}
	respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) update(w http.ResponseWriter, r *http.Request, id int64) {
	var req UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.WalletID <= 0 || req.CategoryID <= 0 {
		respondError(w, http.StatusBadRequest, "WalletID and CategoryID are required")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	typ, err := category.ParseType(req.Type)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	err = h.transactions.Update(r.Context(), id, transaction.UpdateParams{
		WalletID:    req.WalletID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Type:        typ,
		Description: req.Description,
		Date:        date,
	})
	if errors.Is(err, transaction.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		log.Printf("Error updating transaction %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	respondMessage(w, http.StatusOK, "Transaction updated")
}

func (h *TransactionHandler) delete(w http.ResponseWriter, r *http.Request, id int64) {
	err := h.transactions.Delete(r.Context(), id)
	if errors.Is(err, transaction.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		log.Printf("Error deleting transaction %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	respondMessage(w, http.StatusOK, "Transaction deleted")
}

// parseDate accepts the formats clients send: RFC 3339 timestamps or plain
// YYYY-MM-DD dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
