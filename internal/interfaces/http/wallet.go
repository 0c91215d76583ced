package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"mybudget/internal/domain/wallet"
)

type WalletHandler struct {
	wallets wallet.Repository
}

func NewWalletHandler(wallets wallet.Repository) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

type CreateWalletRequest struct {
	UserID int64  `json:"UserID"`
	Name   string `json:"Name"`
}

// HandleWallets creates a wallet (POST /wallets).
func (h *WalletHandler) HandleWallets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "Wallet name cannot be empty")
		return
	}
	if req.UserID <= 0 {
		respondError(w, http.StatusBadRequest, "UserID is required")
		return
	}

	created, err := h.wallets.Create(r.Context(), req.UserID, strings.TrimSpace(req.Name))
	if err != nil {
		log.Printf("Error creating wallet for user %d: %v", req.UserID, err)
		respondError(w, http.StatusInternalServerError, "Failed to create wallet")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleWalletByID lists a user's wallets (GET /wallets/{id}, id = user id)
// or deletes a wallet (DELETE /wallets/{id}, id = wallet id).
func (h *WalletHandler) HandleWalletByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		wallets, err := h.wallets.ListByUserID(r.Context(), id)
		if err != nil {
			log.Printf("Error listing wallets for user %d: %v", id, err)
			respondError(w, http.StatusInternalServerError, "Failed to list wallets")
			return
		}
		if wallets == nil {
			wallets = []*wallet.Wallet{}
		}
		respondJSON(w, http.StatusOK, wallets)

	case http.MethodDelete:
		err := h.wallets.Delete(r.Context(), id)
		if errors.Is(err, wallet.ErrHasTransactions) {
			respondError(w, http.StatusBadRequest, "Cannot delete a wallet that has transactions")
			return
		}
		if errors.Is(err, wallet.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Wallet not found")
			return
		}
		if err != nil {
			log.Printf("Error deleting wallet %d: %v", id, err)
			respondError(w, http.StatusInternalServerError, "Failed to delete wallet")
			return
		}
		respondMessage(w, http.StatusOK, "Wallet deleted")

	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
