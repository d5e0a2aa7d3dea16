package http

import (
	"encoding/json"
	"net/http"

	"lendify-backend/internal/domain"
	"lendify-backend/internal/service"
)

type CheckoutHandler struct {
	checkoutSvc service.CheckoutService
	ledgerSvc   service.LedgerService
}

func NewCheckoutHandler(checkoutSvc service.CheckoutService, ledgerSvc service.LedgerService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc, ledgerSvc: ledgerSvc}
}

type checkoutRequest struct {
	QRToken    string `json:"qrToken"`
	BorrowerID int    `json:"borrowerID"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeClientError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.QRToken == "" || req.BorrowerID <= 0 {
		writeClientError(w, http.StatusBadRequest, "QR token and borrower ID are required")
		return
	}

	checkout, err := h.checkoutSvc.Checkout(r.Context(), req.QRToken, req.BorrowerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"checkout": checkout,
		"message":  "Tool checked out successfully",
	})
}

type updateScoreRequest struct {
	CheckoutID int    `json:"checkoutID"`
	Action     string `json:"action"`
	Rating     int    `json:"rating"`
	BorrowerID int    `json:"borrowerID"`
	LenderID   int    `json:"lenderID"`
}

func (h *CheckoutHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	var req updateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeClientError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.ledgerSvc.UpdateScore(r.Context(), req.CheckoutID, domain.ScoreAction(req.Action), req.Rating, req.BorrowerID, req.LenderID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"borrowerScore": result.BorrowerScore,
		"lenderScore":   result.LenderScore,
		"scoreChange":   result.ScoreChange,
		"message":       "Trust score updated",
	})
}
