package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles portfolio HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "portfolio").Logger(),
	}
}

// RegisterRoutes mounts portfolio routes on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/{userID}", h.HandleGetPortfolio)
	r.Post("/optimize", h.HandleOptimize)
	r.Post("/rebalance", h.HandleRebalance)
	r.Get("/performance/{userID}", h.HandleGetPerformance)
	r.Post("/holdings", h.HandleUpsertHolding)
	r.Delete("/holdings/{holdingID}", h.HandleDeleteHolding)
}

// HandleGetPortfolio returns the portfolio with holdings and
// performance, creating an empty portfolio for first-time users.
func (h *Handler) HandleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	view, err := h.service.GetView(userID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

// HandleOptimize returns the target allocation for a risk category and
// investment amount.
func (h *Handler) HandleOptimize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RiskCategory     string   `json:"risk_category"`
		InvestmentAmount *float64 `json:"investment_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RiskCategory == "" {
		h.writeError(w, http.StatusBadRequest, "Missing required field: risk_category")
		return
	}
	if req.InvestmentAmount == nil {
		h.writeError(w, http.StatusBadRequest, "Missing required field: investment_amount")
		return
	}

	result := PlanAllocation(req.RiskCategory, *req.InvestmentAmount)
	h.writeJSON(w, http.StatusOK, result)
}

// HandleRebalance returns buy/sell recommendations against a target
// allocation.
func (h *Handler) HandleRebalance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID           int64              `json:"user_id"`
		TargetAllocation map[string]float64 `json:"target_allocation"`
		RiskCategory     string             `json:"risk_category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 {
		h.writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	recommendations, currentValue, err := h.service.RebalanceAgainst(req.UserID, req.TargetAllocation, req.RiskCategory)
	if errors.Is(err, ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": recommendations,
		"current_value":   currentValue,
	})
}

// HandleGetPerformance returns the performance rollup.
func (h *Handler) HandleGetPerformance(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	performance, err := h.service.GetPerformance(userID)
	if errors.Is(err, ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, performance)
}

// HandleUpsertHolding adds or updates a holding keyed by asset name.
func (h *Handler) HandleUpsertHolding(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID        int64    `json:"user_id"`
		AssetType     string   `json:"asset_type"`
		AssetName     string   `json:"asset_name"`
		Quantity      *float64 `json:"quantity"`
		CurrentPrice  *float64 `json:"current_price"`
		PurchasePrice *float64 `json:"purchase_price"`
		Allocation    float64  `json:"allocation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 || req.AssetType == "" || req.AssetName == "" ||
		req.Quantity == nil || req.CurrentPrice == nil || req.PurchasePrice == nil {
		h.writeError(w, http.StatusBadRequest, "Missing required field")
		return
	}

	holding, err := h.service.UpsertHolding(req.UserID, Holding{
		AssetType:     req.AssetType,
		AssetName:     req.AssetName,
		Quantity:      *req.Quantity,
		CurrentPrice:  *req.CurrentPrice,
		PurchasePrice: *req.PurchasePrice,
		Allocation:    req.Allocation,
	})
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Holding added/updated successfully",
		"holding": holding,
	})
}

// HandleDeleteHolding removes a holding.
func (h *Handler) HandleDeleteHolding(w http.ResponseWriter, r *http.Request) {
	holdingID, err := strconv.ParseInt(chi.URLParam(r, "holdingID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid holding ID")
		return
	}

	err = h.service.DeleteHolding(holdingID)
	if errors.Is(err, ErrHoldingNotFound) {
		h.writeError(w, http.StatusNotFound, "Holding not found")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Holding deleted successfully",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
