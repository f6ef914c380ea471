package market

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles market data HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new market handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "market").Logger(),
	}
}

// RegisterRoutes mounts market data routes on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/indices", h.HandleGetIndices)
	r.Get("/indicators/{symbol}", h.HandleGetIndicators)
	r.Post("/bars", h.HandleIngestBars)
}

// HandleGetIndices returns quotes for the tracked benchmark indices.
func (h *Handler) HandleGetIndices(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.service.Indices()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"indices": quotes,
	})
}

// HandleGetIndicators returns the indicator snapshot for a symbol.
func (h *Handler) HandleGetIndicators(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		h.writeError(w, http.StatusBadRequest, "Missing symbol")
		return
	}

	snapshot, err := h.service.Snapshot(symbol)
	if errors.Is(err, ErrNoData) {
		h.writeError(w, http.StatusNotFound, "No price data for symbol")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, snapshot)
}

// HandleIngestBars stores a batch of price bars.
func (h *Handler) HandleIngestBars(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Bars []PriceBar `json:"bars"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Bars) == 0 {
		h.writeError(w, http.StatusBadRequest, "Missing bars")
		return
	}

	for _, bar := range req.Bars {
		if bar.Symbol == "" || bar.Date == "" {
			h.writeError(w, http.StatusBadRequest, "Every bar needs a symbol and date")
			return
		}
	}

	if err := h.service.Ingest(req.Bars); err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Price bars ingested successfully",
		"count":   len(req.Bars),
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
