package behavioral

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles behavioral metrics HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new behavioral handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "behavioral").Logger(),
	}
}

// RegisterRoutes mounts behavioral routes on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/metrics/{userID}", h.HandleGetMetrics)
	r.Post("/update", h.HandleUpdateMetrics)
	r.Get("/insights/{userID}", h.HandleGetInsights)
}

// HandleGetMetrics returns the user's latest behavioral metrics,
// creating a default snapshot for first-time users.
func (h *Handler) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	metrics, err := h.service.GetOrCreate(userID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, metrics)
}

// HandleUpdateMetrics applies a partial metrics update.
func (h *Handler) HandleUpdateMetrics(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == 0 {
		h.writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	metrics, err := h.service.Update(req)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Behavioral metrics updated successfully",
		"metrics": metrics,
	})
}

// HandleGetInsights returns the advisory analysis of the user's
// latest metrics.
func (h *Handler) HandleGetInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	analysis, err := h.service.Insights(userID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, analysis)
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
