package risk

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles risk profiling HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new risk handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "risk").Logger(),
	}
}

// RegisterRoutes mounts risk profiling routes on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/questionnaire", h.HandleQuestionnaire)
	r.Post("/demographics", h.HandleDemographics)
	r.Post("/life-events", h.HandleLifeEvents)
	r.Post("/behavioral", h.HandleBehavioral)
	r.Post("/calculate", h.HandleCalculate)
	r.Get("/profile/{userID}", h.HandleGetProfile)
}

// HandleQuestionnaire scores submitted questionnaire answers.
func (h *Handler) HandleQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  int64                  `json:"user_id"`
		Answers map[string]interface{} `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 {
		h.writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}
	if req.Answers == nil {
		h.writeError(w, http.StatusBadRequest, "Missing answers field")
		return
	}

	qScore, profile, err := h.service.SubmitQuestionnaire(req.UserID, req.Answers)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"q_score":    qScore,
		"risk_score": profile.RiskScore,
		"message":    "Questionnaire submitted successfully",
	})
}

// HandleDemographics derives and stores cultural modifiers.
func (h *Handler) HandleDemographics(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int64 `json:"user_id"`
		Demographics
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 {
		h.writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	modifiers, err := h.service.SubmitDemographics(req.UserID, &req.Demographics)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, modifiers)
}

// HandleLifeEvents applies the life-event impact to the stored score.
func (h *Handler) HandleLifeEvents(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID     int64       `json:"user_id"`
		LifeEvents []LifeEvent `json:"life_events"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 {
		h.writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	impact, profile, err := h.service.SubmitLifeEvents(req.UserID, req.LifeEvents)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"life_event_impact":   impact,
		"adjusted_risk_score": profile.RiskScore,
	})
}

// HandleBehavioral scores submitted behavioral telemetry.
func (h *Handler) HandleBehavioral(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID         int64            `json:"user_id"`
		BehavioralData *BehavioralInput `json:"behavioral_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 {
		h.writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	bScore, err := h.service.SubmitBehavioral(req.UserID, req.BehavioralData)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"b_score": bScore,
	})
}

// HandleCalculate runs the comprehensive assessment.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 {
		h.writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	assessment, err := h.service.Calculate(req.UserID)
	if errors.Is(err, ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Risk profile not found. Please complete questionnaire first.")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, assessment)
}

// HandleGetProfile returns the stored risk profile.
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	profile, err := h.service.GetProfile(userID)
	if errors.Is(err, ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Risk profile not found")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, profile)
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
