package goals

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles goal HTTP requests. onChange is notified with the
// owning user's ID after every goal mutation so downstream caches of
// goal-derived results can be invalidated; it may be nil.
type Handler struct {
	repo     *Repository
	onChange func(userID int64)
	log      zerolog.Logger
}

// NewHandler creates a new goals handler
func NewHandler(repo *Repository, onChange func(userID int64), log zerolog.Logger) *Handler {
	return &Handler{
		repo:     repo,
		onChange: onChange,
		log:      log.With().Str("handler", "goals").Logger(),
	}
}

func (h *Handler) notifyChange(userID int64) {
	if h.onChange != nil {
		h.onChange(userID)
	}
}

// RegisterRoutes mounts goal routes on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/{userID}", h.HandleGetGoals)
	r.Post("/create", h.HandleCreateGoal)
	r.Put("/goal/{goalID}", h.HandleUpdateGoal)
	r.Delete("/goal/{goalID}", h.HandleDeleteGoal)
	r.Get("/progress/{userID}", h.HandleGetProgress)
}

type goalRequest struct {
	UserID        int64    `json:"user_id"`
	GoalName      string   `json:"goal_name"`
	GoalType      string   `json:"goal_type"`
	TargetAmount  *float64 `json:"target_amount"`
	CurrentAmount *float64 `json:"current_amount"`
	TargetDate    string   `json:"target_date"`
	Priority      string   `json:"priority"`
}

// HandleGetGoals returns all goals for a user, newest first.
func (h *Handler) HandleGetGoals(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	goalList, err := h.repo.GetByUser(userID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if goalList == nil {
		goalList = []Goal{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"goals": goalList,
		"count": len(goalList),
	})
}

// HandleCreateGoal creates a new goal.
func (h *Handler) HandleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == 0 || req.GoalName == "" || req.GoalType == "" || req.TargetAmount == nil || req.TargetDate == "" {
		h.writeError(w, http.StatusBadRequest, "Missing required field")
		return
	}

	targetDate, err := time.Parse(dateLayout, req.TargetDate)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid target_date, expected YYYY-MM-DD")
		return
	}

	goal := Goal{
		UserID:       req.UserID,
		GoalName:     req.GoalName,
		GoalType:     req.GoalType,
		TargetAmount: *req.TargetAmount,
		TargetDate:   targetDate,
		Priority:     "medium",
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Priority != "" {
		goal.Priority = req.Priority
	}

	if err := h.repo.Create(&goal); err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.notifyChange(goal.UserID)

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Goal created successfully",
		"goal":    goal,
	})
}

// HandleUpdateGoal applies a partial update to an existing goal.
func (h *Handler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID, err := strconv.ParseInt(chi.URLParam(r, "goalID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	goal, err := h.repo.GetByID(goalID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if goal == nil {
		h.writeError(w, http.StatusNotFound, "Goal not found")
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.GoalName != "" {
		goal.GoalName = req.GoalName
	}
	if req.GoalType != "" {
		goal.GoalType = req.GoalType
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.TargetDate != "" {
		targetDate, err := time.Parse(dateLayout, req.TargetDate)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid target_date, expected YYYY-MM-DD")
			return
		}
		goal.TargetDate = targetDate
	}
	if req.Priority != "" {
		goal.Priority = req.Priority
	}

	if err := h.repo.Update(goal); err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.notifyChange(goal.UserID)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Goal updated successfully",
		"goal":    goal,
	})
}

// HandleDeleteGoal deletes a goal.
func (h *Handler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID, err := strconv.ParseInt(chi.URLParam(r, "goalID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	goal, err := h.repo.GetByID(goalID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if goal == nil {
		h.writeError(w, http.StatusNotFound, "Goal not found")
		return
	}

	if err := h.repo.Delete(goalID); err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.notifyChange(goal.UserID)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Goal deleted successfully",
	})
}

// HandleGetProgress returns per-goal achievement probability and the
// overall average.
func (h *Handler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	goalList, err := h.repo.GetByUser(userID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	report := BuildProgressReport(goalList, time.Now())
	h.writeJSON(w, http.StatusOK, report)
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
