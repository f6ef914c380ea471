package risk

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nivesh/planner-go/internal/cache"
	"github.com/nivesh/planner-go/internal/modules/goals"
)

// ErrNotFound is returned when a user has no stored risk profile yet.
var ErrNotFound = errors.New("risk profile not found")

// Service orchestrates risk profile reads, partial updates, and the
// comprehensive calculation. Writes are serialized per user so
// concurrent partial updates cannot drop each other's fields.
type Service struct {
	repo      *Repository
	goalsRepo *goals.Repository
	cache     *cache.Cache
	cacheTTL  time.Duration
	log       zerolog.Logger

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewService creates a new risk service
func NewService(repo *Repository, goalsRepo *goals.Repository, c *cache.Cache, cacheTTL time.Duration, log zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		goalsRepo: goalsRepo,
		cache:     c,
		cacheTTL:  cacheTTL,
		locks:     make(map[int64]*sync.Mutex),
		log:       log.With().Str("service", "risk").Logger(),
	}
}

func (s *Service) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("risk_profile:%d", userID)
}

func (s *Service) invalidate(userID int64) {
	s.cache.Delete(cacheKey(userID))
}

// InvalidateUser drops the cached assessment for a user. Called by
// collaborators whenever one of the calculation's inputs changes
// outside this service, goal edits in particular.
func (s *Service) InvalidateUser(userID int64) {
	s.invalidate(userID)
}

// getOrCreate loads the user's profile, creating a moderate default
// when none exists. Caller must hold the user lock.
func (s *Service) getOrCreate(userID int64) (*Profile, error) {
	p, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p = &Profile{
		UserID:       userID,
		RiskScore:    50,
		RiskCategory: CategoryModerate,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create default risk profile: %w", err)
	}

	s.log.Debug().Int64("user_id", userID).Msg("Created default risk profile")
	return p, nil
}

// SubmitQuestionnaire scores the answers and stores the Q-score. A
// first submission also seeds a preliminary risk score and category
// from the Q-score alone.
func (s *Service) SubmitQuestionnaire(userID int64, answers map[string]interface{}) (float64, *Profile, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	qScore := QScore(answers)

	p, err := s.repo.GetByUser(userID)
	if err != nil {
		return 0, nil, err
	}
	if p == nil {
		p = &Profile{
			UserID:       userID,
			RiskScore:    math.Trunc(qScore),
			RiskCategory: Categorize(qScore),
		}
		if err := s.repo.Create(p); err != nil {
			return 0, nil, fmt.Errorf("failed to create preliminary risk profile: %w", err)
		}
	}

	p.QScore = &qScore
	if err := s.repo.Update(p); err != nil {
		return 0, nil, err
	}
	s.invalidate(userID)

	s.log.Info().Int64("user_id", userID).Float64("q_score", qScore).Msg("Questionnaire submitted")
	return qScore, p, nil
}

// SubmitDemographics derives cultural modifiers and stores them on
// the profile.
func (s *Service) SubmitDemographics(userID int64, d *Demographics) (CulturalModifiers, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	modifiers := CulturalFactors(d)

	p, err := s.getOrCreate(userID)
	if err != nil {
		return CulturalModifiers{}, err
	}

	p.RegionalFactor = &modifiers.RegionalFactor
	p.DemographicFactor = &modifiers.DemographicFactor
	p.TraditionFactor = &modifiers.TraditionFactor
	p.CulturalModifier = &modifiers.CulturalModifier
	if err := s.repo.Update(p); err != nil {
		return CulturalModifiers{}, err
	}
	s.invalidate(userID)

	s.log.Info().Int64("user_id", userID).
		Float64("cultural_modifier", modifiers.CulturalModifier).
		Msg("Demographics submitted")
	return modifiers, nil
}

// SubmitLifeEvents applies the multiplicative life-event impact to the
// stored risk score and re-derives the category so it stays consistent
// with the adjusted score.
func (s *Service) SubmitLifeEvents(userID int64, events []LifeEvent) (float64, *Profile, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	impact := LifeEventImpact(events)

	p, err := s.getOrCreate(userID)
	if err != nil {
		return 0, nil, err
	}

	if p.RiskScore != 0 {
		p.RiskScore = math.Trunc(p.RiskScore * impact)
		p.RiskCategory = Categorize(p.RiskScore)
	}
	if err := s.repo.Update(p); err != nil {
		return 0, nil, err
	}
	s.invalidate(userID)

	s.log.Info().Int64("user_id", userID).
		Float64("life_event_impact", impact).
		Float64("adjusted_risk_score", p.RiskScore).
		Msg("Life events submitted")
	return impact, p, nil
}

// SubmitBehavioral scores the behavioral telemetry and stores the
// B-score.
func (s *Service) SubmitBehavioral(userID int64, input *BehavioralInput) (float64, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	bScore := BScore(input)

	p, err := s.getOrCreate(userID)
	if err != nil {
		return 0, err
	}

	p.BScore = &bScore
	if err := s.repo.Update(p); err != nil {
		return 0, err
	}
	s.invalidate(userID)

	s.log.Info().Int64("user_id", userID).Float64("b_score", bScore).Msg("Behavioral data submitted")
	return bScore, nil
}

// Calculate runs the comprehensive assessment. The G-score is derived
// fresh from the user's goals; other sub-scores come from the stored
// profile. The result is persisted and cached until an input changes.
func (s *Service) Calculate(userID int64) (Assessment, error) {
	if cached, ok := s.cache.Get(cacheKey(userID)); ok {
		if assessment, ok := cached.(Assessment); ok {
			return assessment, nil
		}
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.repo.GetByUser(userID)
	if err != nil {
		return Assessment{}, err
	}
	if p == nil {
		return Assessment{}, ErrNotFound
	}

	gScore, err := s.goalScore(userID)
	if err != nil {
		return Assessment{}, err
	}
	if gScore != nil {
		p.GScore = gScore
	}

	modifier := 1.0
	if p.CulturalModifier != nil {
		modifier = *p.CulturalModifier
	}

	assessment := Aggregate(p.QScore, p.GScore, p.BScore, modifier)

	p.RiskScore = assessment.RiskScore
	p.RiskCategory = assessment.RiskCategory
	p.Confidence = &assessment.Confidence
	if err := s.repo.Update(p); err != nil {
		return Assessment{}, err
	}

	s.cache.Set(cacheKey(userID), assessment, s.cacheTTL)

	s.log.Info().Int64("user_id", userID).
		Float64("risk_score", assessment.RiskScore).
		Str("risk_category", assessment.RiskCategory).
		Float64("confidence", assessment.Confidence).
		Msg("Risk profile calculated")
	return assessment, nil
}

// goalScore derives the G-score from the user's goals, or nil when the
// user has no goals to score.
func (s *Service) goalScore(userID int64) (*float64, error) {
	goalList, err := s.goalsRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals for g-score: %w", err)
	}
	if len(goalList) == 0 {
		return nil, nil
	}

	now := time.Now()
	horizons := make([]float64, 0, len(goalList))
	for _, g := range goalList {
		horizons = append(horizons, goals.YearsToGoal(g.TargetDate, now))
	}

	score := GScore(horizons)
	return &score, nil
}

// GetProfile returns a user's stored profile.
func (s *Service) GetProfile(userID int64) (*Profile, error) {
	p, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// RecomputeAll re-runs the comprehensive assessment for every stored
// profile. Used by the background recompute job.
func (s *Service) RecomputeAll() (int, error) {
	ids, err := s.repo.ListUserIDs()
	if err != nil {
		return 0, err
	}

	recomputed := 0
	for _, id := range ids {
		s.invalidate(id)
		if _, err := s.Calculate(id); err != nil {
			s.log.Warn().Err(err).Int64("user_id", id).Msg("Failed to recompute risk profile")
			continue
		}
		recomputed++
	}
	return recomputed, nil
}
