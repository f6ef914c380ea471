package behavioral

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nivesh/planner-go/pkg/formulas"
)

// Service orchestrates behavioral metrics reads and updates
type Service struct {
	repo *Repository
	log  zerolog.Logger
}

// NewService creates a new behavioral service
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "behavioral").Logger(),
	}
}

// UpdateRequest is a partial update to a user's behavioral metrics.
// Sentiment statistics can be supplied directly or derived from raw
// sentiment samples; explicit values win over derived ones.
type UpdateRequest struct {
	UserID                     int64     `json:"user_id"`
	PortfolioCheckFrequency    *int      `json:"portfolio_check_frequency"`
	PortfolioTurnoverRate      *float64  `json:"portfolio_turnover_rate"`
	TradeVolume                *float64  `json:"trade_volume"`
	LifeEvent                  *bool     `json:"life_event"`
	SentimentAvg               *float64  `json:"sentiment_avg"`
	SentimentVariance          *float64  `json:"sentiment_variance"`
	SentimentSamples           []float64 `json:"sentiment_samples"`
	EmailTonePositiveRatio     *float64  `json:"email_tone_positive_ratio"`
	CalendarStressEventsCount  *int      `json:"calendar_stress_events_count"`
	NudgeAcceptanceRate        *float64  `json:"nudge_acceptance_rate"`
	ReactionToMarketVolatility string    `json:"reaction_to_market_volatility"`
}

// GetOrCreate returns the user's latest metrics snapshot, creating an
// all-defaults row when none exists yet.
func (s *Service) GetOrCreate(userID int64) (*Metrics, error) {
	m, err := s.repo.GetLatestByUser(userID)
	if err != nil {
		return nil, err
	}
	if m != nil {
		return m, nil
	}

	m = &Metrics{UserID: userID}
	if err := s.repo.Create(m); err != nil {
		return nil, fmt.Errorf("failed to create default metrics: %w", err)
	}

	s.log.Debug().Int64("user_id", userID).Msg("Created default behavioral metrics")
	return m, nil
}

// Update applies a partial update and returns the stored snapshot.
func (s *Service) Update(req UpdateRequest) (*Metrics, error) {
	m, err := s.GetOrCreate(req.UserID)
	if err != nil {
		return nil, err
	}

	if req.PortfolioCheckFrequency != nil {
		m.PortfolioCheckFrequency = *req.PortfolioCheckFrequency
	}
	if req.PortfolioTurnoverRate != nil {
		m.PortfolioTurnoverRate = *req.PortfolioTurnoverRate
	}
	if req.TradeVolume != nil {
		m.TradeVolumeLastWeek = *req.TradeVolume
	}
	if req.LifeEvent != nil {
		m.MajorLifeEventOccurred = *req.LifeEvent
	}

	// Derived sentiment statistics from raw classifier scores.
	if len(req.SentimentSamples) > 0 {
		avg := formulas.Mean(req.SentimentSamples)
		variance := formulas.Variance(req.SentimentSamples)
		m.SentimentAvg = &avg
		m.SentimentVariance = &variance
	}
	if req.SentimentAvg != nil {
		m.SentimentAvg = req.SentimentAvg
	}
	if req.SentimentVariance != nil {
		m.SentimentVariance = req.SentimentVariance
	}

	if req.EmailTonePositiveRatio != nil {
		m.EmailTonePositiveRatio = req.EmailTonePositiveRatio
	}
	if req.CalendarStressEventsCount != nil {
		m.CalendarStressEventsCount = *req.CalendarStressEventsCount
	}
	if req.NudgeAcceptanceRate != nil {
		m.NudgeAcceptanceRate = req.NudgeAcceptanceRate
	}
	if req.ReactionToMarketVolatility != "" {
		m.ReactionToMarketVolatility = req.ReactionToMarketVolatility
	}

	if err := s.repo.Update(m); err != nil {
		return nil, err
	}

	return m, nil
}

// Insights analyzes the user's latest metrics. A user with no stored
// metrics gets an empty analysis rather than an error.
func (s *Service) Insights(userID int64) (Analysis, error) {
	m, err := s.repo.GetLatestByUser(userID)
	if err != nil {
		return Analysis{}, err
	}
	if m == nil {
		return Analysis{
			Insights:        []Insight{},
			Recommendations: []Recommendation{},
			RiskAdjustments: map[string]float64{},
		}, nil
	}

	return Analyze(*m), nil
}
