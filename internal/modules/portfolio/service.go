package portfolio

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nivesh/planner-go/internal/cache"
)

// ErrNotFound is returned when a user has no portfolio yet.
var ErrNotFound = errors.New("portfolio not found")

// ErrHoldingNotFound is returned for operations on a missing holding.
var ErrHoldingNotFound = errors.New("holding not found")

// View is the full portfolio read model: the aggregate, its holdings,
// and the freshly computed performance rollup.
type View struct {
	Portfolio   Portfolio   `json:"portfolio"`
	Holdings    []Holding   `json:"holdings"`
	Performance Performance `json:"performance"`
}

// Service orchestrates portfolio reads, holding upserts, and the
// allocation/rebalancing computations.
type Service struct {
	repo     *Repository
	cache    *cache.Cache
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewService creates a new portfolio service
func NewService(repo *Repository, c *cache.Cache, cacheTTL time.Duration, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log.With().Str("service", "portfolio").Logger(),
	}
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("portfolio:%d", userID)
}

func (s *Service) invalidate(userID int64) {
	s.cache.Delete(cacheKey(userID))
}

// GetView returns the portfolio with holdings and performance,
// creating an empty portfolio for first-time users. The performance
// rollup is persisted back onto the aggregate on every uncached read.
func (s *Service) GetView(userID int64) (View, error) {
	if cached, ok := s.cache.Get(cacheKey(userID)); ok {
		if view, ok := cached.(View); ok {
			return view, nil
		}
	}

	p, err := s.getOrCreate(userID)
	if err != nil {
		return View{}, err
	}

	holdings, err := s.repo.GetHoldings(p.ID)
	if err != nil {
		return View{}, err
	}
	if holdings == nil {
		holdings = []Holding{}
	}

	performance := CalculatePerformance(holdings)

	p.TotalValue = performance.TotalValue
	p.TotalGainLoss = performance.TotalGainLoss
	p.TotalGainLossPercent = performance.TotalGainLossPercent
	if err := s.repo.UpdateTotals(p); err != nil {
		return View{}, err
	}

	view := View{
		Portfolio:   *p,
		Holdings:    holdings,
		Performance: performance,
	}
	s.cache.Set(cacheKey(userID), view, s.cacheTTL)

	return view, nil
}

// GetPerformance computes the performance rollup for a user's
// holdings without touching the cache.
func (s *Service) GetPerformance(userID int64) (Performance, error) {
	p, err := s.repo.GetByUser(userID)
	if err != nil {
		return Performance{}, err
	}
	if p == nil {
		return Performance{}, ErrNotFound
	}

	holdings, err := s.repo.GetHoldings(p.ID)
	if err != nil {
		return Performance{}, err
	}

	return CalculatePerformance(holdings), nil
}

// RebalanceAgainst produces rebalancing recommendations for a user
// against a target allocation. A missing target falls back to the
// risk-category table.
func (s *Service) RebalanceAgainst(userID int64, targetAllocation map[string]float64, riskCategory string) ([]RebalanceRecommendation, float64, error) {
	p, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	if p == nil {
		return nil, 0, ErrNotFound
	}

	holdings, err := s.repo.GetHoldings(p.ID)
	if err != nil {
		return nil, 0, err
	}

	if len(targetAllocation) == 0 {
		targetAllocation = TargetAllocation(riskCategory)
	}

	// Rebalance against the live rollup, not the persisted total,
	// which may lag a holding update by one read.
	performance := CalculatePerformance(holdings)

	recommendations := Rebalance(holdings, targetAllocation, performance.TotalValue)
	return recommendations, performance.TotalValue, nil
}

// UpsertHolding creates or updates a holding keyed by asset name
// within the user's portfolio.
func (s *Service) UpsertHolding(userID int64, h Holding) (*Holding, error) {
	p, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindHolding(p.ID, h.AssetName)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.AssetType = h.AssetType
		existing.Quantity = h.Quantity
		existing.CurrentPrice = h.CurrentPrice
		existing.PurchasePrice = h.PurchasePrice
		existing.Allocation = h.Allocation
		if err := s.repo.UpdateHolding(existing); err != nil {
			return nil, err
		}
		s.invalidate(userID)
		return existing, nil
	}

	h.PortfolioID = p.ID
	if err := s.repo.CreateHolding(&h); err != nil {
		return nil, err
	}
	s.invalidate(userID)

	s.log.Info().Int64("user_id", userID).Str("asset_name", h.AssetName).Msg("Holding created")
	return &h, nil
}

// DeleteHolding removes a holding and invalidates the owner's cached
// view.
func (s *Service) DeleteHolding(holdingID int64) error {
	h, err := s.repo.GetHolding(holdingID)
	if err != nil {
		return err
	}
	if h == nil {
		return ErrHoldingNotFound
	}

	p, err := s.repo.GetByID(h.PortfolioID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteHolding(holdingID); err != nil {
		return err
	}
	if p != nil {
		s.invalidate(p.UserID)
	}
	return nil
}

func (s *Service) getOrCreate(userID int64) (*Portfolio, error) {
	p, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p = &Portfolio{UserID: userID}
	if err := s.repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	s.log.Debug().Int64("user_id", userID).Msg("Created empty portfolio")
	return p, nil
}
