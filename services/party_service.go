//go:generate go run go.uber.org/mock/mockgen -source=party_service.go -destination=../mocks/mock_party_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"party-lab/balancer"
	"party-lab/domain"
	"party-lab/errors"
	"party-lab/observability"
	"party-lab/repositories"
	"time"

	"github.com/samber/lo"
)

type IPartyService interface {
	Generate(ctx context.Context, req GenerateRequest) (balancer.Result, error)
}

// GenerateRequest asks for the given characters to be split into parties.
// Zero sizes fall back to the configured defaults. A nil Seed lets the
// service pick one, which is logged so a random split can be replayed.
type GenerateRequest struct {
	IDs      []domain.CharacterID `json:"ids"`
	MinSize  int                  `json:"min_size" validate:"gte=0"`
	MaxSize  int                  `json:"max_size" validate:"gte=0"`
	Strategy string               `json:"strategy"`
	Seed     *uint64              `json:"seed,omitempty"`
}

type PartyService struct {
	repository repositories.ICharacterRepository
	metrics    observability.IPartyMetrics
	defaults   balancer.Config
	log        *slog.Logger
	seed       func() uint64
}

func NewPartyService(
	repository repositories.ICharacterRepository,
	metrics observability.IPartyMetrics,
	defaults balancer.Config,
	log *slog.Logger,
) IPartyService {
	return &PartyService{
		repository: repository,
		metrics:    metrics,
		defaults:   defaults,
		log:        log,
		seed:       func() uint64 { return uint64(time.Now().UnixNano()) },
	}
}

// Generate resolves the requested characters and balances them into parties.
// Nothing is computed unless the caller is a DM, the bounds are valid and
// every id exists; all missing ids are reported together.
func (s *PartyService) Generate(ctx context.Context, req GenerateRequest) (balancer.Result, error) {
	result, err := s.generate(ctx, req)
	if err != nil {
		s.metrics.ObserveRejection(req.Strategy, err)
		s.log.Debug("Party generation rejected", "strategy", req.Strategy, "error", err)
		return balancer.Result{}, err
	}
	return result, nil
}

func (s *PartyService) generate(ctx context.Context, req GenerateRequest) (balancer.Result, error) {
	session, err := requireDM(ctx)
	if err != nil {
		return balancer.Result{}, err
	}
	if err = validate.Struct(req); err != nil {
		return balancer.Result{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfiguration, err)
	}

	cfg := s.config(req)
	if err = cfg.Validate(); err != nil {
		return balancer.Result{}, err
	}
	seed := lo.FromPtrOr(req.Seed, s.seed())
	strategy, err := balancer.NewStrategy(req.Strategy, seed)
	if err != nil {
		return balancer.Result{}, err
	}

	characters, err := s.resolve(lo.Uniq(req.IDs))
	if err != nil {
		return balancer.Result{}, err
	}

	start := time.Now()
	result, err := strategy.Assign(characters, cfg)
	if err != nil {
		return balancer.Result{}, err
	}
	s.metrics.ObserveBalance(result.Stats, time.Since(start))
	s.log.Info("Parties generated",
		"dm", session.Username,
		"strategy", result.Stats.Strategy,
		"seed", seed,
		"characters", result.Stats.Characters,
		"party_count", result.Stats.Parties,
		"seed_spread", result.Stats.SeedSpread,
		"final_spread", result.Stats.FinalSpread,
		"iterations", result.Stats.Iterations,
	)
	return result, nil
}

func (s *PartyService) resolve(ids []domain.CharacterID) ([]domain.Character, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	characters, missing, err := s.repository.GetMany(ids)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, errors.NewUnknownEntityError(lo.Map(missing, func(id domain.CharacterID, _ int) int64 {
			return int64(id)
		})...)
	}
	return characters, nil
}

func (s *PartyService) config(req GenerateRequest) balancer.Config {
	cfg := s.defaults
	if req.MinSize != 0 {
		cfg.MinSize = req.MinSize
	}
	if req.MaxSize != 0 {
		cfg.MaxSize = req.MaxSize
	}
	return cfg
}
