package app

import (
	"context"
	"time"

	"gobasket/domain/basket"
	"gobasket/domain/core"
	"gobasket/domain/mining"
	"gobasket/internal"
	"gobasket/internal/errors"
	"gobasket/ports"
)

// MiningService orchestrates a single timed mining run: strategy selection,
// itemset mining, rule generation, and handoff to the result repository.
type MiningService struct {
	registry ports.MinerRegistry
	rules    ports.RuleGenerator
	source   ports.BasketSource
	results  ports.MiningResultRepository
	logger   *internal.Logger

	// RunTimeout bounds one run end to end; full-scan support counting has
	// no other ceiling on pathological inputs
	RunTimeout time.Duration
	// MaxBaskets rejects oversized inputs before mining starts; 0 disables
	MaxBaskets int
}

// NewMiningService creates a mining orchestrator
func NewMiningService(registry ports.MinerRegistry, rules ports.RuleGenerator, source ports.BasketSource, results ports.MiningResultRepository, logger *internal.Logger) *MiningService {
	return &MiningService{
		registry:   registry,
		rules:      rules,
		source:     source,
		results:    results,
		logger:     logger.With("mining"),
		RunTimeout: 30 * time.Second,
	}
}

// Run loads the owner's baskets and executes one orchestrated run
func (s *MiningService) Run(ctx context.Context, params mining.MiningParameters, ownerID core.UserID) (*mining.MiningResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	baskets, err := s.source.Baskets(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load baskets")
	}
	return s.RunWithBaskets(ctx, params, baskets, ownerID)
}

// RunWithBaskets executes one orchestrated run over an already-loaded basket
// collection. The elapsed time covers mining plus rule generation only, not
// basket loading or persistence. Persistence failures from the repository
// propagate unchanged.
func (s *MiningService) RunWithBaskets(ctx context.Context, params mining.MiningParameters, baskets []basket.Basket, ownerID core.UserID) (*mining.MiningResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if s.MaxBaskets > 0 && len(baskets) > s.MaxBaskets {
		return nil, errors.MiningError("basket count exceeds configured ceiling", nil)
	}

	miner, err := s.registry.ForAlgorithm(params.Algorithm)
	if err != nil {
		return nil, err
	}

	if s.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.RunTimeout)
		defer cancel()
	}

	fingerprint := basket.Fingerprint(baskets)
	s.logger.Debug("starting %s run: %d baskets, min_support=%.3f, min_confidence=%.3f, input=%s",
		params.Algorithm, len(baskets), params.MinSupport, params.MinConfidence, fingerprint)

	start := time.Now()
	itemsets, err := miner.Mine(ctx, baskets, params.MinSupport)
	if err != nil {
		return nil, errors.MiningError("itemset mining failed", err)
	}
	rules, err := s.rules.Generate(ctx, itemsets, params.MinConfidence, baskets)
	if err != nil {
		return nil, errors.MiningError("rule generation failed", err)
	}
	elapsed := float64(time.Since(start).Nanoseconds()) / 1e6

	result := &mining.MiningResult{
		Algorithm: params.Algorithm,
		Parameters: mining.ResultParameters{
			MinSupport:    params.MinSupport,
			MinConfidence: params.MinConfidence,
		},
		FrequentItemsets: itemsets,
		AssociationRules: rules,
		ExecutionTimeMs:  elapsed,
		InputFingerprint: fingerprint,
		CreatedBy:        ownerID,
	}

	// The repository assigns identity and creation timestamp; its errors
	// are the caller's to interpret, not ours
	if s.results != nil {
		if err := s.results.Create(ctx, result); err != nil {
			return nil, err
		}
	}

	s.logger.Info("%s run complete: %d itemsets, %d rules in %.2fms",
		params.Algorithm, len(itemsets), len(rules), elapsed)
	return result, nil
}
