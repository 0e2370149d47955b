package app

import (
	"context"
	"time"

	"gobasket/domain/core"
	"gobasket/domain/mining"
	"gobasket/internal"
	"gobasket/internal/errors"
	"gobasket/ports"

	"github.com/montanaflynn/stats"
)

// BenchmarkReport summarizes execution time over repeated runs of one
// strategy on a fixed basket collection
type BenchmarkReport struct {
	Algorithm    mining.Algorithm `json:"algorithm"`
	Rounds       int              `json:"rounds"`
	BasketCount  int              `json:"basket_count"`
	ItemsetCount int              `json:"itemset_count"`
	RuleCount    int              `json:"rule_count"`
	MeanMs       float64          `json:"mean_ms"`
	MedianMs     float64          `json:"median_ms"`
	P95Ms        float64          `json:"p95_ms"`
	MinMs        float64          `json:"min_ms"`
	MaxMs        float64          `json:"max_ms"`
}

// BenchmarkService repeats mining plus rule generation without persistence
// and reports a timing distribution. One timed sample per round; itemset and
// rule counts are identical across rounds since the input never changes.
type BenchmarkService struct {
	registry ports.MinerRegistry
	rules    ports.RuleGenerator
	source   ports.BasketSource
	logger   *internal.Logger

	// Rounds is the repetition count when the caller passes 0
	Rounds int
}

// NewBenchmarkService creates a benchmark runner
func NewBenchmarkService(registry ports.MinerRegistry, rules ports.RuleGenerator, source ports.BasketSource, logger *internal.Logger) *BenchmarkService {
	return &BenchmarkService{
		registry: registry,
		rules:    rules,
		source:   source,
		logger:   logger.With("benchmark"),
		Rounds:   5,
	}
}

// Run benchmarks one strategy for the given parameters
func (s *BenchmarkService) Run(ctx context.Context, params mining.MiningParameters, ownerID core.UserID, rounds int) (*BenchmarkReport, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rounds <= 0 {
		rounds = s.Rounds
	}

	miner, err := s.registry.ForAlgorithm(params.Algorithm)
	if err != nil {
		return nil, err
	}
	baskets, err := s.source.Baskets(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load baskets")
	}

	samples := make([]float64, 0, rounds)
	itemsetCount, ruleCount := 0, 0
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		itemsets, err := miner.Mine(ctx, baskets, params.MinSupport)
		if err != nil {
			return nil, errors.MiningError("benchmark mining round failed", err)
		}
		rules, err := s.rules.Generate(ctx, itemsets, params.MinConfidence, baskets)
		if err != nil {
			return nil, errors.MiningError("benchmark rule round failed", err)
		}
		samples = append(samples, float64(time.Since(start).Nanoseconds())/1e6)
		itemsetCount, ruleCount = len(itemsets), len(rules)
	}

	report := &BenchmarkReport{
		Algorithm:    params.Algorithm,
		Rounds:       rounds,
		BasketCount:  len(baskets),
		ItemsetCount: itemsetCount,
		RuleCount:    ruleCount,
	}
	report.MeanMs, _ = stats.Mean(samples)
	report.MedianMs, _ = stats.Median(samples)
	report.P95Ms, _ = stats.Percentile(samples, 95)
	report.MinMs, _ = stats.Min(samples)
	report.MaxMs, _ = stats.Max(samples)

	s.logger.Info("%s benchmark: %d rounds, mean=%.2fms median=%.2fms p95=%.2fms",
		params.Algorithm, rounds, report.MeanMs, report.MedianMs, report.P95Ms)
	return report, nil
}
