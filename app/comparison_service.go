package app

import (
	"context"

	"gobasket/domain/core"
	"gobasket/domain/mining"
	"gobasket/internal"
	"gobasket/internal/errors"
	"gobasket/ports"

	"golang.org/x/sync/errgroup"
)

// ComparisonService runs both strategies under identical parameters and
// baskets and reports their relative performance. The two runs share no
// state, so they execute in parallel with independently measured timing.
type ComparisonService struct {
	mining *MiningService
	source ports.BasketSource
	logger *internal.Logger
}

// NewComparisonService creates a comparison engine over the orchestrator
func NewComparisonService(miningService *MiningService, source ports.BasketSource, logger *internal.Logger) *ComparisonService {
	return &ComparisonService{
		mining: miningService,
		source: source,
		logger: logger.With("comparison"),
	}
}

// Compare executes one run per algorithm and derives the comparison metrics.
// Both underlying results are retained in the output.
func (s *ComparisonService) Compare(ctx context.Context, minSupport, minConfidence float64, ownerID core.UserID) (*mining.MiningComparison, error) {
	params := mining.MiningParameters{
		MinSupport:    minSupport,
		MinConfidence: minConfidence,
		Algorithm:     mining.AlgorithmApriori,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Load once so both strategies see the identical collection
	baskets, err := s.source.Baskets(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load baskets")
	}

	var apriori, fpGrowth *mining.MiningResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p := params
		p.Algorithm = mining.AlgorithmApriori
		result, err := s.mining.RunWithBaskets(gctx, p, baskets, ownerID)
		if err != nil {
			return err
		}
		apriori = result
		return nil
	})
	g.Go(func() error {
		p := params
		p.Algorithm = mining.AlgorithmFPGrowth
		result, err := s.mining.RunWithBaskets(gctx, p, baskets, ownerID)
		if err != nil {
			return err
		}
		fpGrowth = result
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := mining.NewComparisonMetrics(apriori, fpGrowth)
	s.logger.Info("comparison complete: faster=%s, time_diff=%.2fms",
		metrics.FasterAlgorithm, metrics.ExecutionTimeDifference)

	return &mining.MiningComparison{
		AprioriResult:  apriori,
		FPGrowthResult: fpGrowth,
		Metrics:        metrics,
	}, nil
}
