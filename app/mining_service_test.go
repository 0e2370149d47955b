package app

import (
	"context"
	"errors"
	"testing"

	"gobasket/adapters/mining/engine"
	"gobasket/domain/basket"
	"gobasket/domain/core"
	"gobasket/domain/mining"
	"gobasket/internal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBasketSource struct {
	baskets []basket.Basket
	err     error
}

func (f *fakeBasketSource) Baskets(ctx context.Context, ownerID core.UserID) ([]basket.Basket, error) {
	return f.baskets, f.err
}

type fakeResultRepository struct {
	created []*mining.MiningResult
	err     error
}

func (f *fakeResultRepository) Create(ctx context.Context, result *mining.MiningResult) error {
	if f.err != nil {
		return f.err
	}
	result.ID = core.ResultID(core.NewID())
	result.CreatedAt = core.Now()
	f.created = append(f.created, result)
	return nil
}

func (f *fakeResultRepository) GetByID(ctx context.Context, id core.ResultID) (*mining.MiningResult, error) {
	return nil, core.ErrResultNotFound
}

func (f *fakeResultRepository) ListByOwner(ctx context.Context, ownerID core.UserID, limit, offset int) ([]*mining.MiningResult, error) {
	return f.created, nil
}

func (f *fakeResultRepository) Delete(ctx context.Context, id core.ResultID) error {
	return nil
}

func newTestService(source *fakeBasketSource, results *fakeResultRepository) *MiningService {
	logger := internal.NewLogger(internal.LogLevelError)
	return NewMiningService(engine.NewRegistry(0), engine.NewRuleGenerator(), source, results, logger)
}

func testBaskets() []basket.Basket {
	return []basket.Basket{
		basket.New("Bread", "Milk", "Butter"),
		basket.New("Bread", "Milk"),
		basket.New("Bread", "Eggs"),
		basket.New("Milk", "Eggs"),
	}
}

func TestMiningService_Run(t *testing.T) {
	source := &fakeBasketSource{baskets: testBaskets()}
	results := &fakeResultRepository{}
	svc := newTestService(source, results)

	params := mining.MiningParameters{
		MinSupport:    0.5,
		MinConfidence: 0.5,
		Algorithm:     mining.AlgorithmApriori,
	}
	owner := core.UserID(core.NewID())

	result, err := svc.Run(context.Background(), params, owner)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, mining.AlgorithmApriori, result.Algorithm)
	assert.Equal(t, 0.5, result.Parameters.MinSupport)
	assert.Equal(t, 0.5, result.Parameters.MinConfidence)
	assert.Equal(t, owner, result.CreatedBy)
	assert.NotEmpty(t, result.FrequentItemsets)
	assert.GreaterOrEqual(t, result.ExecutionTimeMs, 0.0)

	// Repository assigned identity and creation timestamp
	require.Len(t, results.created, 1)
	assert.False(t, result.ID.IsEmpty())
	assert.False(t, result.CreatedAt.IsZero())
}

func TestMiningService_RejectsInvalidParameters(t *testing.T) {
	svc := newTestService(&fakeBasketSource{}, &fakeResultRepository{})

	cases := []mining.MiningParameters{
		{MinSupport: 0, MinConfidence: 0.5, Algorithm: mining.AlgorithmApriori},
		{MinSupport: 1.2, MinConfidence: 0.5, Algorithm: mining.AlgorithmApriori},
		{MinSupport: 0.5, MinConfidence: -0.1, Algorithm: mining.AlgorithmApriori},
		{MinSupport: 0.5, MinConfidence: 0.5, Algorithm: "eclat"},
	}
	for _, params := range cases {
		_, err := svc.Run(context.Background(), params, core.UserID(core.NewID()))
		assert.ErrorIs(t, err, core.ErrInvalidParameters, "params %+v", params)
	}
}

func TestMiningService_EmptyBaskets(t *testing.T) {
	source := &fakeBasketSource{baskets: nil}
	results := &fakeResultRepository{}
	svc := newTestService(source, results)

	params := mining.MiningParameters{
		MinSupport:    0.5,
		MinConfidence: 0.5,
		Algorithm:     mining.AlgorithmFPGrowth,
	}

	result, err := svc.Run(context.Background(), params, core.UserID(core.NewID()))
	require.NoError(t, err)
	assert.Empty(t, result.FrequentItemsets)
	assert.Empty(t, result.AssociationRules)
}

func TestMiningService_PropagatesPersistenceError(t *testing.T) {
	storeErr := errors.New("connection reset")
	source := &fakeBasketSource{baskets: testBaskets()}
	results := &fakeResultRepository{err: storeErr}
	svc := newTestService(source, results)

	params := mining.MiningParameters{
		MinSupport:    0.5,
		MinConfidence: 0.5,
		Algorithm:     mining.AlgorithmApriori,
	}

	_, err := svc.Run(context.Background(), params, core.UserID(core.NewID()))
	// Storage errors pass through uninterpreted
	assert.ErrorIs(t, err, storeErr)
}

func TestMiningService_Idempotent(t *testing.T) {
	source := &fakeBasketSource{baskets: testBaskets()}
	svc := newTestService(source, &fakeResultRepository{})

	params := mining.MiningParameters{
		MinSupport:    0.25,
		MinConfidence: 0.5,
		Algorithm:     mining.AlgorithmApriori,
	}
	owner := core.UserID(core.NewID())

	first, err := svc.Run(context.Background(), params, owner)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), params, owner)
	require.NoError(t, err)

	require.Equal(t, len(first.FrequentItemsets), len(second.FrequentItemsets))
	for i := range first.FrequentItemsets {
		assert.True(t, first.FrequentItemsets[i].Items.Equal(second.FrequentItemsets[i].Items))
		assert.Equal(t, first.FrequentItemsets[i].Count, second.FrequentItemsets[i].Count)
	}
	require.Equal(t, len(first.AssociationRules), len(second.AssociationRules))
	assert.Equal(t, first.InputFingerprint, second.InputFingerprint)
}

func TestMiningService_BasketCeiling(t *testing.T) {
	source := &fakeBasketSource{baskets: testBaskets()}
	svc := newTestService(source, &fakeResultRepository{})
	svc.MaxBaskets = 2

	params := mining.MiningParameters{
		MinSupport:    0.5,
		MinConfidence: 0.5,
		Algorithm:     mining.AlgorithmApriori,
	}

	_, err := svc.Run(context.Background(), params, core.UserID(core.NewID()))
	assert.Error(t, err)
}

func TestComparisonService_Compare(t *testing.T) {
	source := &fakeBasketSource{baskets: testBaskets()}
	results := &fakeResultRepository{}
	miningSvc := newTestService(source, results)
	svc := NewComparisonService(miningSvc, source, internal.NewLogger(internal.LogLevelError))

	comparison, err := svc.Compare(context.Background(), 0.5, 0.5, core.UserID(core.NewID()))
	require.NoError(t, err)
	require.NotNil(t, comparison.AprioriResult)
	require.NotNil(t, comparison.FPGrowthResult)
	require.NotNil(t, comparison.Metrics)

	assert.Equal(t, mining.AlgorithmApriori, comparison.AprioriResult.Algorithm)
	assert.Equal(t, mining.AlgorithmFPGrowth, comparison.FPGrowthResult.Algorithm)

	m := comparison.Metrics
	assert.InDelta(t, comparison.FPGrowthResult.ExecutionTimeMs-comparison.AprioriResult.ExecutionTimeMs,
		m.ExecutionTimeDifference, 1e-9)
	assert.Equal(t, len(comparison.FPGrowthResult.FrequentItemsets)-len(comparison.AprioriResult.FrequentItemsets),
		m.ItemsetsCountDifference)
	assert.Equal(t, len(comparison.FPGrowthResult.AssociationRules)-len(comparison.AprioriResult.AssociationRules),
		m.RulesCountDifference)

	if comparison.AprioriResult.ExecutionTimeMs < comparison.FPGrowthResult.ExecutionTimeMs {
		assert.Equal(t, mining.AlgorithmApriori, m.FasterAlgorithm)
	} else {
		assert.Equal(t, mining.AlgorithmFPGrowth, m.FasterAlgorithm)
	}

	// Both underlying runs were persisted
	assert.Len(t, results.created, 2)
}

func TestComparisonService_RejectsInvalidParameters(t *testing.T) {
	source := &fakeBasketSource{baskets: testBaskets()}
	miningSvc := newTestService(source, &fakeResultRepository{})
	svc := NewComparisonService(miningSvc, source, internal.NewLogger(internal.LogLevelError))

	_, err := svc.Compare(context.Background(), 0, 0.5, core.UserID(core.NewID()))
	assert.ErrorIs(t, err, core.ErrInvalidParameters)
}

func TestBenchmarkService_Run(t *testing.T) {
	source := &fakeBasketSource{baskets: testBaskets()}
	svc := NewBenchmarkService(engine.NewRegistry(0), engine.NewRuleGenerator(), source, internal.NewLogger(internal.LogLevelError))

	params := mining.MiningParameters{
		MinSupport:    0.25,
		MinConfidence: 0.5,
		Algorithm:     mining.AlgorithmFPGrowth,
	}

	report, err := svc.Run(context.Background(), params, core.UserID(core.NewID()), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Rounds)
	assert.Equal(t, len(testBaskets()), report.BasketCount)
	assert.Greater(t, report.ItemsetCount, 0)
	assert.GreaterOrEqual(t, report.MaxMs, report.MinMs)
	assert.GreaterOrEqual(t, report.MeanMs, 0.0)
}
