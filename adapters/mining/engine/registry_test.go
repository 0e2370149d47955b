package engine

import (
	"testing"

	"gobasket/domain/core"
	"gobasket/domain/mining"
)

// TestRegistry_Dispatch verifies strategy lookup by algorithm name
func TestRegistry_Dispatch(t *testing.T) {
	registry := NewRegistry(0)

	apriori, err := registry.ForAlgorithm(mining.AlgorithmApriori)
	if err != nil {
		t.Fatalf("ForAlgorithm(apriori) failed: %v", err)
	}
	if apriori.Algorithm() != mining.AlgorithmApriori {
		t.Errorf("Expected apriori strategy, got %s", apriori.Algorithm())
	}

	fpGrowth, err := registry.ForAlgorithm(mining.AlgorithmFPGrowth)
	if err != nil {
		t.Fatalf("ForAlgorithm(fp_growth) failed: %v", err)
	}
	if fpGrowth.Algorithm() != mining.AlgorithmFPGrowth {
		t.Errorf("Expected fp_growth strategy, got %s", fpGrowth.Algorithm())
	}

	if _, err := registry.ForAlgorithm("eclat"); !core.IsParameterError(err) {
		t.Errorf("Expected parameter error for unknown algorithm, got %v", err)
	}
}

// TestRegistry_ConfiguredCeiling verifies the size ceiling reaches the
// Apriori strategy
func TestRegistry_ConfiguredCeiling(t *testing.T) {
	registry := NewRegistry(4)
	miner, err := registry.ForAlgorithm(mining.AlgorithmApriori)
	if err != nil {
		t.Fatalf("ForAlgorithm failed: %v", err)
	}
	apriori, ok := miner.(*AprioriMiner)
	if !ok {
		t.Fatal("Expected *AprioriMiner")
	}
	if apriori.MaxItemsetSize != 4 {
		t.Errorf("Expected ceiling 4, got %d", apriori.MaxItemsetSize)
	}
}
