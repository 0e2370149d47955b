package mining

import (
	"testing"

	"gobasket/domain/core"
)

// TestNewItemset_Canonical tests deduplication and sorted member order
func TestNewItemset_Canonical(t *testing.T) {
	set := NewItemset("milk", "bread", "milk", "", "butter")
	if len(set) != 3 {
		t.Fatalf("Expected 3 members, got %d", len(set))
	}
	expected := []string{"bread", "butter", "milk"}
	for i, item := range expected {
		if set[i] != item {
			t.Errorf("Member %d: expected %s, got %s", i, item, set[i])
		}
	}
}

// TestItemset_Equal tests equality over sorted sequences
func TestItemset_Equal(t *testing.T) {
	a := NewItemset("x", "y")
	b := NewItemset("y", "x")
	if !a.Equal(b) {
		t.Error("Expected order-independent construction to compare equal")
	}
	if a.Equal(NewItemset("x")) {
		t.Error("Different sizes must not compare equal")
	}
	if a.Equal(NewItemset("x", "z")) {
		t.Error("Different members must not compare equal")
	}
}

// TestItemset_Union tests canonical merging
func TestItemset_Union(t *testing.T) {
	union := NewItemset("b", "a").Union(NewItemset("c", "b"))
	if !union.Equal(NewItemset("a", "b", "c")) {
		t.Errorf("Expected {a,b,c}, got %v", union)
	}
}

// TestMiningParameters_Validate tests the (0,1] boundary checks
func TestMiningParameters_Validate(t *testing.T) {
	valid := MiningParameters{MinSupport: 0.5, MinConfidence: 1.0, Algorithm: AlgorithmApriori}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid parameters, got %v", err)
	}

	cases := []struct {
		name   string
		params MiningParameters
	}{
		{"zero support", MiningParameters{MinSupport: 0, MinConfidence: 0.5, Algorithm: AlgorithmApriori}},
		{"support above one", MiningParameters{MinSupport: 1.01, MinConfidence: 0.5, Algorithm: AlgorithmApriori}},
		{"negative confidence", MiningParameters{MinSupport: 0.5, MinConfidence: -1, Algorithm: AlgorithmFPGrowth}},
		{"confidence above one", MiningParameters{MinSupport: 0.5, MinConfidence: 2, Algorithm: AlgorithmFPGrowth}},
		{"unknown algorithm", MiningParameters{MinSupport: 0.5, MinConfidence: 0.5, Algorithm: "eclat"}},
	}
	for _, tc := range cases {
		err := tc.params.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !core.IsParameterError(err) {
			t.Errorf("%s: expected parameter error, got %v", tc.name, err)
		}
	}
}

// TestNewComparisonMetrics tests the derived deltas and the tie-break:
// apriori is faster only under strict "<"
func TestNewComparisonMetrics(t *testing.T) {
	apriori := &MiningResult{
		Algorithm:        AlgorithmApriori,
		ExecutionTimeMs:  10,
		FrequentItemsets: make([]FrequentItemset, 7),
		AssociationRules: make([]AssociationRule, 4),
	}
	fpGrowth := &MiningResult{
		Algorithm:        AlgorithmFPGrowth,
		ExecutionTimeMs:  6,
		FrequentItemsets: make([]FrequentItemset, 5),
		AssociationRules: make([]AssociationRule, 2),
	}

	m := NewComparisonMetrics(apriori, fpGrowth)
	if m.ExecutionTimeDifference != -4 {
		t.Errorf("Expected time difference -4, got %f", m.ExecutionTimeDifference)
	}
	if m.ItemsetsCountDifference != -2 {
		t.Errorf("Expected itemset difference -2, got %d", m.ItemsetsCountDifference)
	}
	if m.RulesCountDifference != -2 {
		t.Errorf("Expected rule difference -2, got %d", m.RulesCountDifference)
	}
	if m.FasterAlgorithm != AlgorithmFPGrowth {
		t.Errorf("Expected fp_growth faster, got %s", m.FasterAlgorithm)
	}

	// Strictly faster apriori
	apriori.ExecutionTimeMs = 3
	if m := NewComparisonMetrics(apriori, fpGrowth); m.FasterAlgorithm != AlgorithmApriori {
		t.Errorf("Expected apriori faster, got %s", m.FasterAlgorithm)
	}

	// Tie resolves to fp_growth
	apriori.ExecutionTimeMs = 6
	if m := NewComparisonMetrics(apriori, fpGrowth); m.FasterAlgorithm != AlgorithmFPGrowth {
		t.Errorf("Expected tie to resolve to fp_growth, got %s", m.FasterAlgorithm)
	}

	if NewComparisonMetrics(nil, fpGrowth) != nil {
		t.Error("Expected nil metrics when a result is missing")
	}
}
