package mining

import (
	"sort"
	"strings"

	"gobasket/domain/core"
)

// Algorithm identifies a frequent-itemset mining strategy
type Algorithm string

const (
	AlgorithmApriori  Algorithm = "apriori"
	AlgorithmFPGrowth Algorithm = "fp_growth"
)

// Valid reports whether the algorithm names a known strategy
func (a Algorithm) Valid() bool {
	return a == AlgorithmApriori || a == AlgorithmFPGrowth
}

// String returns the wire name of the algorithm
func (a Algorithm) String() string { return string(a) }

// Itemset is a canonically sorted sequence of distinct item identifiers.
// Two itemsets are equal iff their sorted identifier sequences are equal.
type Itemset []string

// NewItemset builds a canonical itemset: distinct members, sorted ascending
func NewItemset(items ...string) Itemset {
	seen := make(map[string]bool, len(items))
	out := make(Itemset, 0, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// Key returns a stable map key for the itemset
func (s Itemset) Key() string {
	return strings.Join(s, "\x1f")
}

// Equal reports whether two itemsets contain the same members
func (s Itemset) Equal(other Itemset) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Union merges two canonical itemsets into a new canonical itemset
func (s Itemset) Union(other Itemset) Itemset {
	merged := make([]string, 0, len(s)+len(other))
	merged = append(merged, s...)
	merged = append(merged, other...)
	return NewItemset(merged...)
}

// FrequentItemset is an itemset with its support statistics.
// Invariant: Count == round(Support * totalBaskets) and Support == Count / totalBaskets.
type FrequentItemset struct {
	Items   Itemset `json:"itemset"`
	Support float64 `json:"support"`
	Count   int     `json:"count"`
}

// AssociationRule is an antecedent -> consequent implication derived from a
// frequent itemset. Antecedent and consequent are disjoint, non-empty, and
// their union is the itemset the rule was derived from.
type AssociationRule struct {
	Antecedent Itemset `json:"antecedent"`
	Consequent Itemset `json:"consequent"`
	Support    float64 `json:"support"`
	Confidence float64 `json:"confidence"`
	Lift       float64 `json:"lift"`
}

// MiningParameters is the immutable input to a mining run
type MiningParameters struct {
	MinSupport    float64   `json:"min_support"`
	MinConfidence float64   `json:"min_confidence"`
	Algorithm     Algorithm `json:"algorithm"`
}

// Validate rejects out-of-range thresholds and unknown algorithms at the
// boundary, before any miner runs
func (p MiningParameters) Validate() error {
	if p.MinSupport <= 0 || p.MinSupport > 1 {
		return core.ErrInvalidSupport
	}
	if p.MinConfidence <= 0 || p.MinConfidence > 1 {
		return core.ErrInvalidConfidence
	}
	if !p.Algorithm.Valid() {
		return core.ErrUnknownAlgorithm
	}
	return nil
}

// ResultParameters echoes the thresholds a result was produced with.
// The algorithm choice is carried on the result itself, not re-stored here.
type ResultParameters struct {
	MinSupport    float64 `json:"min_support"`
	MinConfidence float64 `json:"min_confidence"`
}

// MiningResult is the immutable record of one orchestrated run. It carries a
// placeholder identity until the result repository assigns one.
type MiningResult struct {
	ID               core.ResultID         `json:"id"`
	Algorithm        Algorithm             `json:"algorithm"`
	Parameters       ResultParameters      `json:"parameters"`
	FrequentItemsets []FrequentItemset     `json:"frequent_itemsets"`
	AssociationRules []AssociationRule     `json:"association_rules"`
	ExecutionTimeMs  float64               `json:"execution_time_ms"`
	InputFingerprint core.InputFingerprint `json:"input_fingerprint,omitempty"`
	CreatedBy        core.UserID           `json:"created_by"`
	CreatedAt        core.Timestamp        `json:"created_at"`
}

// ComparisonMetrics are the relative metrics between the two strategies,
// computed fp_growth minus apriori
type ComparisonMetrics struct {
	ExecutionTimeDifference float64   `json:"execution_time_difference"`
	ItemsetsCountDifference int       `json:"itemsets_count_difference"`
	RulesCountDifference    int       `json:"rules_count_difference"`
	FasterAlgorithm         Algorithm `json:"faster_algorithm"`
}

// MiningComparison packages the two runs of a comparison. It is ephemeral:
// only its constituent results are persisted.
type MiningComparison struct {
	AprioriResult  *MiningResult      `json:"apriori_result"`
	FPGrowthResult *MiningResult      `json:"fp_growth_result"`
	Metrics        *ComparisonMetrics `json:"comparison_metrics"`
}

// NewComparisonMetrics derives the relative metrics from two completed runs.
// Apriori is faster only under strict "<"; ties resolve to fp_growth.
func NewComparisonMetrics(apriori, fpGrowth *MiningResult) *ComparisonMetrics {
	if apriori == nil || fpGrowth == nil {
		return nil
	}
	faster := AlgorithmFPGrowth
	if apriori.ExecutionTimeMs < fpGrowth.ExecutionTimeMs {
		faster = AlgorithmApriori
	}
	return &ComparisonMetrics{
		ExecutionTimeDifference: fpGrowth.ExecutionTimeMs - apriori.ExecutionTimeMs,
		ItemsetsCountDifference: len(fpGrowth.FrequentItemsets) - len(apriori.FrequentItemsets),
		RulesCountDifference:    len(fpGrowth.AssociationRules) - len(apriori.AssociationRules),
		FasterAlgorithm:         faster,
	}
}
