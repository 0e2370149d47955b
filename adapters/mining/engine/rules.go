package engine

import (
	"context"

	"gobasket/domain/basket"
	"gobasket/domain/mining"

	"gonum.org/v1/gonum/stat/combin"
)

// RuleConfig controls association rule generation.
type RuleConfig struct {
	// TextbookLift switches lift to confidence / support(consequent). The
	// default false keeps the reference formula
	// lift = confidence / (itemset.count / totalBaskets), which uses the
	// union itemset's own support as the denominator. The two differ
	// numerically; flipping this changes every emitted lift value.
	TextbookLift bool
}

// RuleGenerator enumerates every non-trivial bipartition of each frequent
// itemset of size >= 2 and keeps splits meeting the confidence threshold
type RuleGenerator struct {
	config RuleConfig
}

// NewRuleGenerator creates a rule generator with the reference lift formula
func NewRuleGenerator() *RuleGenerator {
	return &RuleGenerator{}
}

// NewRuleGeneratorWithConfig creates a rule generator with explicit config
func NewRuleGeneratorWithConfig(config RuleConfig) *RuleGenerator {
	return &RuleGenerator{config: config}
}

// Generate produces one rule per surviving antecedent/consequent split.
// Splits with zero antecedent support are skipped, never divided by.
func (g *RuleGenerator) Generate(ctx context.Context, itemsets []mining.FrequentItemset, minConfidence float64, baskets []basket.Basket) ([]mining.AssociationRule, error) {
	total := len(baskets)
	rules := make([]mining.AssociationRule, 0)
	if total == 0 {
		return rules, nil
	}

	for _, fi := range itemsets {
		n := len(fi.Items)
		if n < 2 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Every non-empty proper subset as antecedent, complement as
		// consequent: 2^n - 2 splits per itemset
		for k := 1; k < n; k++ {
			for _, idx := range combin.Combinations(n, k) {
				antecedent, consequent := split(fi.Items, idx)

				antCount := countSupport(baskets, antecedent)
				if antCount == 0 {
					continue
				}
				antSupport := float64(antCount) / float64(total)

				confidence := fi.Support / antSupport
				if confidence < minConfidence {
					continue
				}

				denominator := float64(fi.Count) / float64(total)
				if g.config.TextbookLift {
					denominator = float64(countSupport(baskets, consequent)) / float64(total)
				}
				lift := 0.0
				if denominator > 0 {
					lift = confidence / denominator
				}

				rules = append(rules, mining.AssociationRule{
					Antecedent: antecedent,
					Consequent: consequent,
					Support:    fi.Support,
					Confidence: confidence,
					Lift:       lift,
				})
			}
		}
	}

	return rules, nil
}

// split partitions a canonical itemset by ascending index set; both halves
// stay in sorted order
func split(items mining.Itemset, idx []int) (mining.Itemset, mining.Itemset) {
	selected := make(map[int]bool, len(idx))
	for _, i := range idx {
		selected[i] = true
	}
	antecedent := make(mining.Itemset, 0, len(idx))
	consequent := make(mining.Itemset, 0, len(items)-len(idx))
	for i, item := range items {
		if selected[i] {
			antecedent = append(antecedent, item)
		} else {
			consequent = append(consequent, item)
		}
	}
	return antecedent, consequent
}
