package ports

import (
	"context"

	"gobasket/domain/basket"
	"gobasket/domain/mining"
)

// Miner computes every itemset meeting the minimum support threshold over a
// basket collection. Implementations are pure: no I/O, no shared state across
// invocations, deterministic output for identical input.
type Miner interface {
	// Mine returns the frequent itemsets with canonical member order.
	// An empty basket list yields an empty result, never an error.
	Mine(ctx context.Context, baskets []basket.Basket, minSupport float64) ([]mining.FrequentItemset, error)

	// Algorithm names the strategy for result tagging
	Algorithm() mining.Algorithm
}

// RuleGenerator enumerates antecedent/consequent splits of frequent itemsets
// and keeps those meeting the confidence threshold
type RuleGenerator interface {
	Generate(ctx context.Context, itemsets []mining.FrequentItemset, minConfidence float64, baskets []basket.Basket) ([]mining.AssociationRule, error)
}

// MinerRegistry resolves a strategy from its tagged algorithm name
type MinerRegistry interface {
	ForAlgorithm(alg mining.Algorithm) (Miner, error)
}
