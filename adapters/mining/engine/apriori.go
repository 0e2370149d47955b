package engine

import (
	"context"
	"math"
	"sort"

	"gobasket/domain/basket"
	"gobasket/domain/mining"

	"gonum.org/v1/gonum/stat/combin"
)

// DefaultMaxItemsetSize caps Apriori exploration depth. Raising it changes
// asymptotic behavior: every level rescans all baskets per candidate.
const DefaultMaxItemsetSize = 3

// AprioriMiner implements classic level-wise Apriori with prefix-join
// candidate generation. The join is a lexicographic (k-2)-prefix match only;
// it does not additionally prune candidates whose (k-1)-subsets are
// infrequent.
type AprioriMiner struct {
	// MaxItemsetSize bounds the largest itemset explored
	MaxItemsetSize int
}

// NewAprioriMiner creates an Apriori miner with the default size ceiling
func NewAprioriMiner() *AprioriMiner {
	return &AprioriMiner{MaxItemsetSize: DefaultMaxItemsetSize}
}

// Algorithm names the strategy for result tagging
func (m *AprioriMiner) Algorithm() mining.Algorithm { return mining.AlgorithmApriori }

// Mine computes every itemset of size 1..MaxItemsetSize whose support meets
// minSupport. Itemset members come out in canonical sorted order and the
// returned list is deterministic for identical input.
func (m *AprioriMiner) Mine(ctx context.Context, baskets []basket.Basket, minSupport float64) ([]mining.FrequentItemset, error) {
	total := len(baskets)
	if total == 0 {
		return []mining.FrequentItemset{}, nil
	}

	maxSize := m.MaxItemsetSize
	if maxSize <= 0 {
		maxSize = DefaultMaxItemsetSize
	}

	minCount := int(math.Ceil(minSupport * float64(total)))
	if minCount < 1 {
		minCount = 1
	}

	frequent := make([]mining.FrequentItemset, 0)

	// Level 1: count every distinct item across all baskets
	itemCounts := make(map[string]int)
	for _, b := range baskets {
		for item := range b {
			itemCounts[item]++
		}
	}
	names := make([]string, 0, len(itemCounts))
	for item := range itemCounts {
		names = append(names, item)
	}
	sort.Strings(names)

	level := make([]mining.Itemset, 0, len(names))
	for _, item := range names {
		count := itemCounts[item]
		if count < minCount {
			continue
		}
		set := mining.Itemset{item}
		level = append(level, set)
		frequent = append(frequent, mining.FrequentItemset{
			Items:   set,
			Support: float64(count) / float64(total),
			Count:   count,
		})
	}

	// Level k: prefix-join survivors of level k-1, count by full basket scan
	for k := 2; k <= maxSize && len(level) > 1; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates := joinCandidates(level, k)
		next := make([]mining.Itemset, 0, len(candidates))
		for _, candidate := range candidates {
			count := countSupport(baskets, candidate)
			if count < minCount {
				continue
			}
			next = append(next, candidate)
			frequent = append(frequent, mining.FrequentItemset{
				Items:   candidate,
				Support: float64(count) / float64(total),
				Count:   count,
			})
		}
		level = next
	}

	return frequent, nil
}

// joinCandidates performs the Apriori-gen join: two sorted (k-1)-itemsets
// merge when they share their first k-2 members. Level 2 degenerates to all
// pairs of frequent singletons.
func joinCandidates(level []mining.Itemset, k int) []mining.Itemset {
	if k == 2 {
		// All pairs of frequent items, enumerated in index order
		candidates := make([]mining.Itemset, 0, len(level)*(len(level)-1)/2)
		for _, pair := range combin.Combinations(len(level), 2) {
			candidates = append(candidates, mining.Itemset{level[pair[0]][0], level[pair[1]][0]})
		}
		return candidates
	}

	candidates := make([]mining.Itemset, 0)
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			a, b := level[i], level[j]
			if !samePrefix(a, b, k-2) {
				continue
			}
			merged := a.Union(b)
			if len(merged) != k {
				continue
			}
			candidates = append(candidates, merged)
		}
	}
	return candidates
}

// samePrefix reports whether two sorted itemsets agree on their first n members
func samePrefix(a, b mining.Itemset, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// countSupport counts baskets containing every member of the itemset
func countSupport(baskets []basket.Basket, items mining.Itemset) int {
	count := 0
	for _, b := range baskets {
		if b.ContainsAll(items) {
			count++
		}
	}
	return count
}
