package engine

import (
	"context"
	"math"
	"sort"

	"gobasket/domain/basket"
	"gobasket/domain/mining"

	"gonum.org/v1/gonum/stat/combin"
)

// FrequencyOrderedMiner is the fp_growth strategy: items are ordered by
// descending global frequency, filtered against the support threshold, and
// candidate pairs are formed from all combinations of the survivors. No
// FP-tree is built and no itemset larger than a pair is explored; this path
// intentionally stops at size 2 where Apriori goes to 3.
type FrequencyOrderedMiner struct{}

// NewFrequencyOrderedMiner creates the frequency-ordered miner
func NewFrequencyOrderedMiner() *FrequencyOrderedMiner {
	return &FrequencyOrderedMiner{}
}

// Algorithm names the strategy for result tagging
func (m *FrequencyOrderedMiner) Algorithm() mining.Algorithm { return mining.AlgorithmFPGrowth }

// Mine returns frequent itemsets of size 1 and 2 only. Singletons are
// emitted in descending frequency order (name ascending on ties) to keep
// output deterministic; members within each itemset are canonically sorted.
func (m *FrequencyOrderedMiner) Mine(ctx context.Context, baskets []basket.Basket, minSupport float64) ([]mining.FrequentItemset, error) {
	total := len(baskets)
	if total == 0 {
		return []mining.FrequentItemset{}, nil
	}

	minCount := int(math.Ceil(minSupport * float64(total)))
	if minCount < 1 {
		minCount = 1
	}

	itemCounts := make(map[string]int)
	for _, b := range baskets {
		for item := range b {
			itemCounts[item]++
		}
	}

	type itemFreq struct {
		name  string
		count int
	}
	ordered := make([]itemFreq, 0, len(itemCounts))
	for name, count := range itemCounts {
		if count < minCount {
			continue
		}
		ordered = append(ordered, itemFreq{name: name, count: count})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].name < ordered[j].name
	})

	frequent := make([]mining.FrequentItemset, 0, len(ordered))
	for _, f := range ordered {
		frequent = append(frequent, mining.FrequentItemset{
			Items:   mining.Itemset{f.name},
			Support: float64(f.count) / float64(total),
			Count:   f.count,
		})
	}

	if len(ordered) < 2 {
		return frequent, nil
	}

	// Candidate pairs from all combinations of frequent items
	for _, pair := range combin.Combinations(len(ordered), 2) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		candidate := mining.NewItemset(ordered[pair[0]].name, ordered[pair[1]].name)
		count := countSupport(baskets, candidate)
		if count < minCount {
			continue
		}
		frequent = append(frequent, mining.FrequentItemset{
			Items:   candidate,
			Support: float64(count) / float64(total),
			Count:   count,
		})
	}

	return frequent, nil
}
