package engine

import (
	"fmt"

	"gobasket/domain/core"
	"gobasket/domain/mining"
	"gobasket/ports"
)

// Registry dispatches algorithm names to miner strategies. Strategies are
// stateless, so one instance per algorithm is shared across runs.
type Registry struct {
	miners map[mining.Algorithm]ports.Miner
}

// NewRegistry builds the default strategy table: Apriori with the given size
// ceiling (0 means the default) and the frequency-ordered pair miner.
func NewRegistry(maxItemsetSize int) *Registry {
	apriori := NewAprioriMiner()
	if maxItemsetSize > 0 {
		apriori.MaxItemsetSize = maxItemsetSize
	}
	return &Registry{
		miners: map[mining.Algorithm]ports.Miner{
			mining.AlgorithmApriori:  apriori,
			mining.AlgorithmFPGrowth: NewFrequencyOrderedMiner(),
		},
	}
}

// ForAlgorithm resolves a strategy by name
func (r *Registry) ForAlgorithm(alg mining.Algorithm) (ports.Miner, error) {
	miner, ok := r.miners[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownAlgorithm, alg)
	}
	return miner, nil
}
