package testkit

import (
	"fmt"
	"math/rand"

	"gobasket/domain/basket"
)

// BasketGeneratorConfig configures the synthetic basket generator
type BasketGeneratorConfig struct {
	BasketCount   int     `json:"basket_count"`
	CatalogSize   int     `json:"catalog_size"`
	AvgBasketSize float64 `json:"avg_basket_size"`
	Seed          int64   `json:"seed"`
}

// DefaultBasketConfig returns sensible defaults for basket generation
func DefaultBasketConfig() BasketGeneratorConfig {
	return BasketGeneratorConfig{
		BasketCount:   200,
		CatalogSize:   30,
		AvgBasketSize: 4.0,
		Seed:          42,
	}
}

// pairAffinity is a planted co-purchase pattern: when the first item lands
// in a basket, the second follows with the given probability. These give
// generated data real rules for the miners to find.
type pairAffinity struct {
	first, second string
	probability   float64
}

// BasketGenerator produces deterministic synthetic basket collections with
// planted item affinities
type BasketGenerator struct {
	config     BasketGeneratorConfig
	rng        *rand.Rand
	catalog    []string
	affinities []pairAffinity
}

// NewBasketGenerator creates a generator seeded from the config
func NewBasketGenerator(config BasketGeneratorConfig) *BasketGenerator {
	catalog := make([]string, config.CatalogSize)
	for i := range catalog {
		catalog[i] = fmt.Sprintf("item_%03d", i+1)
	}
	affinities := []pairAffinity{}
	if config.CatalogSize >= 4 {
		affinities = []pairAffinity{
			{first: catalog[0], second: catalog[1], probability: 0.8},
			{first: catalog[2], second: catalog[3], probability: 0.6},
		}
	}
	return &BasketGenerator{
		config:     config,
		rng:        rand.New(rand.NewSource(config.Seed)),
		catalog:    catalog,
		affinities: affinities,
	}
}

// Catalog returns the generated item names
func (g *BasketGenerator) Catalog() []string {
	return g.catalog
}

// Generate produces the configured number of baskets. Identical configs
// produce identical collections.
func (g *BasketGenerator) Generate() []basket.Basket {
	baskets := make([]basket.Basket, 0, g.config.BasketCount)
	for i := 0; i < g.config.BasketCount; i++ {
		baskets = append(baskets, g.generateBasket())
	}
	return baskets
}

// GenerateRecords produces transaction records in the shape basket
// extraction and repository tests consume
func (g *BasketGenerator) GenerateRecords() []basket.TransactionRecord {
	records := make([]basket.TransactionRecord, 0, g.config.BasketCount)
	for i := 0; i < g.config.BasketCount; i++ {
		b := g.generateBasket()
		record := basket.TransactionRecord{
			ExternalID: fmt.Sprintf("txn_%05d", i+1),
		}
		for _, item := range b.Items() {
			record.Items = append(record.Items, basket.LineItem{
				ItemName: item,
				Quantity: 1 + g.rng.Intn(3),
			})
		}
		records = append(records, record)
	}
	return records
}

func (g *BasketGenerator) generateBasket() basket.Basket {
	size := int(g.config.AvgBasketSize + g.rng.NormFloat64())
	if size < 1 {
		size = 1
	}
	if size > len(g.catalog) {
		size = len(g.catalog)
	}

	b := make(basket.Basket, size)
	for len(b) < size {
		item := g.catalog[g.rng.Intn(len(g.catalog))]
		b[item] = struct{}{}
	}

	// Apply planted affinities after random fill
	for _, affinity := range g.affinities {
		if b.Has(affinity.first) && g.rng.Float64() < affinity.probability {
			b[affinity.second] = struct{}{}
		}
	}
	return b
}
