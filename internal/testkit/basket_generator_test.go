package testkit

import (
	"testing"
)

// TestBasketGenerator_Deterministic verifies identical seeds produce
// identical collections
func TestBasketGenerator_Deterministic(t *testing.T) {
	config := DefaultBasketConfig()
	first := NewBasketGenerator(config).Generate()
	second := NewBasketGenerator(config).Generate()

	if len(first) != len(second) {
		t.Fatalf("Collection sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i].Items(), second[i].Items()
		if len(a) != len(b) {
			t.Fatalf("Basket %d sizes differ: %d vs %d", i, len(a), len(b))
		}
		for j := range a {
			if a[j] != b[j] {
				t.Errorf("Basket %d differs at %d: %s vs %s", i, j, a[j], b[j])
			}
		}
	}
}

// TestBasketGenerator_RespectsConfig verifies counts and catalog bounds
func TestBasketGenerator_RespectsConfig(t *testing.T) {
	config := BasketGeneratorConfig{
		BasketCount:   50,
		CatalogSize:   10,
		AvgBasketSize: 3.0,
		Seed:          7,
	}
	gen := NewBasketGenerator(config)
	baskets := gen.Generate()

	if len(baskets) != 50 {
		t.Fatalf("Expected 50 baskets, got %d", len(baskets))
	}

	catalog := make(map[string]bool)
	for _, name := range gen.Catalog() {
		catalog[name] = true
	}
	for i, b := range baskets {
		if len(b) == 0 {
			t.Errorf("Basket %d is empty", i)
		}
		for item := range b {
			if !catalog[item] {
				t.Errorf("Basket %d contains unknown item %s", i, item)
			}
		}
	}
}

// TestBasketGenerator_PlantedAffinity verifies the planted co-purchase
// pattern is visible in the generated data
func TestBasketGenerator_PlantedAffinity(t *testing.T) {
	config := BasketGeneratorConfig{
		BasketCount:   500,
		CatalogSize:   20,
		AvgBasketSize: 4.0,
		Seed:          42,
	}
	gen := NewBasketGenerator(config)
	baskets := gen.Generate()

	withFirst, withBoth := 0, 0
	for _, b := range baskets {
		if b.Has("item_001") {
			withFirst++
			if b.Has("item_002") {
				withBoth++
			}
		}
	}
	if withFirst == 0 {
		t.Fatal("Expected item_001 to appear in some baskets")
	}
	// 0.8 affinity plus random co-occurrence should dominate chance level
	ratio := float64(withBoth) / float64(withFirst)
	if ratio < 0.5 {
		t.Errorf("Expected strong co-occurrence for planted pair, got ratio %.2f", ratio)
	}
}

// TestBasketGenerator_Records verifies record generation matches basket
// extraction expectations
func TestBasketGenerator_Records(t *testing.T) {
	gen := NewBasketGenerator(DefaultBasketConfig())
	records := gen.GenerateRecords()

	if len(records) != DefaultBasketConfig().BasketCount {
		t.Fatalf("Expected %d records, got %d", DefaultBasketConfig().BasketCount, len(records))
	}
	for i, record := range records {
		if record.ExternalID == "" {
			t.Errorf("Record %d missing external ID", i)
		}
		if len(record.Items) == 0 {
			t.Errorf("Record %d has no line items", i)
		}
		for _, line := range record.Items {
			if line.Quantity < 1 {
				t.Errorf("Record %d has non-positive quantity", i)
			}
		}
	}
}
