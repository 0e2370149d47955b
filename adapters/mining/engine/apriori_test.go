package engine

import (
	"context"
	"math"
	"testing"

	"gobasket/domain/basket"
	"gobasket/domain/mining"
)

// TestApriori_SingleBasket verifies the one-basket scenario: every subset of
// the basket is frequent at support 1.0
func TestApriori_SingleBasket(t *testing.T) {
	miner := NewAprioriMiner()
	baskets := []basket.Basket{basket.New("Bread", "Milk", "Butter")}

	itemsets, err := miner.Mine(context.Background(), baskets, 0.5)
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	// 3 singletons + 3 pairs + 1 triple
	if len(itemsets) != 7 {
		t.Fatalf("Expected 7 frequent itemsets, got %d", len(itemsets))
	}
	for _, fi := range itemsets {
		if fi.Support != 1.0 {
			t.Errorf("Expected support 1.0 for %v, got %f", fi.Items, fi.Support)
		}
		if fi.Count != 1 {
			t.Errorf("Expected count 1 for %v, got %d", fi.Items, fi.Count)
		}
	}

	singles := itemsetsOfSize(itemsets, 1)
	if len(singles) != 3 {
		t.Errorf("Expected 3 singleton itemsets, got %d", len(singles))
	}
	pairs := itemsetsOfSize(itemsets, 2)
	if len(pairs) != 3 {
		t.Errorf("Expected 3 pair itemsets, got %d", len(pairs))
	}
}

// TestApriori_TwoBaskets verifies support and count over a mixed collection
func TestApriori_TwoBaskets(t *testing.T) {
	miner := NewAprioriMiner()
	baskets := []basket.Basket{
		basket.New("Bread", "Milk", "Butter"),
		basket.New("Bread", "Milk"),
	}

	itemsets, err := miner.Mine(context.Background(), baskets, 0.5)
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	byKey := indexByKey(itemsets)

	breadMilk, ok := byKey[mining.NewItemset("Bread", "Milk").Key()]
	if !ok {
		t.Fatal("Expected {Bread,Milk} to be frequent")
	}
	if breadMilk.Support != 1.0 {
		t.Errorf("Expected {Bread,Milk} support 1.0, got %f", breadMilk.Support)
	}
	if breadMilk.Count != 2 {
		t.Errorf("Expected {Bread,Milk} count 2, got %d", breadMilk.Count)
	}

	butter, ok := byKey[mining.NewItemset("Butter").Key()]
	if !ok {
		t.Fatal("Expected {Butter} to be frequent at min_support 0.5")
	}
	if butter.Support != 0.5 {
		t.Errorf("Expected {Butter} support 0.5, got %f", butter.Support)
	}
}

// TestApriori_SupportCountInvariant checks support == count/total and
// count >= ceil(minSupport*total) for every returned itemset
func TestApriori_SupportCountInvariant(t *testing.T) {
	miner := NewAprioriMiner()
	baskets := []basket.Basket{
		basket.New("a", "b", "c"),
		basket.New("a", "b"),
		basket.New("a", "c", "d"),
		basket.New("b", "d"),
		basket.New("a", "b", "c", "d"),
	}
	minSupport := 0.4

	itemsets, err := miner.Mine(context.Background(), baskets, minSupport)
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}
	if len(itemsets) == 0 {
		t.Fatal("Expected frequent itemsets")
	}

	total := float64(len(baskets))
	minCount := int(math.Ceil(minSupport * total))
	for _, fi := range itemsets {
		if math.Abs(fi.Support-float64(fi.Count)/total) > 1e-9 {
			t.Errorf("Support/count mismatch for %v: support=%f count=%d", fi.Items, fi.Support, fi.Count)
		}
		if fi.Count < minCount {
			t.Errorf("Itemset %v below threshold: count=%d minCount=%d", fi.Items, fi.Count, minCount)
		}
	}
}

// TestApriori_SizeCap verifies no itemset exceeds the configured ceiling
func TestApriori_SizeCap(t *testing.T) {
	miner := NewAprioriMiner()
	// Every basket identical, so all subsets of a 5-item basket are frequent
	baskets := []basket.Basket{
		basket.New("a", "b", "c", "d", "e"),
		basket.New("a", "b", "c", "d", "e"),
	}

	itemsets, err := miner.Mine(context.Background(), baskets, 0.5)
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}
	for _, fi := range itemsets {
		if len(fi.Items) > DefaultMaxItemsetSize {
			t.Errorf("Itemset %v exceeds size cap %d", fi.Items, DefaultMaxItemsetSize)
		}
	}
	if len(itemsetsOfSize(itemsets, 3)) == 0 {
		t.Error("Expected size-3 itemsets at the cap")
	}

	// A raised ceiling must explore deeper
	deep := &AprioriMiner{MaxItemsetSize: 5}
	itemsets, err = deep.Mine(context.Background(), baskets, 0.5)
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}
	if len(itemsetsOfSize(itemsets, 5)) != 1 {
		t.Errorf("Expected one size-5 itemset with raised ceiling, got %d", len(itemsetsOfSize(itemsets, 5)))
	}
}

// TestApriori_EmptyBaskets verifies zero input yields zero output, no error
func TestApriori_EmptyBaskets(t *testing.T) {
	miner := NewAprioriMiner()
	itemsets, err := miner.Mine(context.Background(), nil, 0.5)
	if err != nil {
		t.Fatalf("Mine failed on empty input: %v", err)
	}
	if len(itemsets) != 0 {
		t.Errorf("Expected no itemsets for empty basket list, got %d", len(itemsets))
	}
}

// TestApriori_Deterministic verifies two runs over identical input produce
// identical output in identical order
func TestApriori_Deterministic(t *testing.T) {
	miner := NewAprioriMiner()
	baskets := []basket.Basket{
		basket.New("x", "y", "z"),
		basket.New("y", "z"),
		basket.New("x", "z", "w"),
		basket.New("x", "y"),
	}

	first, err := miner.Mine(context.Background(), baskets, 0.25)
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}
	second, err := miner.Mine(context.Background(), baskets, 0.25)
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Items.Equal(second[i].Items) {
			t.Errorf("Itemset order differs at %d: %v vs %v", i, first[i].Items, second[i].Items)
		}
		if first[i].Count != second[i].Count {
			t.Errorf("Count differs at %d: %d vs %d", i, first[i].Count, second[i].Count)
		}
	}
}

// TestApriori_CanonicalMemberOrder verifies members are sorted regardless of
// basket iteration order
func TestApriori_CanonicalMemberOrder(t *testing.T) {
	miner := NewAprioriMiner()
	baskets := []basket.Basket{
		basket.New("zebra", "apple", "mango"),
		basket.New("mango", "zebra", "apple"),
	}

	itemsets, err := miner.Mine(context.Background(), baskets, 0.5)
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}
	for _, fi := range itemsets {
		for i := 1; i < len(fi.Items); i++ {
			if fi.Items[i-1] >= fi.Items[i] {
				t.Errorf("Itemset %v not in canonical sorted order", fi.Items)
			}
		}
	}
}

func itemsetsOfSize(itemsets []mining.FrequentItemset, n int) []mining.FrequentItemset {
	out := make([]mining.FrequentItemset, 0)
	for _, fi := range itemsets {
		if len(fi.Items) == n {
			out = append(out, fi)
		}
	}
	return out
}

func indexByKey(itemsets []mining.FrequentItemset) map[string]mining.FrequentItemset {
	byKey := make(map[string]mining.FrequentItemset, len(itemsets))
	for _, fi := range itemsets {
		byKey[fi.Items.Key()] = fi
	}
	return byKey
}
