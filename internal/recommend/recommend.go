// Package recommend ranks catalog products against the current cart. It is
// pure: no state of its own, no side effects, stable ordering so equally
// scored products keep their catalog position.
package recommend

import (
	"math"
	"sort"

	"github.com/rick465/react-shop/internal/cart"
	"github.com/rick465/react-shop/internal/catalog"
)

// DefaultMax is the number of products returned when the caller does not
// ask for a specific cap.
const DefaultMax = 4

// priceBandRatio is the tolerance around the cart's mean price: a candidate
// within +-50% of the mean counts as similarly priced.
const priceBandRatio = 0.5

// relatedBandRatio is the tighter +-30% band used for related products.
const relatedBandRatio = 0.3

// ForCart returns up to max products worth showing next to the cart.
//
// With an empty cart it is the popularity path: the catalog sorted by
// descending rating. Otherwise candidates are products not yet in the cart
// that either share a category with it or sit inside the price band around
// the cart's mean price, ranked by 2 points for the category match plus 1
// for the price match. An empty result is a valid result.
func ForCart(products []catalog.Product, items []cart.Item, max int) []catalog.Product {
	if max <= 0 {
		max = DefaultMax
	}

	if len(items) == 0 {
		popular := append([]catalog.Product(nil), products...)
		sort.SliceStable(popular, func(i, j int) bool { return popular[i].Rating > popular[j].Rating })
		return truncate(popular, max)
	}

	inCart := make(map[int64]bool, len(items))
	for _, item := range items {
		inCart[item.ProductID] = true
	}

	// Resolve cart lines to catalog entries; lines whose product left the
	// catalog contribute nothing.
	categories := make(map[string]bool)
	var priceSum int64
	resolved := 0
	for _, p := range products {
		if inCart[p.ID] {
			categories[p.Category] = true
			priceSum += p.Price
			resolved++
		}
	}
	if resolved == 0 {
		return nil
	}

	avgPrice := float64(priceSum) / float64(resolved)
	priceBand := avgPrice * priceBandRatio

	type scored struct {
		product catalog.Product
		score   int
	}
	var candidates []scored
	for _, p := range products {
		if inCart[p.ID] {
			continue
		}
		score := 0
		if categories[p.Category] {
			score += 2
		}
		if math.Abs(float64(p.Price)-avgPrice) <= priceBand {
			score++
		}
		if score > 0 {
			candidates = append(candidates, scored{product: p, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	result := make([]catalog.Product, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.product)
	}
	return truncate(result, max)
}

// Related returns up to max products to show on current's detail page:
// first everything in the same category, then anything within +-30% of
// current's price, deduplicated, in catalog order within each group.
func Related(products []catalog.Product, current catalog.Product, max int) []catalog.Product {
	if max <= 0 {
		max = DefaultMax
	}

	band := float64(current.Price) * relatedBandRatio
	seen := make(map[int64]bool)
	var related []catalog.Product

	for _, p := range products {
		if p.ID != current.ID && p.Category == current.Category {
			related = append(related, p)
			seen[p.ID] = true
		}
	}
	for _, p := range products {
		if p.ID == current.ID || seen[p.ID] {
			continue
		}
		if math.Abs(float64(p.Price-current.Price)) <= band {
			related = append(related, p)
			seen[p.ID] = true
		}
	}

	return truncate(related, max)
}

func truncate(products []catalog.Product, max int) []catalog.Product {
	if len(products) > max {
		return products[:max]
	}
	return products
}
