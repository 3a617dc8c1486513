package catalog

// Product is a catalog entry. The catalog is immutable for the session;
// everything outside this package reads products by value.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"original_price,omitempty"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Badge         string  `json:"badge,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// DiscountPercent returns the rounded discount against the original price,
// or 0 when the product is not discounted.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= p.Price {
		return 0
	}
	return int(float64(p.OriginalPrice-p.Price)/float64(p.OriginalPrice)*100 + 0.5)
}
