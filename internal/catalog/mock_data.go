package catalog

// mockProducts is the demo catalog. Prices are whole currency units.
var mockProducts = []Product{
	{
		ID:            1,
		Name:          "iPhone 15 Pro Max",
		Price:         45900,
		OriginalPrice: 49900,
		Image:         "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?auto=format&fit=crop&w=600&q=80",
		Category:      "electronics",
		Rating:        4.8,
		Reviews:       1250,
		Badge:         "Hot",
		Description:   "The latest iPhone 15 Pro Max with the A17 Pro chip, strong performance and an excellent camera system.",
	},
	{
		ID:            2,
		Name:          "MacBook Air M2",
		Price:         35900,
		OriginalPrice: 39900,
		Image:         "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=600&q=80",
		Category:      "electronics",
		Rating:        4.9,
		Reviews:       890,
		Badge:         "New",
		Description:   "Thin and light MacBook Air with the M2 chip and up to 18 hours of battery life.",
	},
	{
		ID:            3,
		Name:          "Nike Air Max 270",
		Price:         3200,
		OriginalPrice: 4200,
		Image:         "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=600&q=80",
		Category:      "sports",
		Rating:        4.6,
		Reviews:       567,
		Badge:         "Limited",
		Description:   "Breathable running shoes with Air Max cushioning.",
	},
	{
		ID:            4,
		Name:          "Samsung 4K Smart TV",
		Price:         28900,
		OriginalPrice: 32900,
		Image:         "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?auto=format&fit=crop&w=600&q=80",
		Category:      "electronics",
		Rating:        4.7,
		Reviews:       432,
		Badge:         "VIP",
		Description:   "65 inch 4K smart TV with HDR support.",
	},
	{
		ID:            5,
		Name:          "Dyson V15 Vacuum",
		Price:         18900,
		OriginalPrice: 21900,
		Image:         "https://images.unsplash.com/photo-1581578731548-c64695cc6952?auto=format&fit=crop&w=600&q=80",
		Category:      "home",
		Rating:        4.8,
		Reviews:       789,
		Badge:         "Best Seller",
		Description:   "Cordless vacuum with laser dust detection for deep cleaning.",
	},
	{
		ID:            6,
		Name:          "Lancome Serum",
		Price:         2800,
		OriginalPrice: 3500,
		Image:         "https://images.unsplash.com/photo-1556228720-195a672e8a03?auto=format&fit=crop&w=600&q=80",
		Category:      "beauty",
		Rating:        4.5,
		Reviews:       234,
		Badge:         "Limited",
		Description:   "Hydrating serum with hyaluronic acid.",
	},
	{
		ID:            7,
		Name:          "Uniqlo Down Jacket",
		Price:         1200,
		OriginalPrice: 1800,
		Image:         "https://images.unsplash.com/photo-1551028719-00167b16eac5?auto=format&fit=crop&w=600&q=80",
		Category:      "fashion",
		Rating:        4.4,
		Reviews:       156,
		Badge:         "Sale",
		Description:   "Light and warm down jacket for everyday wear.",
	},
	{
		ID:            8,
		Name:          "Apple Watch Series 9",
		Price:         12900,
		OriginalPrice: 14900,
		Image:         "https://images.unsplash.com/photo-1544117519-31a4b719223d?auto=format&fit=crop&w=600&q=80",
		Category:      "electronics",
		Rating:        4.7,
		Reviews:       678,
		Badge:         "New",
		Description:   "Smart watch with health monitoring, ECG and blood oxygen tracking.",
	},
}
