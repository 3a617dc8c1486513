package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

var ErrProductNotFound = errors.New("product not found")

// Sort modes accepted by List.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

const defaultPageSize = 8

// Provider serves the session catalog from an in-memory product list. Reads
// simulate a backend round trip with a fixed delay; concurrent reads for the
// same query collapse into one via singleflight.
type Provider struct {
	products []Product
	byID     map[int64]Product
	delay    time.Duration
	sfg      singleflight.Group
}

// NewProvider builds a provider over the demo catalog.
func NewProvider(delay time.Duration) *Provider {
	return NewProviderWithProducts(mockProducts, delay)
}

// NewProviderWithProducts builds a provider over an explicit product list.
func NewProviderWithProducts(products []Product, delay time.Duration) *Provider {
	byID := make(map[int64]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Provider{
		products: append([]Product(nil), products...),
		byID:     byID,
		delay:    delay,
	}
}

// Products returns the full catalog in seeded order.
func (p *Provider) Products(ctx context.Context) ([]Product, error) {
	v, err, _ := p.sfg.Do("all", func() (interface{}, error) {
		if err := p.wait(ctx); err != nil {
			return nil, err
		}
		return append([]Product(nil), p.products...), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Product), nil
}

// ProductByID looks up a single product.
func (p *Provider) ProductByID(ctx context.Context, id int64) (*Product, error) {
	v, err, _ := p.sfg.Do(fmt.Sprintf("id:%d", id), func() (interface{}, error) {
		if err := p.wait(ctx); err != nil {
			return nil, err
		}
		product, ok := p.byID[id]
		if !ok {
			return nil, ErrProductNotFound
		}
		return &product, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Product), nil
}

// Search matches the query case-insensitively against product names and
// category tags.
func (p *Provider) Search(ctx context.Context, query string) ([]Product, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var matched []Product
	for _, product := range p.products {
		if strings.Contains(strings.ToLower(product.Name), q) ||
			strings.Contains(strings.ToLower(product.Category), q) {
			matched = append(matched, product)
		}
	}
	return matched, nil
}

// ListQuery filters, sorts and paginates the catalog.
type ListQuery struct {
	Category string // empty or "all" matches everything
	Query    string // keyword over the product name
	MinPrice int64
	MaxPrice int64 // <= 0 means unbounded
	SortBy   string
	Page     int
	PageSize int
}

// ListResult is one page of a filtered catalog plus the total match count.
type ListResult struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// List applies the query and returns the requested page.
func (p *Provider) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	keyword := strings.ToLower(q.Query)
	var filtered []Product
	for _, product := range p.products {
		if q.Category != "" && q.Category != "all" && product.Category != q.Category {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(product.Name), keyword) {
			continue
		}
		if product.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && product.Price > q.MaxPrice {
			continue
		}
		filtered = append(filtered, product)
	}

	switch q.SortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ID > filtered[j].ID })
	default:
		// featured keeps the seeded order
	}

	page := q.Page
	if page <= 0 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &ListResult{
		Products: filtered[start:end],
		Total:    total,
	}, nil
}

// wait simulates the backend round trip.
func (p *Provider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
