package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rick465/react-shop/internal/catalog"
	"github.com/rick465/react-shop/internal/recommend"
)

type ProductHandler struct {
	catalog *catalog.Provider
}

func NewProductHandler(provider *catalog.Provider) *ProductHandler {
	return &ProductHandler{catalog: provider}
}

// List serves the product grid: ?category=, ?q=, ?min_price=, ?max_price=,
// ?sort=, ?page=, ?page_size=.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := catalog.ListQuery{
		Category: q.Get("category"),
		Query:    q.Get("q"),
		SortBy:   q.Get("sort"),
	}
	query.MinPrice, _ = strconv.ParseInt(q.Get("min_price"), 10, 64)
	query.MaxPrice, _ = strconv.ParseInt(q.Get("max_price"), 10, 64)
	query.Page, _ = strconv.Atoi(q.Get("page"))
	query.PageSize, _ = strconv.Atoi(q.Get("page_size"))

	result, err := h.catalog.List(r.Context(), query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	product, err := h.catalog.ProductByID(r.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// Related serves the product-detail sidebar.
func (h *ProductHandler) Related(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	product, err := h.catalog.ProductByID(r.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get product")
		return
	}

	products, err := h.catalog.Products(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, recommend.Related(products, *product, recommend.DefaultMax))
}
