// Package filter implements the catalog filtering and sorting pipeline.
//
// The pipeline is a pure function: View derives a displayed product list
// from a catalog and a State, recomputed from scratch on every call. There
// is no memoized result that can go stale between mutations.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nextgearshop/storefront/internal/catalog"
)

// CategoryAll is the sentinel category label that matches every product.
const CategoryAll = "All"

// StockFilter selects products by availability.
type StockFilter string

const (
	// StockAny matches regardless of availability.
	StockAny StockFilter = "all"
	// StockInOnly matches only products currently in stock.
	StockInOnly StockFilter = "in-stock"
	// StockOutOnly matches only products currently out of stock.
	StockOutOnly StockFilter = "out-of-stock"
)

// ValidStockFilters defines the allowed stock filter values.
var ValidStockFilters = map[StockFilter]bool{
	StockAny:     true,
	StockInOnly:  true,
	StockOutOnly: true,
}

// SortOrder selects the ordering applied after filtering.
type SortOrder string

const (
	// SortDefault orders by ascending product id.
	SortDefault SortOrder = "default"
	// SortPriceAsc orders by ascending price, ties in original order.
	SortPriceAsc SortOrder = "price-asc"
	// SortPriceDesc orders by descending price, ties in original order.
	SortPriceDesc SortOrder = "price-desc"
)

// ValidSortOrders defines the allowed sort order values.
var ValidSortOrders = map[SortOrder]bool{
	SortDefault:   true,
	SortPriceAsc:  true,
	SortPriceDesc: true,
}

// State holds the current filter controls for one session.
//
// State is owned by a single logical session and mutated only through its
// setters in response to discrete UI actions. It carries no derived data;
// View recomputes the displayed list on every call.
type State struct {
	searchTerm   string
	category     string
	priceCeiling float64
	maxPrice     float64 // upper bound for priceCeiling, fixed at construction
	stock        StockFilter
	sort         SortOrder
}

// NewState creates filter state for the given catalog with everything open:
// empty search, the All category, the stock filter wide open, default sort,
// and the price ceiling at the catalog's maximum price bound.
func NewState(c *catalog.Catalog) *State {
	return &State{
		category:     CategoryAll,
		priceCeiling: c.MaxPrice(),
		maxPrice:     c.MaxPrice(),
		stock:        StockAny,
		sort:         SortDefault,
	}
}

// SetSearchTerm sets the case-insensitive name search term.
// An empty term matches every product.
func (s *State) SetSearchTerm(term string) {
	s.searchTerm = term
}

// SearchTerm returns the current search term.
func (s *State) SearchTerm() string { return s.searchTerm }

// SetCategory sets the active category label. CategoryAll disables the
// category predicate.
func (s *State) SetCategory(category string) {
	s.category = category
}

// Category returns the active category label.
func (s *State) Category() string { return s.category }

// SetPriceCeiling sets the inclusive price upper bound, clamped to
// [0, MaxPrice]. The catalog-derived maximum can never be exceeded.
func (s *State) SetPriceCeiling(ceiling float64) {
	if ceiling < 0 {
		ceiling = 0
	}
	if ceiling > s.maxPrice {
		ceiling = s.maxPrice
	}
	s.priceCeiling = ceiling
}

// PriceCeiling returns the inclusive price upper bound.
func (s *State) PriceCeiling() float64 { return s.priceCeiling }

// MaxPrice returns the fixed upper bound for the price ceiling.
func (s *State) MaxPrice() float64 { return s.maxPrice }

// SetStock sets the stock availability filter.
// Returns an error for unknown values; state is unchanged on error.
func (s *State) SetStock(f StockFilter) error {
	if !ValidStockFilters[f] {
		return fmt.Errorf("invalid stock filter %q: must be one of %q, %q, %q", f, StockAny, StockInOnly, StockOutOnly)
	}
	s.stock = f
	return nil
}

// Stock returns the current stock availability filter.
func (s *State) Stock() StockFilter { return s.stock }

// SetSort sets the sort order.
// Returns an error for unknown values; state is unchanged on error.
func (s *State) SetSort(o SortOrder) error {
	if !ValidSortOrders[o] {
		return fmt.Errorf("invalid sort order %q: must be one of %q, %q, %q", o, SortDefault, SortPriceAsc, SortPriceDesc)
	}
	s.sort = o
	return nil
}

// Sort returns the current sort order.
func (s *State) Sort() SortOrder { return s.sort }

// View derives the displayed product list: the products passing every
// predicate, in the state's sort order.
//
// Pure function of its inputs; an empty result is valid output, not an
// error. Sorting is stable, so equal-price products keep their original
// relative order under both price sorts.
func View(c *catalog.Catalog, s *State) []catalog.Product {
	products := c.Products()

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if matches(p, s) {
			out = append(out, p)
		}
	}

	switch s.sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}

	return out
}

// matches reports whether a product passes every filter predicate.
func matches(p catalog.Product, s *State) bool {
	if s.category != CategoryAll && p.Category != s.category {
		return false
	}
	if s.searchTerm != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(s.searchTerm)) {
		return false
	}
	if p.Price > s.priceCeiling {
		return false
	}
	switch s.stock {
	case StockInOnly:
		return p.InStock
	case StockOutOnly:
		return !p.InStock
	default:
		return true
	}
}
