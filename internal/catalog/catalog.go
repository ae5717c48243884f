// Package catalog defines the immutable product catalog.
//
// A Catalog is fixed for the lifetime of a session: the filter pipeline and
// the cart engine read it, nobody writes it. The only "mutation" is
// AddComment, which follows copy-on-write - it returns a new Catalog sharing
// everything except the affected product.
package catalog

import (
	"fmt"
	"math"
	"sort"
)

// Catalog is an immutable set of products, addressed by id.
//
// The zero value is an empty catalog. Use New to build one from a product
// slice; New copies its input so later mutation of the caller's slice cannot
// leak in.
type Catalog struct {
	products []Product
	maxPrice float64 // ceil of the highest product price, fixed at construction
}

// New builds a catalog from the given products.
//
// Products are stored in ascending id order regardless of input order.
// Returns an error if two products share an id - the at-most-one-line-item
// cart invariant depends on ids being unique.
func New(products []Product) (*Catalog, error) {
	cp := make([]Product, len(products))
	copy(cp, products)
	sort.Slice(cp, func(i, j int) bool { return cp[i].ID < cp[j].ID })

	seen := make(map[int64]bool, len(cp))
	var max float64
	for _, p := range cp {
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id: %d", p.ID)
		}
		seen[p.ID] = true
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d: negative price %v", p.ID, p.Price)
		}
		if p.Price > max {
			max = p.Price
		}
	}

	return &Catalog{products: cp, maxPrice: math.Ceil(max)}, nil
}

// Products returns the catalog contents in ascending id order.
// The returned slice is a copy; callers may reorder it freely.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID returns the product with the given id.
func (c *Catalog) ByID(id int64) (Product, bool) {
	i := sort.Search(len(c.products), func(i int) bool { return c.products[i].ID >= id })
	if i < len(c.products) && c.products[i].ID == id {
		return c.products[i], true
	}
	return Product{}, false
}

// MaxPrice returns the inclusive upper bound for price filtering: the
// ceiling of the highest product price. Fixed at construction; filter
// controls must not exceed it.
func (c *Catalog) MaxPrice() float64 {
	return c.maxPrice
}

// Categories returns the distinct category labels in catalog (id) order.
// The "All" sentinel is a filter concern and is not included here.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool, len(c.products))
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// AddComment returns a new catalog in which the identified product carries
// the comment prepended (newest-first). The receiver is unchanged.
// Returns false if the id is unknown; the receiver is returned as-is.
func (c *Catalog) AddComment(productID int64, comment Comment) (*Catalog, bool) {
	i := sort.Search(len(c.products), func(i int) bool { return c.products[i].ID >= productID })
	if i >= len(c.products) || c.products[i].ID != productID {
		return c, false
	}

	cp := make([]Product, len(c.products))
	copy(cp, c.products)
	cp[i] = cp[i].WithComment(comment)
	return &Catalog{products: cp, maxPrice: c.maxPrice}, true
}
