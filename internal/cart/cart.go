package cart

import (
	"log/slog"

	"github.com/nextgearshop/storefront/internal/catalog"
)

// Pricing rule constants. See the package doc for the derivation chain.
const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 500
	// FlatShippingRate is the shipping charge below the threshold.
	FlatShippingRate = 25
	// TaxRate is the flat tax rate applied to the subtotal.
	TaxRate = 0.08
)

// LineItem pairs a product with a quantity.
//
// INVARIANTS:
//   - quantity >= 1 for every item held by the engine
//   - at most one line item per product id
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Engine owns the line-item collection and derives all pricing from it.
// Create with New; the zero value is not usable.
type Engine struct {
	items   []LineItem // insertion order preserved
	numbers OrderNumberGenerator
	notify  Notifier
}

// Option configures an Engine.
type Option func(*Engine)

// WithOrderNumbers sets the order number generator.
// Default: UUIDGenerator (time-sortable, unique per call).
func WithOrderNumbers(g OrderNumberGenerator) Option {
	return func(e *Engine) { e.numbers = g }
}

// WithNotifier sets the notification sink for state-change feedback.
// Default: NopNotifier.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notify = n }
}

// New creates an empty cart engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		numbers: UUIDGenerator{},
		notify:  NopNotifier{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add puts one unit of the product in the cart: an existing line item's
// quantity is incremented, otherwise a new line item with quantity 1 is
// appended. Always succeeds; stock gating is the caller's concern.
func (e *Engine) Add(p catalog.Product) {
	for i := range e.items {
		if e.items[i].Product.ID == p.ID {
			e.items[i].Quantity++
			slog.Debug("cart quantity incremented", "product_id", p.ID, "quantity", e.items[i].Quantity)
			e.notify.Notify(p.Name + " added to cart!")
			return
		}
	}
	e.items = append(e.items, LineItem{Product: p, Quantity: 1})
	slog.Debug("cart line item added", "product_id", p.ID)
	e.notify.Notify(p.Name + " added to cart!")
}

// Remove deletes the line item with the given product id.
// No-op if the id is absent.
func (e *Engine) Remove(productID int64) {
	for i := range e.items {
		if e.items[i].Product.ID == productID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			slog.Debug("cart line item removed", "product_id", productID)
			return
		}
	}
}

// UpdateQuantity sets the line item's quantity to quantity, replacing the
// old value. A quantity <= 0 removes the line item. No-op if the id is
// absent.
func (e *Engine) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		e.Remove(productID)
		return
	}
	for i := range e.items {
		if e.items[i].Product.ID == productID {
			e.items[i].Quantity = quantity
			slog.Debug("cart quantity set", "product_id", productID, "quantity", quantity)
			return
		}
	}
}

// Clear empties the line-item collection.
func (e *Engine) Clear() {
	e.items = nil
	slog.Debug("cart cleared")
}

// Items returns the current line items in insertion order.
// The returned slice is a copy.
func (e *Engine) Items() []LineItem {
	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// Len returns the number of distinct line items.
func (e *Engine) Len() int {
	return len(e.items)
}

// Subtotal is the sum over line items of price × quantity.
func (e *Engine) Subtotal() float64 {
	var sum float64
	for _, it := range e.items {
		sum += it.Product.Price * float64(it.Quantity)
	}
	return sum
}

// ShippingCost is 0 for an empty cart or a subtotal above the free
// threshold, else the flat rate. The empty-cart branch is moot (zero
// shipping on zero subtotal is unobservable either way) but kept for
// fidelity with the pricing rule as stated.
func (e *Engine) ShippingCost() float64 {
	sub := e.Subtotal()
	if sub > FreeShippingThreshold || sub == 0 {
		return 0
	}
	return FlatShippingRate
}

// Tax is the flat-rate tax on the subtotal. No per-category rules.
func (e *Engine) Tax() float64 {
	return e.Subtotal() * TaxRate
}

// Total is subtotal + shipping + tax, exactly.
func (e *Engine) Total() float64 {
	return e.Subtotal() + e.ShippingCost() + e.Tax()
}

// TotalItems is the sum of all line-item quantities.
func (e *Engine) TotalItems() int {
	var n int
	for _, it := range e.items {
		n += it.Quantity
	}
	return n
}
