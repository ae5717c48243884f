// Package cart implements the cart and pricing engine.
//
// The engine owns the line-item collection for one session and derives
// every money value from it on demand:
//
//	subtotal = Σ price × quantity
//	shipping = 0 if subtotal == 0 or subtotal > 500, else flat 25
//	tax      = subtotal × 0.08
//	total    = subtotal + shipping + tax
//
// Derived values are recomputed on every read - there is no cached field
// that can go stale between mutations. All amounts stay as raw float64;
// rounding to cents is a presentation concern (internal/money).
//
// Operations are total functions over their input domains: adding always
// succeeds, removing or updating an unknown id is a no-op, and placing an
// order on an empty cart yields a zero-total snapshot. Callers that want
// to block empty-cart checkout do so themselves (internal/checkout does).
//
// Ownership model: an Engine belongs to a single logical session. All
// mutations happen in response to discrete user actions and complete
// before the next read; there is no concurrent mutation to coordinate,
// so the engine carries no lock.
package cart
