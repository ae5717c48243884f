package cart

import "log/slog"

// Order is an immutable snapshot of a completed checkout. It is independent
// of subsequent cart state: the item slice is captured at placement time and
// never shared with the engine.
type Order struct {
	Items    []LineItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Shipping float64    `json:"shipping"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
	Number   string     `json:"order_number"`
}

// PlaceOrder captures the current cart as an order snapshot, clears the
// cart, and returns the snapshot.
//
// The order number is freshly generated on every call and unique within the
// session. Placing an order on an empty cart is permitted and yields a
// snapshot with zero items and zero totals - blocking that is a caller-level
// guard, not an engine error.
func (e *Engine) PlaceOrder() Order {
	order := Order{
		Items:    e.Items(),
		Subtotal: e.Subtotal(),
		Shipping: e.ShippingCost(),
		Tax:      e.Tax(),
		Total:    e.Total(),
		Number:   e.numbers.Generate(),
	}
	e.Clear()

	slog.Info("order placed",
		"order_number", order.Number,
		"items", len(order.Items),
		"total", order.Total,
	)
	return order
}
