package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nextgearshop/storefront/internal/cart"
	"github.com/nextgearshop/storefront/internal/catalog"
)

// ErrNotFound is returned when no order with the requested number exists.
var ErrNotFound = errors.New("order not found")

// RecordedOrder is a journal entry: the order snapshot plus journal metadata.
type RecordedOrder struct {
	cart.Order
	PlacedAt string `json:"placed_at"` // RFC 3339 UTC
	Seq      int64  `json:"seq"`       // placement counter within the journal
}

// ReadOrder returns the journal entry for an order number.
// Returns ErrNotFound if the number is unknown.
func (j *Journal) ReadOrder(ctx context.Context, orderNumber string) (RecordedOrder, error) {
	var rec RecordedOrder
	err := j.db.QueryRowContext(ctx, `
		SELECT order_number, subtotal, shipping, tax, total, placed_at, seq
		FROM orders
		WHERE order_number = ?
	`, orderNumber).Scan(
		&rec.Number, &rec.Subtotal, &rec.Shipping, &rec.Tax, &rec.Total, &rec.PlacedAt, &rec.Seq,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return RecordedOrder{}, fmt.Errorf("order %s: %w", orderNumber, ErrNotFound)
	}
	if err != nil {
		return RecordedOrder{}, fmt.Errorf("read order %s: %w", orderNumber, err)
	}

	items, err := j.readItems(ctx, orderNumber)
	if err != nil {
		return RecordedOrder{}, err
	}
	rec.Items = items

	return rec, nil
}

// ListOrders returns every journal entry in placement order.
// Returns an empty slice (not nil) for an empty journal.
func (j *Journal) ListOrders(ctx context.Context) ([]RecordedOrder, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT order_number, subtotal, shipping, tax, total, placed_at, seq
		FROM orders
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []RecordedOrder{}
	for rows.Next() {
		var rec RecordedOrder
		if err := rows.Scan(&rec.Number, &rec.Subtotal, &rec.Shipping, &rec.Tax, &rec.Total, &rec.PlacedAt, &rec.Seq); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	for i := range orders {
		items, err := j.readItems(ctx, orders[i].Number)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// readItems returns an order's line items in cart insertion order.
func (j *Journal) readItems(ctx context.Context, orderNumber string) ([]cart.LineItem, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT product_id, name, price, quantity
		FROM order_items
		WHERE order_number = ?
		ORDER BY position ASC
	`, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("query items for %s: %w", orderNumber, err)
	}
	defer rows.Close()

	items := []cart.LineItem{}
	for rows.Next() {
		var it cart.LineItem
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan item for %s: %w", orderNumber, err)
		}
		it.Product = p
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items for %s: %w", orderNumber, err)
	}

	return items, nil
}
