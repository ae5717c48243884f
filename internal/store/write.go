package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nextgearshop/storefront/internal/cart"
)

// Record inserts an order and its line items in a single transaction.
// Either the order row and every item row land together or none do.
//
// Uses ON CONFLICT(order_number) DO NOTHING for idempotency - recording the
// same order twice is silently ignored, items included.
//
// Record implements checkout.Recorder.
func (j *Journal) Record(ctx context.Context, order cart.Order) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record order: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_number, subtotal, shipping, tax, total, placed_at, seq)
		VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM orders))
		ON CONFLICT(order_number) DO NOTHING
	`,
		order.Number,
		order.Subtotal,
		order.Shipping,
		order.Tax,
		order.Total,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record order %s: %w", order.Number, err)
	}

	// Duplicate order number: the whole record already exists, skip items.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return tx.Commit()
	}

	for i, it := range order.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_number, position, product_id, name, price, quantity)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			order.Number,
			i,
			it.Product.ID,
			it.Product.Name,
			it.Product.Price,
			it.Quantity,
		)
		if err != nil {
			return fmt.Errorf("record order %s item %d: %w", order.Number, it.Product.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record order %s: commit: %w", order.Number, err)
	}

	return nil
}
