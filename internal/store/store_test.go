package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextgearshop/storefront/internal/cart"
	"github.com/nextgearshop/storefront/internal/catalog"
)

func openJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func sampleOrder(number string) cart.Order {
	return cart.Order{
		Number: number,
		Items: []cart.LineItem{
			{
				Product:  catalog.Product{ID: 1, Name: "Wireless Noise-Cancelling Headphones", Price: 249.99},
				Quantity: 2,
			},
			{
				Product:  catalog.Product{ID: 6, Name: "Gaming Mouse", Price: 75.00},
				Quantity: 1,
			},
		},
		Subtotal: 574.98,
		Shipping: 0,
		Tax:      45.9984,
		Total:    620.9784,
	}
}

func TestOpen_InMemory(t *testing.T) {
	j := openJournal(t)

	orders, err := j.ListOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestRecordAndReadOrder(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()

	order := sampleOrder("NGS-0001")
	require.NoError(t, j.Record(ctx, order))

	rec, err := j.ReadOrder(ctx, "NGS-0001")
	require.NoError(t, err)

	assert.Equal(t, order.Number, rec.Number)
	assert.InDelta(t, order.Subtotal, rec.Subtotal, 1e-9)
	assert.InDelta(t, order.Shipping, rec.Shipping, 1e-9)
	assert.InDelta(t, order.Tax, rec.Tax, 1e-9)
	assert.InDelta(t, order.Total, rec.Total, 1e-9)
	assert.Equal(t, int64(1), rec.Seq)

	// Line items come back in cart insertion order.
	require.Len(t, rec.Items, 2)
	assert.Equal(t, int64(1), rec.Items[0].Product.ID)
	assert.Equal(t, 2, rec.Items[0].Quantity)
	assert.Equal(t, int64(6), rec.Items[1].Product.ID)

	_, err = time.Parse(time.RFC3339, rec.PlacedAt)
	assert.NoError(t, err, "placed_at is RFC 3339")
}

func TestReadOrder_UnknownNumber(t *testing.T) {
	j := openJournal(t)

	_, err := j.ReadOrder(context.Background(), "NGS-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecord_Idempotent(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()

	order := sampleOrder("NGS-0001")
	require.NoError(t, j.Record(ctx, order))
	require.NoError(t, j.Record(ctx, order), "recording the same number again is a no-op")

	orders, err := j.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 2, "items are not duplicated either")
}

func TestListOrders_PlacementOrder(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()

	require.NoError(t, j.Record(ctx, sampleOrder("NGS-0001")))
	second := cart.Order{
		Number: "NGS-0002",
		Items: []cart.LineItem{
			{Product: catalog.Product{ID: 5, Name: "Bluetooth Portable Speaker", Price: 89.99}, Quantity: 1},
		},
		Subtotal: 89.99,
		Shipping: 25,
		Tax:      7.1992,
		Total:    122.1892,
	}
	require.NoError(t, j.Record(ctx, second))

	orders, err := j.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "NGS-0001", orders[0].Number)
	assert.Equal(t, int64(1), orders[0].Seq)
	assert.Equal(t, "NGS-0002", orders[1].Number)
	assert.Equal(t, int64(2), orders[1].Seq)
}

func TestOpen_FileIsIdempotent(t *testing.T) {
	path := t.TempDir() + "/orders.db"

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Record(context.Background(), sampleOrder("NGS-0001")))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	rec, err := second.ReadOrder(context.Background(), "NGS-0001")
	require.NoError(t, err)
	assert.Equal(t, "NGS-0001", rec.Number)
}
