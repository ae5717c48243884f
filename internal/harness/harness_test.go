package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextgearshop/storefront/internal/cart"
	"github.com/nextgearshop/storefront/internal/catalog"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestRun_PassingScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/weekend_order.yaml")
	require.NoError(t, err)

	result, err := Run(s, catalog.Seed())
	require.NoError(t, err)

	assert.True(t, result.Pass())
	assert.Empty(t, result.Errors)
	require.Len(t, result.Orders, 1)
	require.Len(t, result.Receipts, 1)
	assert.Equal(t, "NGS-TEST-0001", result.Orders[0].Number)
	assert.InDelta(t, 499.98, result.Orders[0].Subtotal, 1e-6)
}

func TestRun_CollectsAssertionFailures(t *testing.T) {
	s := &Scenario{
		Name: "wrong_expectations",
		Steps: []Step{
			{Action: StepAdd, Product: 6},
			{Action: StepAssert, Expect: &Expect{
				Subtotal: floatPtr(999),
				Items:    intPtr(5),
			}},
			{Action: StepClear},
		},
	}

	result, err := Run(s, catalog.Seed())
	require.NoError(t, err, "assertion failures are collected, not returned")

	assert.False(t, result.Pass())
	require.Len(t, result.Errors, 2)

	var ae *AssertionError
	require.ErrorAs(t, result.Errors[0], &ae)
	assert.Equal(t, 1, ae.StepIndex)
	assert.Equal(t, "subtotal", ae.Field)
}

func TestRun_UnknownProductCannotRun(t *testing.T) {
	s := &Scenario{
		Name:  "ghost_product",
		Steps: []Step{{Action: StepAdd, Product: 404}},
	}

	_, err := Run(s, catalog.Seed())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown product id 404")
}

func TestRun_CheckoutClearsBetweenOrders(t *testing.T) {
	s := &Scenario{
		Name:         "back_to_back",
		OrderNumbers: []string{"NGS-A", "NGS-B"},
		Steps: []Step{
			{Action: StepAdd, Product: 6},
			{Action: StepCheckout},
			{Action: StepAssert, Expect: &Expect{Items: intPtr(0), Lines: intPtr(0)}},
			{Action: StepAdd, Product: 5},
			{Action: StepCheckout},
		},
	}

	result, err := Run(s, catalog.Seed())
	require.NoError(t, err)
	require.True(t, result.Pass())

	require.Len(t, result.Orders, 2)
	assert.Equal(t, "NGS-A", result.Orders[0].Number)
	assert.Equal(t, "NGS-B", result.Orders[1].Number)
	assert.InDelta(t, 75.00, result.Orders[0].Subtotal, 1e-6)
	assert.InDelta(t, 89.99, result.Orders[1].Subtotal, 1e-6)
}

func TestRenderReceipt(t *testing.T) {
	order := cart.Order{
		Number: "NGS-R-1",
		Items: []cart.LineItem{
			{Product: catalog.Product{ID: 3, Name: "Professional DSLR Camera", Price: 1250.50}, Quantity: 1},
		},
		Subtotal: 1250.50,
		Shipping: 0,
		Tax:      100.04,
		Total:    1350.54,
	}

	r := RenderReceipt(order)

	assert.Equal(t, "NGS-R-1", r.OrderNumber)
	require.Len(t, r.Lines, 1)
	assert.Equal(t, "$1,250.50", r.Lines[0].UnitPrice)
	assert.Equal(t, "$1,250.50", r.Lines[0].LineTotal)
	assert.Equal(t, "$1,250.50", r.Subtotal)
	assert.Equal(t, "$0.00", r.Shipping)
	assert.Equal(t, "$100.04", r.Tax)
	assert.Equal(t, "$1,350.54", r.Total)
}

func TestRenderReceipt_EmptyOrderHasEmptyLines(t *testing.T) {
	r := RenderReceipt(cart.Order{Number: "NGS-R-2"})
	assert.NotNil(t, r.Lines, "lines serialize as [] not null")
	assert.Empty(t, r.Lines)
}

func TestRunWithGolden(t *testing.T) {
	scenarios := []string{
		"weekend_order",
		"free_shipping_order",
		"revised_cart",
	}

	for _, name := range scenarios {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, s, catalog.Seed()))
		})
	}
}
