// Package harness executes scripted shopping scenarios against the cart
// engine and renders the resulting receipts for golden comparison.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: weekend_order
//	description: "Two headphones ship flat-rate"
//	order_numbers: [NGS-TEST-0001]
//	steps:
//	  - action: add
//	    product: 1
//	  - action: update
//	    product: 1
//	    quantity: 2
//	  - action: assert
//	    expect: { subtotal: 499.98, shipping: 25, items: 2 }
//	  - action: checkout
//
// # Deterministic Execution
//
// Scenarios run with fixed order numbers (cart.FixedGenerator) so receipts
// are byte-identical across runs, which is what golden file comparison
// needs. Money values on receipts are formatted (rounded) display strings;
// assert steps compare the raw derived floats with a small epsilon.
package harness

import (
	"fmt"
	"math"

	"github.com/nextgearshop/storefront/internal/cart"
	"github.com/nextgearshop/storefront/internal/catalog"
	"github.com/nextgearshop/storefront/internal/money"
)

// epsilon tolerates float noise in scenario expectations without hiding
// real pricing errors (a cent is 1e-2).
const epsilon = 1e-6

// Result is the outcome of running a scenario.
type Result struct {
	ScenarioName string
	Orders       []cart.Order // raw order snapshots, one per checkout step
	Receipts     []Receipt    // rendered form of the same orders
	Errors       []error      // assertion failures, in step order
}

// Pass reports whether every assertion held.
func (r *Result) Pass() bool {
	return len(r.Errors) == 0
}

// Receipt is the rendered, display-ready view of an order snapshot.
// All money fields are formatted strings: rounding happens here and only here.
type Receipt struct {
	OrderNumber string        `json:"order_number"`
	Lines       []ReceiptLine `json:"lines"`
	Subtotal    string        `json:"subtotal"`
	Shipping    string        `json:"shipping"`
	Tax         string        `json:"tax"`
	Total       string        `json:"total"`
}

// ReceiptLine is one rendered line item.
type ReceiptLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// AssertionError reports a derived value that did not match an expect block.
type AssertionError struct {
	StepIndex int
	Field     string
	Expected  string
	Actual    string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("step %d: %s: expected %s, got %s", e.StepIndex, e.Field, e.Expected, e.Actual)
}

// Run executes a scenario against a fresh cart engine over the given
// catalog. Assertion failures are collected in the result, not returned as
// errors; the error return is for scenarios that cannot run at all
// (unknown product id, exhausted order numbers).
func Run(scenario *Scenario, c *catalog.Catalog) (*Result, error) {
	engine := cart.New(
		cart.WithOrderNumbers(cart.NewFixedGenerator(scenario.OrderNumbers...)),
	)

	result := &Result{ScenarioName: scenario.Name}

	for i, step := range scenario.Steps {
		switch step.Action {
		case StepAdd:
			p, ok := c.ByID(step.Product)
			if !ok {
				return nil, fmt.Errorf("scenario %q step %d: unknown product id %d", scenario.Name, i, step.Product)
			}
			engine.Add(p)

		case StepRemove:
			engine.Remove(step.Product)

		case StepUpdate:
			engine.UpdateQuantity(step.Product, step.Quantity)

		case StepClear:
			engine.Clear()

		case StepCheckout:
			order := engine.PlaceOrder()
			result.Orders = append(result.Orders, order)
			result.Receipts = append(result.Receipts, RenderReceipt(order))

		case StepAssert:
			result.Errors = append(result.Errors, checkExpect(i, step.Expect, engine)...)
		}
	}

	return result, nil
}

// RenderReceipt formats an order snapshot for display.
func RenderReceipt(order cart.Order) Receipt {
	r := Receipt{
		OrderNumber: order.Number,
		Lines:       []ReceiptLine{},
		Subtotal:    money.Format(order.Subtotal),
		Shipping:    money.Format(order.Shipping),
		Tax:         money.Format(order.Tax),
		Total:       money.Format(order.Total),
	}
	for _, it := range order.Items {
		r.Lines = append(r.Lines, ReceiptLine{
			Name:      it.Product.Name,
			Quantity:  it.Quantity,
			UnitPrice: money.Format(it.Product.Price),
			LineTotal: money.Format(it.Product.Price * float64(it.Quantity)),
		})
	}
	return r
}

// checkExpect compares the engine's derived values against an expect block.
func checkExpect(stepIndex int, expect *Expect, e *cart.Engine) []error {
	var errs []error

	checkFloat := func(field string, want *float64, got float64) {
		if want != nil && math.Abs(*want-got) > epsilon {
			errs = append(errs, &AssertionError{
				StepIndex: stepIndex,
				Field:     field,
				Expected:  fmt.Sprintf("%v", *want),
				Actual:    fmt.Sprintf("%v", got),
			})
		}
	}
	checkInt := func(field string, want *int, got int) {
		if want != nil && *want != got {
			errs = append(errs, &AssertionError{
				StepIndex: stepIndex,
				Field:     field,
				Expected:  fmt.Sprintf("%d", *want),
				Actual:    fmt.Sprintf("%d", got),
			})
		}
	}

	checkFloat("subtotal", expect.Subtotal, e.Subtotal())
	checkFloat("shipping", expect.Shipping, e.ShippingCost())
	checkFloat("tax", expect.Tax, e.Tax())
	checkFloat("total", expect.Total, e.Total())
	checkInt("items", expect.Items, e.TotalItems())
	checkInt("lines", expect.Lines, e.Len())

	return errs
}
