package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nextgearshop/storefront/internal/cart"
)

// Step identifies a checkout step. Steps advance in declaration order and
// only after the current step's form validates.
type Step int

const (
	// StepShipping collects the shipping address.
	StepShipping Step = iota
	// StepPayment collects the card details.
	StepPayment
	// StepReview shows the order summary; PlaceOrder is only legal here.
	StepReview
)

// String returns the step's display name.
func (s Step) String() string {
	switch s {
	case StepShipping:
		return "Shipping"
	case StepPayment:
		return "Payment"
	case StepReview:
		return "Review"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Navigator is the redirect capability invoked after checkout completes.
// The confirmation route carries the generated order number for display.
type Navigator interface {
	GoToConfirmation(orderNumber string)
	GoHome()
}

// NopNavigator discards all navigation.
type NopNavigator struct{}

func (NopNavigator) GoToConfirmation(string) {}
func (NopNavigator) GoHome()                 {}

// Recorder persists a placed order for later confirmation lookup.
// Implemented by store.Journal.
type Recorder interface {
	Record(ctx context.Context, order cart.Order) error
}

// Flow drives one checkout attempt over a cart engine.
type Flow struct {
	cart     *cart.Engine
	notify   cart.Notifier
	navigate Navigator
	recorder Recorder

	step     Step
	Shipping ShippingForm
	Payment  PaymentForm

	shippingErrs ShippingErrors
	paymentErrs  PaymentErrors
}

// Option configures a Flow.
type Option func(*Flow)

// WithNotifier sets the notification sink. Default: NopNotifier.
func WithNotifier(n cart.Notifier) Option {
	return func(f *Flow) { f.notify = n }
}

// WithNavigator sets the post-checkout redirect target. Default: NopNavigator.
func WithNavigator(n Navigator) Option {
	return func(f *Flow) { f.navigate = n }
}

// WithRecorder sets the order journal. Default: none (orders are not recorded).
func WithRecorder(r Recorder) Option {
	return func(f *Flow) { f.recorder = r }
}

// NewFlow creates a checkout flow at the shipping step.
func NewFlow(e *cart.Engine, opts ...Option) *Flow {
	f := &Flow{
		cart:     e,
		notify:   cart.NopNotifier{},
		navigate: NopNavigator{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Step returns the current step.
func (f *Flow) Step() Step {
	return f.step
}

// ShippingErrors returns the shipping field errors from the last Next call.
func (f *Flow) ShippingErrors() ShippingErrors {
	return f.shippingErrs
}

// PaymentErrors returns the payment field errors from the last Next call.
func (f *Flow) PaymentErrors() PaymentErrors {
	return f.paymentErrs
}

// SetShippingField writes a shipping form field and clears any recorded
// error for that field, mirroring error-clearing on edit in form UIs.
func (f *Flow) SetShippingField(field ShippingField, value string) {
	switch field {
	case FieldFullName:
		f.Shipping.FullName = value
		f.shippingErrs.FullName = ""
	case FieldAddress:
		f.Shipping.Address = value
		f.shippingErrs.Address = ""
	case FieldCity:
		f.Shipping.City = value
		f.shippingErrs.City = ""
	case FieldZipCode:
		f.Shipping.ZipCode = value
		f.shippingErrs.ZipCode = ""
	case FieldCountry:
		f.Shipping.Country = value
		f.shippingErrs.Country = ""
	}
}

// SetPaymentField writes a payment form field and clears any recorded
// error for that field.
func (f *Flow) SetPaymentField(field PaymentField, value string) {
	switch field {
	case FieldCardNumber:
		f.Payment.CardNumber = value
		f.paymentErrs.CardNumber = ""
	case FieldCardName:
		f.Payment.CardName = value
		f.paymentErrs.CardName = ""
	case FieldExpiryDate:
		f.Payment.ExpiryDate = value
		f.paymentErrs.ExpiryDate = ""
	case FieldCVC:
		f.Payment.CVC = value
		f.paymentErrs.CVC = ""
	}
}

// Next validates the current step's form and advances on success.
// On failure the per-field errors are recorded, the step does not change,
// and the user is notified. Returns true if the step advanced.
func (f *Flow) Next() bool {
	switch f.step {
	case StepShipping:
		f.shippingErrs = f.Shipping.Validate()
		if !f.shippingErrs.OK() {
			f.notify.Notify("Please correct the errors before proceeding.")
			return false
		}
		f.step = StepPayment
		return true

	case StepPayment:
		f.paymentErrs = f.Payment.Validate()
		if !f.paymentErrs.OK() {
			f.notify.Notify("Please correct the errors before proceeding.")
			return false
		}
		f.step = StepReview
		return true

	default:
		return false
	}
}

// Back moves to the previous step. No-op at the shipping step.
func (f *Flow) Back() {
	if f.step > StepShipping {
		f.step--
	}
}

// ErrEmptyCart is returned by PlaceOrder when the cart holds no items.
// This is the caller-level guard the engine itself deliberately omits.
var ErrEmptyCart = fmt.Errorf("cannot place an order with an empty cart")

// PlaceOrder completes checkout: it snapshots the cart into an order,
// records it if a journal is attached, and redirects to the confirmation
// view with the order number.
//
// An empty cart redirects home with a notification and returns ErrEmptyCart
// without touching the engine. Must be called from the review step.
func (f *Flow) PlaceOrder(ctx context.Context) (cart.Order, error) {
	if f.step != StepReview {
		return cart.Order{}, fmt.Errorf("place order from %s step: complete the previous steps first", f.step)
	}
	if f.cart.Len() == 0 {
		f.notify.Notify("Your cart is empty.")
		f.navigate.GoHome()
		return cart.Order{}, ErrEmptyCart
	}

	order := f.cart.PlaceOrder()

	if f.recorder != nil {
		if err := f.recorder.Record(ctx, order); err != nil {
			// The order itself succeeded; journal failure must not
			// resurrect the cart or block the confirmation view.
			slog.Error("order journal write failed", "order_number", order.Number, "error", err)
		}
	}

	f.notify.Notify("Order " + order.Number + " placed successfully!")
	f.navigate.GoToConfirmation(order.Number)
	return order, nil
}
