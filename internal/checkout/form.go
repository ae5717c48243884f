// Package checkout implements the multi-step checkout flow: shipping and
// payment forms with per-field validation, step gating, and the order
// placement guard around the cart engine.
//
// Validation is client-side only and never touches the cart or filter
// engines; a failing field blocks step advancement, nothing more. No real
// payment processing happens anywhere in this package.
package checkout

import "regexp"

// ShippingForm holds the shipping address fields.
type ShippingForm struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

// ShippingErrors carries one optional error message per shipping field.
// An empty string means the field is valid. Explicit named slots, not a
// dynamically keyed map, so a typo in a field name is a compile error.
type ShippingErrors struct {
	FullName string `json:"full_name,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	ZipCode  string `json:"zip_code,omitempty"`
	Country  string `json:"country,omitempty"`
}

// OK reports whether no shipping field has an error.
func (e ShippingErrors) OK() bool {
	return e == ShippingErrors{}
}

// PaymentForm holds the card fields. The card is validated for shape only;
// no gateway is ever contacted.
type PaymentForm struct {
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"` // MM/YY
	CVC        string `json:"cvc"`
}

// PaymentErrors carries one optional error message per payment field.
type PaymentErrors struct {
	CardNumber string `json:"card_number,omitempty"`
	CardName   string `json:"card_name,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
	CVC        string `json:"cvc,omitempty"`
}

// OK reports whether no payment field has an error.
func (e PaymentErrors) OK() bool {
	return e == PaymentErrors{}
}

// ShippingField addresses one field of the shipping form.
type ShippingField int

const (
	FieldFullName ShippingField = iota
	FieldAddress
	FieldCity
	FieldZipCode
	FieldCountry
)

// PaymentField addresses one field of the payment form.
type PaymentField int

const (
	FieldCardNumber PaymentField = iota
	FieldCardName
	FieldExpiryDate
	FieldCVC
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvcPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// Validate checks every shipping field and returns the per-field errors.
// All fields are required.
func (f ShippingForm) Validate() ShippingErrors {
	var errs ShippingErrors
	if f.FullName == "" {
		errs.FullName = "Full Name is required."
	}
	if f.Address == "" {
		errs.Address = "Address is required."
	}
	if f.City == "" {
		errs.City = "City is required."
	}
	if f.ZipCode == "" {
		errs.ZipCode = "Zip Code is required."
	}
	if f.Country == "" {
		errs.Country = "Country is required."
	}
	return errs
}

// Validate checks every payment field and returns the per-field errors.
func (f PaymentForm) Validate() PaymentErrors {
	var errs PaymentErrors
	if !cardNumberPattern.MatchString(f.CardNumber) {
		errs.CardNumber = "Valid 16-digit Card Number is required."
	}
	if f.CardName == "" {
		errs.CardName = "Name on Card is required."
	}
	if !expiryPattern.MatchString(f.ExpiryDate) {
		errs.ExpiryDate = "Valid Expiry Date (MM/YY) is required."
	}
	if !cvcPattern.MatchString(f.CVC) {
		errs.CVC = "Valid CVC (3 or 4 digits) is required."
	}
	return errs
}
