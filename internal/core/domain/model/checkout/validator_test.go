package checkout_test

import (
	"testing"

	"checkout/internal/core/domain/model/checkout"

	"github.com/stretchr/testify/assert"
)

func validDraft() checkout.OrderDraft {
	return checkout.OrderDraft{
		Name:           "Kiss Anna",
		Email:          "anna@example.hu",
		Address:        "Budapest, Váci út 1-3.",
		ShippingMethod: checkout.HomeDelivery,
		PaymentMethod:  checkout.Card,
	}
}

func TestValidate_Billing(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(d *checkout.OrderDraft)
		expected checkout.FieldErrors
	}{
		{
			name:     "valid",
			mutate:   func(d *checkout.OrderDraft) {},
			expected: checkout.FieldErrors{},
		},
		{
			name:     "blank name",
			mutate:   func(d *checkout.OrderDraft) { d.Name = "" },
			expected: checkout.FieldErrors{Name: checkout.MessageRequired},
		},
		{
			name:     "whitespace name",
			mutate:   func(d *checkout.OrderDraft) { d.Name = " \t " },
			expected: checkout.FieldErrors{Name: checkout.MessageRequired},
		},
		{
			name:     "missing email",
			mutate:   func(d *checkout.OrderDraft) { d.Email = "   " },
			expected: checkout.FieldErrors{Email: checkout.MessageRequired},
		},
		{
			name:     "email without at sign",
			mutate:   func(d *checkout.OrderDraft) { d.Email = "not-an-email" },
			expected: checkout.FieldErrors{Email: checkout.MessageInvalidFormat},
		},
		{
			name:     "email without tld",
			mutate:   func(d *checkout.OrderDraft) { d.Email = "anna@example" },
			expected: checkout.FieldErrors{Email: checkout.MessageInvalidFormat},
		},
		{
			name:     "email with one letter tld",
			mutate:   func(d *checkout.OrderDraft) { d.Email = "anna@example.h" },
			expected: checkout.FieldErrors{Email: checkout.MessageInvalidFormat},
		},
		{
			name:     "email with inner space",
			mutate:   func(d *checkout.OrderDraft) { d.Email = "an na@example.hu" },
			expected: checkout.FieldErrors{Email: checkout.MessageInvalidFormat},
		},
		{
			name:     "email with subdomain and padding",
			mutate:   func(d *checkout.OrderDraft) { d.Email = "  anna@mail.example.co.uk " },
			expected: checkout.FieldErrors{},
		},
		{
			name:     "blank address",
			mutate:   func(d *checkout.OrderDraft) { d.Address = "" },
			expected: checkout.FieldErrors{Address: checkout.MessageRequired},
		},
		{
			name: "everything missing",
			mutate: func(d *checkout.OrderDraft) {
				*d = checkout.OrderDraft{}
			},
			expected: checkout.FieldErrors{
				Name:    checkout.MessageRequired,
				Email:   checkout.MessageRequired,
				Address: checkout.MessageRequired,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)

			assert.Equal(t, tc.expected, checkout.Validate(draft, checkout.Billing))
		})
	}
}

func TestValidate_Shipping(t *testing.T) {
	testCases := []struct {
		name     string
		draft    checkout.OrderDraft
		expected checkout.FieldErrors
	}{
		{
			name:     "unset method",
			draft:    checkout.OrderDraft{},
			expected: checkout.FieldErrors{ShippingMethod: checkout.MessageRequired},
		},
		{
			name:     "home delivery ignores pickup point",
			draft:    checkout.OrderDraft{ShippingMethod: checkout.HomeDelivery},
			expected: checkout.FieldErrors{},
		},
		{
			name:     "pickup without point",
			draft:    checkout.OrderDraft{ShippingMethod: checkout.Pickup, PickupPoint: "  "},
			expected: checkout.FieldErrors{PickupPoint: checkout.MessageRequired},
		},
		{
			name:     "pickup with point",
			draft:    checkout.OrderDraft{ShippingMethod: checkout.Pickup, PickupPoint: "Szeged - Árkád"},
			expected: checkout.FieldErrors{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, checkout.Validate(tc.draft, checkout.Shipping))
		})
	}
}

func TestValidate_Payment(t *testing.T) {
	assert.Equal(t,
		checkout.FieldErrors{PaymentMethod: checkout.MessageRequired},
		checkout.Validate(checkout.OrderDraft{}, checkout.Payment),
	)
	assert.True(t, checkout.Validate(checkout.OrderDraft{PaymentMethod: checkout.CashOnDelivery}, checkout.Payment).IsEmpty())
}

func TestValidate_IsTotal(t *testing.T) {
	for _, step := range []checkout.Step{checkout.Summary, -1, 4, 42} {
		assert.True(t, checkout.Validate(checkout.OrderDraft{}, step).IsEmpty(), step.String())
	}
}

func TestValidate_OnlyChecksItsOwnStep(t *testing.T) {
	draft := checkout.OrderDraft{ShippingMethod: checkout.Pickup}

	fieldErrors := checkout.Validate(draft, checkout.Payment)

	assert.Empty(t, fieldErrors.ShippingMethod)
	assert.Empty(t, fieldErrors.PickupPoint)
	assert.Empty(t, fieldErrors.Name)
}

func TestValidateThrough(t *testing.T) {
	fieldErrors := checkout.ValidateThrough(checkout.OrderDraft{Email: "x"}, checkout.Payment)

	assert.Equal(t, checkout.FieldErrors{
		Name:           checkout.MessageRequired,
		Email:          checkout.MessageInvalidFormat,
		Address:        checkout.MessageRequired,
		ShippingMethod: checkout.MessageRequired,
		PaymentMethod:  checkout.MessageRequired,
	}, fieldErrors)

	assert.True(t, checkout.ValidateThrough(validDraft(), checkout.Summary).IsEmpty())
}
