package checkout

// OrderDraft is the order being filled in. Text fields hold the raw input;
// trimming happens only during validation. PickupPoint is meaningful only
// when ShippingMethod is Pickup and is otherwise ignored.
type OrderDraft struct {
	Name           string
	Email          string
	Address        string
	ShippingMethod ShippingMethod
	PickupPoint    string
	PaymentMethod  PaymentMethod
}

// WithField returns a copy of the draft with one field replaced. Enum fields
// must parse; text fields are stored as given.
func (d OrderDraft) WithField(field Field, value string) (OrderDraft, error) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldAddress:
		d.Address = value
	case FieldShippingMethod:
		method, err := ParseShippingMethod(value)
		if err != nil {
			return OrderDraft{}, err
		}
		d.ShippingMethod = method
	case FieldPickupPoint:
		d.PickupPoint = value
	case FieldPaymentMethod:
		method, err := ParsePaymentMethod(value)
		if err != nil {
			return OrderDraft{}, err
		}
		d.PaymentMethod = method
	default:
		_, err := ParseField(string(field))
		return OrderDraft{}, err
	}
	return d, nil
}

// Value returns the wire representation of one field.
func (d OrderDraft) Value(field Field) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldAddress:
		return d.Address
	case FieldShippingMethod:
		return string(d.ShippingMethod)
	case FieldPickupPoint:
		return d.PickupPoint
	case FieldPaymentMethod:
		return string(d.PaymentMethod)
	}
	return ""
}
