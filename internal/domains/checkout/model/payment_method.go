package model

import (
	"hotelops/shared/model"
)

const (
	PaymentMethodTableName  = "payment_methods"
	PaymentMethodEntityName = "payment_method"

	FieldCode   = "code"
	FieldActive = "active"
)

// PaymentMethod is a settlement channel offered at the front desk. Rows
// are seeded by migration and toggled rather than deleted.
type PaymentMethod struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Code   string `db:"code"`
	Active bool   `db:"active"`
	model.Metadata
}
