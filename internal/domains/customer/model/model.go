package model

import "hotelier/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID    = "customer_id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
)

type Customer struct {
	ID    string `db:"customer_id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
	model.Metadata
}
