package model

import "hotelier/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "review_id"
	FieldCustomerID = "customer_id"
	FieldBookingID  = "booking_id"
	FieldRating     = "rating"
	FieldComment    = "comment"
)

const (
	RatingMin = 1
	RatingMax = 5
)

type Review struct {
	ID         string `db:"review_id"`
	CustomerID string `db:"customer_id"`
	BookingID  string `db:"booking_id"`
	Rating     int    `db:"rating"`
	Comment    string `db:"comment"`
	model.Metadata
}
