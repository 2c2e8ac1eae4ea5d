package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "booking_id"
	FieldCustomerID   = "customer_id"
	FieldRoomNumber   = "room_number"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTotalPrice   = "total_price"
	FieldStatus       = "status"
)

const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

type Booking struct {
	ID           string    `db:"booking_id"`
	CustomerID   string    `db:"customer_id"`
	RoomNumber   string    `db:"room_number"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	TotalPrice   float64   `db:"total_price"`
	Status       string    `db:"status"`
	model.Metadata
}

// Active reports whether the booking currently holds its room unavailable.
func (b Booking) Active() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// Terminal reports whether the booking reached a final status. Terminal
// bookings never transition again.
func (b Booking) Terminal() bool {
	return b.Status == StatusCheckedOut || b.Status == StatusCancelled
}

// Nights counts whole calendar days between check-in and check-out. The
// check-out day itself is not billed.
func (b Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
