package model

import (
	"github.com/lib/pq"

	"hotelier/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldRoomNumber  = "room_number"
	FieldRoomType    = "room_type"
	FieldPrice       = "price_per_night"
	FieldCapacity    = "capacity"
	FieldIsAvailable = "is_available"
	FieldAmenities   = "amenities"
	FieldImage       = "image"
)

const (
	TypeSingle = "Single"
	TypeDouble = "Double"
	TypeSuite  = "Suite"
)

type Room struct {
	RoomNumber    string         `db:"room_number"`
	RoomType      string         `db:"room_type"`
	PricePerNight float64        `db:"price_per_night"`
	Capacity      int            `db:"capacity"`
	IsAvailable   bool           `db:"is_available"`
	Amenities     pq.StringArray `db:"amenities"`
	Image         string         `db:"image"`
	model.Metadata
}
