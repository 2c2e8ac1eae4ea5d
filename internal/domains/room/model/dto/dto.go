package dto

import (
	"mime/multipart"

	"github.com/lib/pq"

	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber    string                `json:"room_number"     validate:"required,max=10"`
	RoomType      string                `json:"room_type"       validate:"required,max=50"`
	PricePerNight float64               `json:"price_per_night" validate:"required,gt=0"`
	Capacity      int                   `json:"capacity"        validate:"required,min=1"`
	Amenities     []string              `json:"amenities"       validate:"omitempty,dive,max=50"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	return model.Room{
		RoomNumber:    c.RoomNumber,
		RoomType:      c.RoomType,
		PricePerNight: c.PricePerNight,
		Capacity:      c.Capacity,
		IsAvailable:   true,
		Amenities:     pq.StringArray(c.Amenities),
		Image:         imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomType      string                `db:"room_type"       json:"room_type"       validate:"omitempty,max=50"`
	PricePerNight *float64              `db:"price_per_night" json:"price_per_night" validate:"omitempty,gt=0"`
	Capacity      *int                  `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	Amenities     []string              `json:"amenities"     validate:"omitempty,dive,max=50"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
}

func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.RoomType == "" && u.PricePerNight == nil && u.Capacity == nil &&
		len(u.Amenities) == 0 && u.Image == nil
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

type RoomResponse struct {
	RoomNumber    string   `json:"room_number"`
	RoomType      string   `json:"room_type"`
	PricePerNight float64  `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	IsAvailable   bool     `json:"is_available"`
	Amenities     []string `json:"amenities"`
	Image         string   `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.PricePerNight = model.PricePerNight
	r.Capacity = model.Capacity
	r.IsAvailable = model.IsAvailable
	r.Amenities = model.Amenities
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
