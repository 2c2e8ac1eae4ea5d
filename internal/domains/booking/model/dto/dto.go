package dto

import (
	"time"

	"github.com/google/uuid"

	"hotelier/internal/domains/booking/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

const (
	RejectReasonNotFound      = "not_found"
	RejectReasonInvalidStatus = "invalid_status"
)

type CreateBookingRequest struct {
	CustomerID   string `json:"customer_id"    validate:"required"`
	RoomNumber   string `json:"room_number"    validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, totalPrice float64) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		CustomerID:   c.CustomerID,
		RoomNumber:   c.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   totalPrice,
		Status:       model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID           string  `json:"booking_id"`
	CustomerID   string  `json:"customer_id"`
	RoomNumber   string  `json:"room_number"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.RoomNumber = model.RoomNumber
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// TransitionResponse is the two-variant result of a lifecycle transition.
// Rejections (missing booking, wrong current status) are data, not errors,
// so stale clients can distinguish them from true failures.
type TransitionResponse struct {
	Applied bool             `json:"applied"`
	Reason  string           `json:"reason,omitempty"`
	Booking *BookingResponse `json:"booking,omitempty"`
}

func AppliedTransition(booking model.Booking) TransitionResponse {
	var res BookingResponse
	res.FromModel(booking)

	return TransitionResponse{Applied: true, Booking: &res}
}

func RejectedTransition(reason string) TransitionResponse {
	return TransitionResponse{Applied: false, Reason: reason}
}
