package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelier/internal/domains/booking/model"
)

func TestBooking_Active(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{model.StatusConfirmed, true},
		{model.StatusCheckedIn, true},
		{model.StatusCheckedOut, false},
		{model.StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			booking := model.Booking{Status: tt.status}

			assert.Equal(t, tt.want, booking.Active())
		})
	}
}

func TestBooking_Terminal(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{model.StatusConfirmed, false},
		{model.StatusCheckedIn, false},
		{model.StatusCheckedOut, true},
		{model.StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			booking := model.Booking{Status: tt.status}

			assert.Equal(t, tt.want, booking.Terminal())
		})
	}
}

func TestBooking_Nights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"one night", "2026-01-10", "2026-01-11", 1},
		{"three nights", "2026-01-10", "2026-01-13", 3},
		{"across month boundary", "2026-01-30", "2026-02-02", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn, err := time.Parse(time.DateOnly, tt.checkIn)
			assert.NoError(t, err)
			checkOut, err := time.Parse(time.DateOnly, tt.checkOut)
			assert.NoError(t, err)

			booking := model.Booking{CheckInDate: checkIn, CheckOutDate: checkOut}

			assert.Equal(t, tt.want, booking.Nights())
		})
	}
}
