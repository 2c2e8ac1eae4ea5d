package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	cacheMocks "hotelier/shared/cache/mocks"

	"hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	customerMocks "hotelier/internal/domains/customer/mocks"
	reviewMocks "hotelier/internal/domains/review/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/stats/service"
)

func newStatsFixture(t *testing.T) (
	service.Stats,
	*customerMocks.MockCustomer,
	*roomMocks.MockRoom,
	*bookingMocks.MockBooking,
	*reviewMocks.MockReview,
	*cacheMocks.MockRedisCache,
) {
	ctrl := gomock.NewController(t)

	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockReviewRepo := reviewMocks.NewMockReview(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockCustomerRepo, mockRoomRepo, mockBookingRepo, mockReviewRepo, cfg, mockCache, mockOtel)

	return svc, mockCustomerRepo, mockRoomRepo, mockBookingRepo, mockReviewRepo, mockCache
}

func TestStatsService_Summary(t *testing.T) {
	svc, mockCustomerRepo, mockRoomRepo, mockBookingRepo, mockReviewRepo, mockCache := newStatsFixture(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockCustomerRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)

	// Total rooms, then available rooms.
	mockRoomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil)
	mockRoomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)

	// Total bookings, then active bookings.
	mockBookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(20, nil)
	mockBookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)

	mockReviewRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockReviewRepo.EXPECT().AverageRating(gomock.Any()).Return(4.5, nil)
	mockBookingRepo.EXPECT().TotalRevenue(gomock.Any()).Return(5400.0, nil)

	result, err := svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12, result.TotalCustomers)
	assert.Equal(t, 5, result.TotalRooms)
	assert.Equal(t, 3, result.AvailableRooms)
	assert.Equal(t, 20, result.TotalBookings)
	assert.Equal(t, 2, result.ActiveBookings)
	assert.Equal(t, 2, result.TotalReviews)
	assert.Equal(t, 4.5, result.AverageRating)
	assert.Equal(t, 5400.0, result.TotalRevenue)
	assert.Equal(t, 40.0, result.OccupancyRate)
}

func TestStatsService_Summary_CacheHit(t *testing.T) {
	svc, _, _, _, _, mockCache := newStatsFixture(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Summary(context.Background())

	assert.NoError(t, err)
}

func TestStatsService_Summary_CountError(t *testing.T) {
	svc, mockCustomerRepo, _, _, _, mockCache := newStatsFixture(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockCustomerRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

	_, err := svc.Summary(context.Background())

	assert.Error(t, err)
}

func TestStatsService_AverageRating(t *testing.T) {
	tests := []struct {
		name    string
		avg     float64
		avgErr  error
		want    float64
		wantErr bool
	}{
		{
			name: "no reviews yields zero",
			avg:  0,
			want: 0,
		},
		{
			name: "five and four average to four point five",
			avg:  4.5,
			want: 4.5,
		},
		{
			name: "repeating decimal is rounded to 2 places",
			avg:  4.0 / 3.0,
			want: 1.33,
		},
		{
			name:    "repository error",
			avgErr:  errors.New("database error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _, mockReviewRepo, _ := newStatsFixture(t)

			mockReviewRepo.EXPECT().AverageRating(gomock.Any()).Return(tt.avg, tt.avgErr)

			result, err := svc.AverageRating(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}
