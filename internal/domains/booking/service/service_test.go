package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	kafkaMocks "hotelier/infras/kafka/mocks"
	"hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	customerMocks "hotelier/internal/domains/customer/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	roomModel "hotelier/internal/domains/room/model"
)

func newBookingFixture(t *testing.T) (
	service.Booking,
	*bookingMocks.MockBooking,
	*customerMocks.MockCustomer,
	*roomMocks.MockRoom,
	*cacheMocks.MockRedisCache,
	*kafkaMocks.MockClient,
) {
	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingEvents = "booking-events"

	svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockKafka)

	return svc, mockRepo, mockCustomerRepo, mockRoomRepo, mockCache, mockKafka
}

func allowAsyncSideEffects(mockCache *cacheMocks.MockRedisCache, mockKafka *kafkaMocks.MockClient) {
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		RoomNumber:    "101",
		RoomType:      roomModel.TypeSingle,
		PricePerNight: 100,
		Capacity:      1,
		IsAvailable:   true,
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func(repo *bookingMocks.MockBooking, customers *customerMocks.MockCustomer, rooms *roomMocks.MockRoom)
		wantErr    bool
		wantCode   int
		wantTotal  float64
		wantStatus string
	}{
		{
			name: "three nights priced per whole day",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomNumber:   "101",
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(repo *bookingMocks.MockBooking, customers *customerMocks.MockCustomer, rooms *roomMocks.MockRoom) {
				customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
				repo.EXPECT().InsertWithRoomHold(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr:    false,
			wantTotal:  300,
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "one night stay",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomNumber:   "101",
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-02",
			},
			setupMock: func(repo *bookingMocks.MockBooking, customers *customerMocks.MockCustomer, rooms *roomMocks.MockRoom) {
				customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
				repo.EXPECT().InsertWithRoomHold(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr:    false,
			wantTotal:  100,
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "unknown customer",
			req: dto.CreateBookingRequest{
				CustomerID:   "ghost",
				RoomNumber:   "101",
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(_ *bookingMocks.MockBooking, customers *customerMocks.MockCustomer, _ *roomMocks.MockRoom) {
				customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown room",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomNumber:   "999",
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(_ *bookingMocks.MockBooking, customers *customerMocks.MockCustomer, rooms *roomMocks.MockRoom) {
				customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room already occupied",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomNumber:   "101",
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(_ *bookingMocks.MockBooking, customers *customerMocks.MockCustomer, rooms *roomMocks.MockRoom) {
				customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

				occupied := availableRoom()
				occupied.IsAvailable = false
				rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(occupied, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "malformed check-in date",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomNumber:   "101",
				CheckInDate:  "01-03-2026",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(_ *bookingMocks.MockBooking, customers *customerMocks.MockCustomer, rooms *roomMocks.MockRoom) {
				customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "check-out equal to check-in",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomNumber:   "101",
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-01",
			},
			setupMock: func(_ *bookingMocks.MockBooking, customers *customerMocks.MockCustomer, rooms *roomMocks.MockRoom) {
				customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "check-out before check-in",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomNumber:   "101",
				CheckInDate:  "2026-03-04",
				CheckOutDate: "2026-03-01",
			},
			setupMock: func(_ *bookingMocks.MockBooking, customers *customerMocks.MockCustomer, rooms *roomMocks.MockRoom) {
				customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomNumber:   "101",
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(repo *bookingMocks.MockBooking, customers *customerMocks.MockCustomer, rooms *roomMocks.MockRoom) {
				customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
				repo.EXPECT().InsertWithRoomHold(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCustomerRepo, mockRoomRepo, mockCache, mockKafka := newBookingFixture(t)
			allowAsyncSideEffects(mockCache, mockKafka)
			tt.setupMock(mockRepo, mockCustomerRepo, mockRoomRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.IsCode(err, tt.wantCode))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.TotalPrice)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.req.CheckInDate, result.CheckInDate)
			assert.Equal(t, tt.req.CheckOutDate, result.CheckOutDate)
		})
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	confirmed := model.Booking{
		ID:         "booking-1",
		CustomerID: "customer-1",
		RoomNumber: "101",
		Status:     model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	tests := []struct {
		name        string
		setupMock   func(repo *bookingMocks.MockBooking)
		wantApplied bool
		wantReason  string
	}{
		{
			name: "confirmed booking checks in",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil).Times(2)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantApplied: true,
		},
		{
			name: "missing booking is rejected",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantApplied: false,
			wantReason:  dto.RejectReasonNotFound,
		},
		{
			name: "already checked in is rejected",
			setupMock: func(repo *bookingMocks.MockBooking) {
				checkedIn := confirmed
				checkedIn.Status = model.StatusCheckedIn
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn, nil).Times(2)
			},
			wantApplied: false,
			wantReason:  dto.RejectReasonInvalidStatus,
		},
		{
			name: "cancelled booking is rejected",
			setupMock: func(repo *bookingMocks.MockBooking) {
				cancelled := confirmed
				cancelled.Status = model.StatusCancelled
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil).Times(2)
			},
			wantApplied: false,
			wantReason:  dto.RejectReasonInvalidStatus,
		},
		{
			name: "cancel landing before the locked re-read wins",
			setupMock: func(repo *bookingMocks.MockBooking) {
				cancelled := confirmed
				cancelled.Status = model.StatusCancelled

				// First read sees confirmed; the re-read under the room
				// lock sees the cancel that slipped in, so no update runs.
				gomock.InOrder(
					repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil),
					repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil),
				)
			},
			wantApplied: false,
			wantReason:  dto.RejectReasonInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _, mockCache, mockKafka := newBookingFixture(t)
			allowAsyncSideEffects(mockCache, mockKafka)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.CheckIn(ctx, "booking-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantApplied, result.Applied)
			assert.Equal(t, tt.wantReason, result.Reason)

			if tt.wantApplied {
				assert.NotNil(t, result.Booking)
				assert.Equal(t, model.StatusCheckedIn, result.Booking.Status)
			}
		})
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	checkedIn := model.Booking{
		ID:         "booking-1",
		CustomerID: "customer-1",
		RoomNumber: "101",
		Status:     model.StatusCheckedIn,
	}

	tests := []struct {
		name        string
		setupMock   func(repo *bookingMocks.MockBooking)
		wantApplied bool
		wantReason  string
	}{
		{
			name: "checked in booking checks out and frees the room",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn, nil).Times(2)
				repo.EXPECT().UpdateStatusWithRoomRelease(gomock.Any(), gomock.Any(), model.StatusCheckedOut, gomock.Any()).Return(nil)
			},
			wantApplied: true,
		},
		{
			name: "confirmed booking cannot check out",
			setupMock: func(repo *bookingMocks.MockBooking) {
				confirmed := checkedIn
				confirmed.Status = model.StatusConfirmed
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil).Times(2)
			},
			wantApplied: false,
			wantReason:  dto.RejectReasonInvalidStatus,
		},
		{
			name: "checked out booking stays checked out",
			setupMock: func(repo *bookingMocks.MockBooking) {
				checkedOut := checkedIn
				checkedOut.Status = model.StatusCheckedOut
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedOut, nil).Times(2)
			},
			wantApplied: false,
			wantReason:  dto.RejectReasonInvalidStatus,
		},
		{
			name: "missing booking is rejected",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantApplied: false,
			wantReason:  dto.RejectReasonNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _, mockCache, mockKafka := newBookingFixture(t)
			allowAsyncSideEffects(mockCache, mockKafka)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.CheckOut(ctx, "booking-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantApplied, result.Applied)
			assert.Equal(t, tt.wantReason, result.Reason)

			if tt.wantApplied {
				assert.NotNil(t, result.Booking)
				assert.Equal(t, model.StatusCheckedOut, result.Booking.Status)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	base := model.Booking{
		ID:         "booking-1",
		CustomerID: "customer-1",
		RoomNumber: "101",
	}

	tests := []struct {
		name        string
		status      string
		wantApplied bool
		wantReason  string
	}{
		{
			name:        "confirmed booking cancels",
			status:      model.StatusConfirmed,
			wantApplied: true,
		},
		{
			name:        "checked in booking cancels",
			status:      model.StatusCheckedIn,
			wantApplied: true,
		},
		{
			name:        "cancelling twice is rejected",
			status:      model.StatusCancelled,
			wantApplied: false,
			wantReason:  dto.RejectReasonInvalidStatus,
		},
		{
			name:        "checked out booking cannot cancel",
			status:      model.StatusCheckedOut,
			wantApplied: false,
			wantReason:  dto.RejectReasonInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _, mockCache, mockKafka := newBookingFixture(t)
			allowAsyncSideEffects(mockCache, mockKafka)

			booking := base
			booking.Status = tt.status
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil).Times(2)

			if tt.wantApplied {
				mockRepo.EXPECT().UpdateStatusWithRoomRelease(gomock.Any(), gomock.Any(), model.StatusCancelled, gomock.Any()).Return(nil)
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Cancel(ctx, "booking-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantApplied, result.Applied)
			assert.Equal(t, tt.wantReason, result.Reason)

			if tt.wantApplied {
				assert.Equal(t, model.StatusCancelled, result.Booking.Status)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	booking := model.Booking{
		ID:         "booking-1",
		CustomerID: "customer-1",
		RoomNumber: "101",
		Status:     model.StatusConfirmed,
		TotalPrice: 300,
	}

	tests := []struct {
		name      string
		setupMock func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss, found in db",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _, mockCache, mockKafka := newBookingFixture(t)
			allowAsyncSideEffects(mockCache, mockKafka)
			tt.setupMock(mockRepo, mockCache)

			result, err := svc.Get(context.Background(), "booking-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.IsCode(err, tt.wantCode))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, booking.ID, result.ID)
			assert.Equal(t, booking.TotalPrice, result.TotalPrice)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantData  int
	}{
		{
			name: "cache miss, fetched from db",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{
					{ID: "booking-1", Status: model.StatusConfirmed},
				}, nil)
			},
			wantErr:  false,
			wantData: 1,
		},
		{
			name: "count error",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _, mockCache, mockKafka := newBookingFixture(t)
			allowAsyncSideEffects(mockCache, mockKafka)
			tt.setupMock(mockRepo, mockCache)

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantData, result.TotalData)
			assert.Len(t, result.Bookings, tt.wantData)
		})
	}
}
