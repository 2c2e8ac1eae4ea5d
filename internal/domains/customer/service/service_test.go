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
	"hotelier/shared/failure"

	"hotelier/infras/otel/mocks"
	customerMocks "hotelier/internal/domains/customer/mocks"
	"hotelier/internal/domains/customer/model"
	"hotelier/internal/domains/customer/model/dto"
	"hotelier/internal/domains/customer/service"
)

func newCustomerFixture(t *testing.T) (
	service.Customer,
	*customerMocks.MockCustomer,
	*cacheMocks.MockRedisCache,
) {
	ctrl := gomock.NewController(t)

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func allowAsyncCacheWrites(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestCustomerService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateCustomerRequest
		setupMock func(repo *customerMocks.MockCustomer)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			req: dto.CreateCustomerRequest{
				Name:  "Jane Doe",
				Email: "jane@example.com",
				Phone: "+6281234567890",
			},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "email already registered",
			req: dto.CreateCustomerRequest{
				Name:  "Jane Doe",
				Email: "jane@example.com",
			},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert fails",
			req: dto.CreateCustomerRequest{
				Name:  "Jane Doe",
				Email: "jane@example.com",
			},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newCustomerFixture(t)

			allowAsyncCacheWrites(mockCache)
			tt.setupMock(mockRepo)

			result, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.True(t, failure.IsCode(err, tt.wantCode))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, result.ID)
			assert.Equal(t, tt.req.Email, result.Email)
		})
	}
}

func TestCustomerService_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, mockCache := newCustomerFixture(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{
			ID:    "customer-1",
			Name:  "Jane Doe",
			Email: "jane@example.com",
		}, nil)

		result, err := svc.Get(context.Background(), "customer-1")

		assert.NoError(t, err)
		assert.Equal(t, "customer-1", result.ID)
		assert.Equal(t, "jane@example.com", result.Email)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newCustomerFixture(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, mockCache := newCustomerFixture(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Get(context.Background(), "customer-1")

		assert.NoError(t, err)
	})
}

func TestCustomerService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateCustomerRequest
		setupMock func(repo *customerMocks.MockCustomer)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			req:  dto.UpdateCustomerRequest{Phone: "+6289876543210"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateCustomerRequest{},
			setupMock: func(repo *customerMocks.MockCustomer) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "customer not found",
			req:  dto.UpdateCustomerRequest{Name: "New Name"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update fails",
			req:  dto.UpdateCustomerRequest{Name: "New Name"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newCustomerFixture(t)

			allowAsyncCacheWrites(mockCache)
			tt.setupMock(mockRepo)

			err := svc.Update(context.Background(), tt.req, "customer-1")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.True(t, failure.IsCode(err, tt.wantCode))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
