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
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"hotelier/infras/otel/mocks"
	userMocks "hotelier/internal/domains/user/mocks"
	"hotelier/internal/domains/user/model"
	"hotelier/internal/domains/user/service"
)

func newUserFixture(t *testing.T) (
	service.User,
	*userMocks.MockUser,
	*cacheMocks.MockRedisCache,
) {
	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestUserService_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserFixture(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{
			ID:     "user-1",
			Email:  "staff@example.com",
			Role:   "staff",
			Active: true,
		}, nil)

		result, err := svc.Get(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", result.ID)
		assert.Equal(t, "staff", result.Role)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserFixture(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}

func TestUserService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newUserFixture(t)

	// GetAll reads its own cache key, then Count reads another.
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.User{
		{ID: "user-1", Email: "a@example.com"},
		{ID: "user-2", Email: "b@example.com"},
	}, nil)

	result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, result.Users, 2)
	assert.Equal(t, 2, result.TotalData)
	assert.Equal(t, 1, result.TotalPage)
}
