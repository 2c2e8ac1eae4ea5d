package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/jwt"
	jwtMocks "hotelier/infras/jwt/mocks"
	"hotelier/infras/otel/mocks"
	"hotelier/internal/domains/auth/model/dto"
	"hotelier/internal/domains/auth/service"
	userMocks "hotelier/internal/domains/user/mocks"
	userModel "hotelier/internal/domains/user/model"
	"hotelier/shared/failure"
	"hotelier/shared/password"
)

func newAuthFixture(t *testing.T) (
	service.Auth,
	*userMocks.MockUser,
	*jwtMocks.MockJWT,
) {
	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	return svc, mockUserRepo, mockJWT
}

func activeUser(t *testing.T, plainPassword string) userModel.User {
	hashed, err := password.Hash(plainPassword)
	assert.NoError(t, err)

	return userModel.User{
		ID:       "user-1",
		Email:    "staff@example.com",
		Password: hashed,
		Role:     "staff",
		Active:   true,
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "email already registered",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert fails",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo, _ := newAuthFixture(t)

			tt.setupMock(mockUserRepo)

			err := svc.Register(context.Background(), dto.RegisterRequest{
				Email:    "staff@example.com",
				Password: "supersecret",
			})

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

func TestAuthService_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockUserRepo, mockJWT := newAuthFixture(t)
		user := activeUser(t, "supersecret")

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		mockJWT.EXPECT().GenerateTokenPair(user.ID, user.Email, user.Role).Return(&jwt.TokenPair{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    900,
		}, nil)
		mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    user.Email,
			Password: "supersecret",
		})

		assert.NoError(t, err)
		assert.Equal(t, "access", result.AccessToken)
		assert.Equal(t, "refresh", result.RefreshToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthFixture(t)

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "supersecret",
		})

		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthFixture(t)
		user := activeUser(t, "supersecret")

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    user.Email,
			Password: "wrongpassword",
		})

		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthFixture(t)
		user := activeUser(t, "supersecret")
		user.Active = false

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    user.Email,
			Password: "supersecret",
		})

		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, mockJWT := newAuthFixture(t)

		mockJWT.EXPECT().RefreshTokens("old-refresh").Return(&jwt.TokenPair{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			ExpiresIn:    900,
		}, nil)

		result, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", result.AccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, _, mockJWT := newAuthFixture(t)

		mockJWT.EXPECT().RefreshTokens("bad-token").Return(nil, errors.New("token expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusUnauthorized))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthFixture(t)
		user := activeUser(t, "oldpassword")

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "oldpassword",
			NewPassword:     "newpassword",
		}, user.ID)

		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthFixture(t)

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "oldpassword",
			NewPassword:     "newpassword",
		}, "missing")

		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthFixture(t)
		user := activeUser(t, "oldpassword")

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrongpassword",
			NewPassword:     "newpassword",
		}, user.ID)

		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})
}
