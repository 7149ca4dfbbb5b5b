package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"canteen/config"
	"canteen/infras/otel/mocks"
	"canteen/infras/session"
	sessionMocks "canteen/infras/session/mocks"
	"canteen/internal/domains/auth/model/dto"
	"canteen/internal/domains/auth/service"
	userMocks "canteen/internal/domains/user/mocks"
	userModel "canteen/internal/domains/user/model"
	userRepo "canteen/internal/domains/user/repository"
	"canteen/shared/failure"
	"canteen/shared/password"
)

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser, *sessionMocks.MockSession, *password.Hasher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockSession := sessionMocks.NewMockSession(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Session.Salt = "test-salt"
	cfg.Session.ExpireMin = 60

	hasher := password.NewHasher(cfg)
	svc := service.New(mockRepo, cfg, mockOtel, mockSession, hasher)

	return svc, mockRepo, mockSession, hasher
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(mockRepo *userMocks.MockUser)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			req:  dto.RegisterRequest{Username: "alice", Password: "password123"},
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Exist(gomock.Any(), "alice").Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate username",
			req:  dto.RegisterRequest{Username: "alice", Password: "password123"},
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Exist(gomock.Any(), "alice").Return(true, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "duplicate race caught at insert",
			req:  dto.RegisterRequest{Username: "alice", Password: "password123"},
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Exist(gomock.Any(), "alice").Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(userRepo.ErrDuplicate)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			req:  dto.RegisterRequest{Username: "alice", Password: "password123"},
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Exist(gomock.Any(), "alice").Return(false, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _ := newAuthService(t)
			tt.setupMock(mockRepo)

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(mockRepo *userMocks.MockUser, mockSession *sessionMocks.MockSession, hasher *password.Hasher)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Username: "alice", Password: "password123"},
			setupMock: func(mockRepo *userMocks.MockUser, mockSession *sessionMocks.MockSession, hasher *password.Hasher) {
				digest, _ := hasher.Hash("password123")
				mockRepo.EXPECT().
					Get(gomock.Any(), "alice").
					Return(userModel.User{Username: "alice", Password: digest, Role: "user"}, nil)
				mockSession.EXPECT().
					Issue(gomock.Any(), "alice", "user").
					Return("token-123", nil)
				mockRepo.EXPECT().
					UpdateLastLogin(gomock.Any(), "alice", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown username",
			req:  dto.LoginRequest{Username: "nobody", Password: "password123"},
			setupMock: func(mockRepo *userMocks.MockUser, mockSession *sessionMocks.MockSession, hasher *password.Hasher) {
				mockRepo.EXPECT().
					Get(gomock.Any(), "nobody").
					Return(userModel.User{}, userRepo.ErrNotFound)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "alice", Password: "wrong-password"},
			setupMock: func(mockRepo *userMocks.MockUser, mockSession *sessionMocks.MockSession, hasher *password.Hasher) {
				digest, _ := hasher.Hash("password123")
				mockRepo.EXPECT().
					Get(gomock.Any(), "alice").
					Return(userModel.User{Username: "alice", Password: digest, Role: "user"}, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "case-sensitive username lookup",
			req:  dto.LoginRequest{Username: "Alice", Password: "password123"},
			setupMock: func(mockRepo *userMocks.MockUser, mockSession *sessionMocks.MockSession, hasher *password.Hasher) {
				mockRepo.EXPECT().
					Get(gomock.Any(), "Alice").
					Return(userModel.User{}, userRepo.ErrNotFound)
			},
			wantErr:  true,
			wantCode: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockSession, hasher := newAuthService(t)
			tt.setupMock(mockRepo, mockSession, hasher)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "token-123", res.Token)
			assert.Equal(t, "alice", res.Username)
			assert.Equal(t, int64(3600), res.ExpiresIn)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("successful logout", func(t *testing.T) {
		svc, _, mockSession, _ := newAuthService(t)

		mockSession.EXPECT().Revoke(gomock.Any(), "token-123").Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), "token-123"))
	})

	t.Run("revoke failure maps to unauthorized", func(t *testing.T) {
		svc, _, mockSession, _ := newAuthService(t)

		mockSession.EXPECT().Revoke(gomock.Any(), "bad-token").Return(errors.New("invalid token"))

		err := svc.Logout(context.Background(), "bad-token")
		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_Validate(t *testing.T) {
	freshClaims := func() *session.Claims {
		return &session.Claims{Username: "alice", Role: "user", SessionID: "sess-1"}
	}

	tests := []struct {
		name      string
		setupMock func(mockRepo *userMocks.MockUser, mockSession *sessionMocks.MockSession)
		wantErr   bool
		wantRole  string
	}{
		{
			name: "valid session with existing account",
			setupMock: func(mockRepo *userMocks.MockUser, mockSession *sessionMocks.MockSession) {
				mockSession.EXPECT().Validate(gomock.Any(), "token-123").Return(freshClaims(), nil)
				mockRepo.EXPECT().
					Get(gomock.Any(), "alice").
					Return(userModel.User{Username: "alice", Role: "admin"}, nil)
			},
			wantRole: "admin",
		},
		{
			name: "revoked session",
			setupMock: func(mockRepo *userMocks.MockUser, mockSession *sessionMocks.MockSession) {
				mockSession.EXPECT().
					Validate(gomock.Any(), "token-123").
					Return(nil, session.ErrRevokedToken)
			},
			wantErr: true,
		},
		{
			name: "deleted account invalidates session",
			setupMock: func(mockRepo *userMocks.MockUser, mockSession *sessionMocks.MockSession) {
				mockSession.EXPECT().Validate(gomock.Any(), "token-123").Return(freshClaims(), nil)
				mockRepo.EXPECT().
					Get(gomock.Any(), "alice").
					Return(userModel.User{}, userRepo.ErrNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockSession, _ := newAuthService(t)
			tt.setupMock(mockRepo, mockSession)

			got, err := svc.Validate(context.Background(), "token-123")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 401, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			// Role is refreshed from the stored record, not the token.
			assert.Equal(t, tt.wantRole, got.Role)
		})
	}
}
