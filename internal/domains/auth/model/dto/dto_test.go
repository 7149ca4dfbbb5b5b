package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"canteen/internal/domains/auth/model/dto"
	"canteen/shared/constant"
	"canteen/shared/validator"
)

func TestRegisterRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.RegisterRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     dto.RegisterRequest{Username: "alice", Password: "password123"},
			wantErr: false,
		},
		{
			name:    "username shorter than four characters",
			req:     dto.RegisterRequest{Username: "abc", Password: "password123"},
			wantErr: true,
		},
		{
			name:    "password shorter than eight characters",
			req:     dto.RegisterRequest{Username: "alice", Password: "short"},
			wantErr: true,
		},
		{
			name:    "missing username",
			req:     dto.RegisterRequest{Password: "password123"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     dto.RegisterRequest{Username: "alice"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{Username: "alice", Password: "password123"}

	user := req.ToUserModel("digest-value")

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "digest-value", user.Password)
	assert.Equal(t, constant.RoleUser, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Nil(t, user.LastLogin)
}
