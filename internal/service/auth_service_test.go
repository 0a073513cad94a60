package service_test

import (
	"errors"
	"os"
	"testing"

	"github.com/shermian8845-code/Videoshare/internal/api/dto"
	"github.com/shermian8845-code/Videoshare/internal/config"
	"github.com/shermian8845-code/Videoshare/internal/model"
	"github.com/shermian8845-code/Videoshare/internal/service"
	"github.com/shermian8845-code/Videoshare/pkg/logger"
	"github.com/shermian8845-code/Videoshare/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	if _, err := config.Load("testdata/config.yaml"); err != nil {
		panic(err)
	}
	if err := logger.Init("error", "console", "stdout", ""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := service.NewMockUserStore(ctrl)
	svc := service.NewAuthService(mockUsers)

	req := &dto.RegisterRequest{
		Email:           "alice@example.com",
		Username:        "alice",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            model.RoleCreator,
	}

	mockUsers.EXPECT().ExistsByEmail("alice@example.com").Return(false, nil)
	mockUsers.EXPECT().ExistsByUsername("alice").Return(false, nil)
	mockUsers.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *model.User) error {
		// 密码必须以哈希形式入库
		assert.NotEqual(t, "password123", user.Password)
		assert.True(t, utils.VerifyPassword("password123", user.Password))
		assert.Equal(t, model.RoleCreator, user.Role)
		user.ID = 1
		return nil
	})

	data, err := svc.Register(req)
	require.NoError(t, err)
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "bearer", data.TokenType)
	assert.Equal(t, int64(1), data.User.ID)
	assert.Equal(t, model.RoleCreator, data.User.Role)
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := service.NewMockUserStore(ctrl)
	svc := service.NewAuthService(mockUsers)

	mockUsers.EXPECT().ExistsByEmail(gomock.Any()).Return(false, nil)
	mockUsers.EXPECT().ExistsByUsername(gomock.Any()).Return(false, nil)
	mockUsers.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *model.User) error {
		assert.Equal(t, model.RoleConsumer, user.Role)
		user.ID = 2
		return nil
	})

	data, err := svc.Register(&dto.RegisterRequest{
		Email:           "bob@example.com",
		Username:        "bob",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleConsumer, data.User.Role)
}

func TestAuthService_Register_EmailExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := service.NewMockUserStore(ctrl)
	svc := service.NewAuthService(mockUsers)

	mockUsers.EXPECT().ExistsByEmail("taken@example.com").Return(true, nil)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:           "taken@example.com",
		Username:        "whoever",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	assert.ErrorIs(t, err, service.ErrEmailExists)
}

func TestAuthService_Register_UsernameExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := service.NewMockUserStore(ctrl)
	svc := service.NewAuthService(mockUsers)

	mockUsers.EXPECT().ExistsByEmail(gomock.Any()).Return(false, nil)
	mockUsers.EXPECT().ExistsByUsername("taken").Return(true, nil)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:           "new@example.com",
		Username:        "taken",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	assert.ErrorIs(t, err, service.ErrUsernameExists)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := service.NewMockUserStore(ctrl)
	svc := service.NewAuthService(mockUsers)

	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)
	stored := &model.User{ID: 5, Email: "alice@example.com", UserName: "alice", Password: hashed, Role: model.RoleConsumer}

	tests := []struct {
		name     string
		email    string
		password string
		user     *model.User
		storeErr error
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "password123",
			user:     stored,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong-password",
			user:     stored,
			wantErr:  service.ErrInvalidCredential,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			storeErr: gorm.ErrRecordNotFound,
			wantErr:  service.ErrInvalidCredential,
		},
		{
			name:     "store failure",
			email:    "alice@example.com",
			password: "password123",
			storeErr: errors.New("db error"),
			wantErr:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers.EXPECT().GetByEmail(tt.email).Return(tt.user, tt.storeErr)

			data, err := svc.Login(&dto.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, data.Token)
			assert.Equal(t, int64(5), data.User.ID)

			claims, err := utils.ParseToken(data.Token)
			require.NoError(t, err)
			assert.Equal(t, int64(5), claims.UserID)
		})
	}
}

func TestAuthService_GetCurrentUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := service.NewMockUserStore(ctrl)
	svc := service.NewAuthService(mockUsers)

	mockUsers.EXPECT().GetByID(int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetCurrentUser(99)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
