package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shermian8845-code/Videoshare/internal/api/handler"
	"github.com/shermian8845-code/Videoshare/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newRegisterRouter(t *testing.T) (*gin.Engine, *service.MockUserStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUsers := service.NewMockUserStore(ctrl)
	authHandler := handler.NewAuthHandler(service.NewAuthService(mockUsers))

	r := gin.New()
	r.POST("/api/register", authHandler.Register)
	return r, mockUsers
}

func TestAuthHandler_Register_EmailConflict(t *testing.T) {
	r, mockUsers := newRegisterRouter(t)

	mockUsers.EXPECT().ExistsByEmail("taken@example.com").Return(true, nil)

	body := `{"email":"taken@example.com","username":"alice","password":"password123","confirm_password":"password123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Conflict")
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	r, _ := newRegisterRouter(t)

	body := `{"email":"alice@example.com","username":"alice","password":"password123","confirm_password":"different"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ValidationError")
}

func TestAuthHandler_Register_InvalidRole(t *testing.T) {
	r, _ := newRegisterRouter(t)

	body := `{"email":"alice@example.com","username":"alice","password":"password123","confirm_password":"password123","role":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_InvalidCredential(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := service.NewMockUserStore(ctrl)
	authHandler := handler.NewAuthHandler(service.NewAuthService(mockUsers))

	r := gin.New()
	r.POST("/api/login", authHandler.Login)

	mockUsers.EXPECT().GetByEmail("alice@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	body := `{"email":"alice@example.com","password":"password123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthenticated")
}
