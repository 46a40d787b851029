package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/auth"
	autherrors "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/auth/errors"
	authMock "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/auth/mock"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/domain"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/session"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("Success Login - Cookie Check", func(t *testing.T) {
		reqBody := auth.LoginRequest{
			Username: "jane",
			Password: "pass123",
		}
		body, _ := json.Marshal(reqBody)

		expectedResp := auth.AuthResponse{
			ID:       7,
			Username: "jane",
			Name:     "Jane Silva",
			Role:     domain.RoleEmployee,
		}

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Username, reqBody.Password).
			Return("access-token", expectedResp, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "access-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		data := res["data"].(map[string]interface{})
		assert.Equal(t, "jane", data["user"].(map[string]interface{})["username"])
		assert.Equal(t, "access-token", data["access_token"])
	})

	t.Run("Failed Login - Invalid Credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", auth.AuthResponse{}, autherrors.ErrPasswordMismatch)

		body, _ := json.Marshal(auth.LoginRequest{Username: "jane", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("Failed Login - Missing Fields", func(t *testing.T) {
		body := []byte(`{"username": ""}`)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()

	// Simulate an authenticated request the way the auth middleware does.
	router.GET("/me", func(c *gin.Context) {
		ctx := session.WithContext(c.Request.Context(), session.Session{
			EmployeeID: 7,
			Username:   "jane",
			Name:       "Jane Silva",
			Role:       domain.RoleEmployee,
		})
		c.Request = c.Request.WithContext(ctx)
		handler.Me(c)
	})
	router.GET("/me-anon", handler.Me)

	t.Run("Authenticated", func(t *testing.T) {
		mockService.EXPECT().
			GetMe(gomock.Any(), uint(7)).
			Return(auth.AuthResponse{ID: 7, Username: "jane", Role: domain.RoleEmployee}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "jane", res["data"].(map[string]interface{})["username"])
	})

	t.Run("No Session", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me-anon", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := auth.NewHandler(authMock.NewMockService(ctrl))
	router := setupAuthRouter()
	router.POST("/logout", handler.Logout)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
