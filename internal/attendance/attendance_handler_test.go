package attendance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/attendance"
	attendanceerrors "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/attendance/errors"
	attendanceMock "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/attendance/mock"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/domain"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/rbac"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/session"
)

func asUser(sess session.Session, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(session.WithContext(c.Request.Context(), sess))
		h(c)
	}
}

var (
	employeeSession = session.Session{EmployeeID: 7, Username: "jane", Role: domain.RoleEmployee}
	adminSession    = session.Session{EmployeeID: 1, Username: "admin", Role: domain.RoleAdmin}
)

func TestHandler_CheckIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := attendanceMock.NewMockService(ctrl)
	enforcer, err := rbac.NewEnforcer()
	require.NoError(t, err)
	handler := attendance.NewHandler(mockService, enforcer)

	router := gin.New()
	router.POST("/check-in", asUser(employeeSession, handler.CheckIn))

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			CheckIn(gomock.Any(), uint(7)).
			Return(attendance.AttendanceResponse{ID: 1, EmployeeID: 7, CheckIn: "2026-03-02T09:00:00Z"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/check-in", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Already Checked In", func(t *testing.T) {
		mockService.EXPECT().
			CheckIn(gomock.Any(), uint(7)).
			Return(attendance.AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/check-in", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_CheckOut(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := attendanceMock.NewMockService(ctrl)
	enforcer, err := rbac.NewEnforcer()
	require.NoError(t, err)
	handler := attendance.NewHandler(mockService, enforcer)

	router := gin.New()
	router.POST("/check-out", asUser(employeeSession, handler.CheckOut))

	t.Run("No Open Session", func(t *testing.T) {
		mockService.EXPECT().
			CheckOut(gomock.Any(), uint(7)).
			Return(attendance.AttendanceResponse{}, attendanceerrors.ErrNoOpenSession)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/check-out", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_GetAll_Scoping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := attendanceMock.NewMockService(ctrl)
	enforcer, err := rbac.NewEnforcer()
	require.NoError(t, err)
	handler := attendance.NewHandler(mockService, enforcer)

	router := gin.New()
	router.GET("/mine", asUser(employeeSession, handler.GetAll))
	router.GET("/all", asUser(adminSession, handler.GetAll))

	t.Run("Employee sees only own records", func(t *testing.T) {
		mockService.EXPECT().
			ListByRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, employeeID *uint, _, _ any) ([]attendance.AttendanceResponse, error) {
				require.NotNil(t, employeeID)
				assert.Equal(t, uint(7), *employeeID)
				return nil, nil
			})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mine?employee_id=42", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Admin spans all employees", func(t *testing.T) {
		mockService.EXPECT().
			ListByRange(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return([]attendance.AttendanceResponse{{ID: 1, EmployeeID: 7}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/all", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.NotNil(t, res["meta"])
	})

	t.Run("Admin filter by employee", func(t *testing.T) {
		mockService.EXPECT().
			ListByRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, employeeID *uint, _, _ any) ([]attendance.AttendanceResponse, error) {
				require.NotNil(t, employeeID)
				assert.Equal(t, uint(42), *employeeID)
				return nil, nil
			})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/all?employee_id=42", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid date", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/all?from=03-02-2026", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := attendanceMock.NewMockService(ctrl)
	enforcer, err := rbac.NewEnforcer()
	require.NoError(t, err)
	handler := attendance.NewHandler(mockService, enforcer)

	router := gin.New()
	router.GET("/status", asUser(employeeSession, handler.Status))

	mockService.EXPECT().IsOpen(gomock.Any(), uint(7)).Return(true, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res["data"].(map[string]interface{})["checked_in"])
}
